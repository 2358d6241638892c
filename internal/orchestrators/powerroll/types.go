package powerroll

import (
	"github.com/KirkDiggler/drawsteel-importer/internal/repositories/rolllog"
)

// RollInput defines the request for a power roll
type RollInput struct {
	ActorID string
	// Ability is the item name or its dsid. Empty makes a bare roll.
	Ability string
	// Formula is used for bare rolls; it defaults to "2d10"
	Formula string
	Edges   int
	Banes   int
}

// RollOutput defines the response for a power roll
type RollOutput struct {
	Roll *rolllog.Roll
	// Effects are the displays of the ability's effect groups at the rolled tier
	Effects []string
	Log     *rolllog.Log
}

// GetRollLogInput defines the request for an actor's recent rolls
type GetRollLogInput struct {
	ActorID string
}

// GetRollLogOutput defines the response for an actor's recent rolls
type GetRollLogOutput struct {
	Log *rolllog.Log
}

// ClearRollLogInput defines the request for clearing an actor's rolls
type ClearRollLogInput struct {
	ActorID string
}

// ClearRollLogOutput defines the response for clearing an actor's rolls
type ClearRollLogOutput struct {
	RollsDeleted int
}
