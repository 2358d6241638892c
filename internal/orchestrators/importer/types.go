package importer

import (
	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
)

// ParseMonsterInput defines the request for parsing a stat block
type ParseMonsterInput struct {
	Text string
	// MaliceText is optional malice ability text for the same monster
	MaliceText string
}

// ParseMonsterOutput defines the response for parsing a stat block
type ParseMonsterOutput struct {
	// Header is nil when no block looked like a monster header
	Header    *drawsteel.Header
	Features  []*drawsteel.Feature
	Abilities []*drawsteel.Ability
	// Malice holds the abilities read from MaliceText
	Malice  []*drawsteel.Ability
	Notices []drawsteel.Notice
	// Actor is the unsaved actor document, nil without a header
	Actor *drawsteel.Actor
}

// ImportMonsterInput defines the request for importing a stat block
type ImportMonsterInput struct {
	Text       string
	MaliceText string
	// Folder defaults to the configured folder
	Folder string
}

// ImportMonsterOutput defines the response for importing a stat block
type ImportMonsterOutput struct {
	Actor   *drawsteel.Actor
	Notices []drawsteel.Notice
}

// ParseMaliceInput defines the request for parsing malice text on its own
type ParseMaliceInput struct {
	Text string
	// Header is optional; it supplies the potency characteristic
	Header *drawsteel.Header
}

// ParseMaliceOutput defines the response for parsing malice text
type ParseMaliceOutput struct {
	Creature  string
	Abilities []*drawsteel.Ability
	Notices   []drawsteel.Notice
}

// GetActorInput defines the request for loading an imported actor
type GetActorInput struct {
	ID string
}

// GetActorOutput defines the response for loading an imported actor
type GetActorOutput struct {
	Actor *drawsteel.Actor
}

// ListActorsInput defines the request for listing imported actors
type ListActorsInput struct {
	// Folder defaults to the configured folder
	Folder string
}

// ListActorsOutput defines the response for listing imported actors
type ListActorsOutput struct {
	Actors []*drawsteel.Actor
}
