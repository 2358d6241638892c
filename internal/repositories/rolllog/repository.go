// Package rolllog provides repository interface and types for the power
// rolls made by game entities
package rolllog

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rolllogmock github.com/KirkDiggler/drawsteel-importer/internal/repositories/rolllog Repository

// Log is the recent power rolls of one entity.
type Log struct {
	OwnerID   string    `json:"ownerId"`
	OwnerType string    `json:"ownerType"`
	Rolls     []Roll    `json:"rolls"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Roll is a single power roll result
type Roll struct {
	ID string `json:"id"`

	// Ability is the item name rolled for, empty for a bare roll
	Ability string `json:"ability,omitempty"`

	// Formula is the roll formula, e.g. "2d10 + 3"
	Formula string `json:"formula"`

	// Dice are the two d10 results
	Dice []int `json:"dice"`

	// Bonus is the characteristic plus any edge bonus
	Bonus int `json:"bonus"`

	Total int `json:"total"`

	// Tier is the result tier after double edges or banes, 1 to 3
	Tier int `json:"tier"`

	// Edges minus banes, clamped to -2..2
	Net int `json:"net,omitempty"`

	RolledAt time.Time `json:"rolledAt"`
}

// AppendInput contains parameters for adding a roll
type AppendInput struct {
	Owner core.Entity
	Roll  Roll
	// TTL applies when the append starts a new log
	TTL time.Duration
}

// AppendOutput contains the log after the append
type AppendOutput struct {
	Log *Log
}

// GetInput contains parameters for retrieving a log
type GetInput struct {
	Owner core.Entity
}

// GetOutput contains the retrieved log
type GetOutput struct {
	Log *Log
}

// DeleteInput contains parameters for deleting a log
type DeleteInput struct {
	Owner core.Entity
}

// DeleteOutput contains the result of deleting a log
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines the interface for roll log storage operations
type Repository interface {
	// Append adds a roll, creating the log when it does not exist or has expired
	Append(ctx context.Context, input *AppendInput) (*AppendOutput, error)

	// Get retrieves an entity's log
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes an entity's log
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}
