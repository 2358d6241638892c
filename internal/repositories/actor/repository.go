// Package actor provides the interface for imported actor persistence
package actor

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/KirkDiggler/drawsteel-importer/internal/repositories/actor Repository

import (
	"context"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Save stores an actor, assigning a storage identity when it has none.
	// Saving an actor that already has an ID replaces it.
	// Returns errors.InvalidArgument for a nil actor or empty folder
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves an actor by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// ListByFolder retrieves all actors in a folder
	// Returns errors.InvalidArgument for an empty folder
	// Returns errors.Internal for storage failures
	ListByFolder(ctx context.Context, input *ListByFolderInput) (*ListByFolderOutput, error)

	// Delete deletes an actor by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving an actor
type SaveInput struct {
	Actor *drawsteel.Actor
}

// SaveOutput defines the output for saving an actor
type SaveOutput struct {
	// Actor is the stored actor, with its ID set
	Actor *drawsteel.Actor
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *drawsteel.Actor
}

// ListByFolderInput defines the input for listing actors by folder
type ListByFolderInput struct {
	Folder string
}

// ListByFolderOutput defines the output for listing actors by folder
type ListByFolderOutput struct {
	Actors []*drawsteel.Actor
}

// DeleteInput defines the input for deleting an actor
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an actor
type DeleteOutput struct{}
