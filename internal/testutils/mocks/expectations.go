// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	actorrepo "github.com/KirkDiggler/drawsteel-importer/internal/repositories/actor"
	actormock "github.com/KirkDiggler/drawsteel-importer/internal/repositories/actor/mock"
)

// ExpectActorSave expects one Save and answers with the saved actor under id.
// The returned pointer receives the actor the caller handed to Save.
func ExpectActorSave(repo *actormock.MockRepository, id string) **drawsteel.Actor {
	var captured *drawsteel.Actor
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *actorrepo.SaveInput) (*actorrepo.SaveOutput, error) {
			captured = input.Actor
			saved := *input.Actor
			saved.ID = id
			return &actorrepo.SaveOutput{Actor: &saved}, nil
		})
	return &captured
}

// ExpectActorSaveError expects one Save that fails with err.
func ExpectActorSaveError(repo *actormock.MockRepository, err error) {
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, err)
}

// ExpectActorGet expects a Get for the actor's ID and returns it.
func ExpectActorGet(repo *actormock.MockRepository, actor *drawsteel.Actor) {
	repo.EXPECT().
		Get(gomock.Any(), &actorrepo.GetInput{ID: actor.ID}).
		Return(&actorrepo.GetOutput{Actor: actor}, nil)
}

// ExpectActorList expects a ListByFolder for folder and returns actors.
func ExpectActorList(repo *actormock.MockRepository, folder string, actors ...*drawsteel.Actor) {
	if actors == nil {
		actors = []*drawsteel.Actor{}
	}
	repo.EXPECT().
		ListByFolder(gomock.Any(), &actorrepo.ListByFolderInput{Folder: folder}).
		Return(&actorrepo.ListByFolderOutput{Actors: actors}, nil)
}
