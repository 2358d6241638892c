package actor

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/idgen"
)

// InMemoryRepository implements Repository using in-memory storage. Actors
// are stored as JSON so callers never share state with the store.
type InMemoryRepository struct {
	mu      sync.RWMutex
	ids     idgen.Generator
	store   map[string][]byte
	folders map[string]map[string]struct{}
}

// NewInMemory creates a new in-memory repository. A nil generator means
// UUID identities.
func NewInMemory(ids idgen.Generator) *InMemoryRepository {
	if ids == nil {
		ids = idgen.NewUUID("")
	}
	return &InMemoryRepository{
		ids:     ids,
		store:   make(map[string][]byte),
		folders: make(map[string]map[string]struct{}),
	}
}

// Save stores an actor
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.Folder == "" {
		return nil, errors.InvalidArgument(errFolderEmpty)
	}

	actor := *input.Actor

	r.mu.Lock()
	defer r.mu.Unlock()

	if actor.ID == "" {
		actor.ID = r.ids.Generate()
	} else if previous, ok := r.load(actor.ID); ok && previous.Folder != actor.Folder {
		delete(r.folders[previous.Folder], actor.ID)
	}

	data, err := json.Marshal(&actor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal actor")
	}
	r.store[actor.ID] = data
	if r.folders[actor.Folder] == nil {
		r.folders[actor.Folder] = make(map[string]struct{})
	}
	r.folders[actor.Folder][actor.ID] = struct{}{}

	return &SaveOutput{Actor: &actor}, nil
}

// Get retrieves an actor by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	actor, ok := r.load(input.ID)
	if !ok {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
	}
	return &GetOutput{Actor: actor}, nil
}

// ListByFolder retrieves all actors in a folder, ordered by ID
func (r *InMemoryRepository) ListByFolder(_ context.Context, input *ListByFolderInput) (*ListByFolderOutput, error) {
	if input == nil || input.Folder == "" {
		return nil, errors.InvalidArgument(errFolderEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.folders[input.Folder]))
	for id := range r.folders[input.Folder] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	actors := make([]*drawsteel.Actor, 0, len(ids))
	for _, id := range ids {
		if actor, ok := r.load(id); ok {
			actors = append(actors, actor)
		}
	}
	return &ListByFolderOutput{Actors: actors}, nil
}

// Delete removes an actor
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	actor, ok := r.load(input.ID)
	if !ok {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)
	delete(r.folders[actor.Folder], input.ID)

	return &DeleteOutput{}, nil
}

// load decodes a stored actor. Callers hold the lock.
func (r *InMemoryRepository) load(id string) (*drawsteel.Actor, bool) {
	data, ok := r.store[id]
	if !ok {
		return nil, false
	}
	var actor drawsteel.Actor
	if err := json.Unmarshal(data, &actor); err != nil {
		return nil, false
	}
	return &actor, true
}

var _ Repository = (*InMemoryRepository)(nil)
