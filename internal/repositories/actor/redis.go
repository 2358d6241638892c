package actor

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/drawsteel-importer/internal/redis"
)

const (
	actorKeyPrefix    = "actor:"
	folderIndexPrefix = "actor:folder:"

	// Error messages
	errActorNil     = "actor cannot be nil"
	errActorIDEmpty = "actor ID cannot be empty"
	errFolderEmpty  = "folder cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	ids    idgen.Generator
}

// RedisConfig contains configuration for the Redis actor repository.
type RedisConfig struct {
	Client redisclient.Client
	// IDGenerator defaults to UUIDs
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = idgen.NewUUID("")
	}

	return &redisRepository{
		client: cfg.Client,
		ids:    ids,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.Folder == "" {
		return nil, errors.InvalidArgument(errFolderEmpty)
	}

	actor := *input.Actor
	previousFolder := ""
	if actor.ID == "" {
		actor.ID = r.ids.Generate()
	} else {
		existing, err := r.Get(ctx, &GetInput{ID: actor.ID})
		switch {
		case err == nil:
			previousFolder = existing.Actor.Folder
		case !errors.IsNotFound(err):
			return nil, err
		}
	}

	data, err := json.Marshal(&actor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, actorKeyPrefix+actor.ID, data, 0)
	if previousFolder != "" && previousFolder != actor.Folder {
		pipe.SRem(ctx, folderIndexPrefix+previousFolder, actor.ID)
	}
	pipe.SAdd(ctx, folderIndexPrefix+actor.Folder, actor.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to save actor")
	}

	slog.DebugContext(ctx, "saved actor",
		"actor_id", actor.ID,
		"folder", actor.Folder,
		"items", len(actor.Items))

	return &SaveOutput{Actor: &actor}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	result, err := r.client.Get(ctx, actorKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get actor")
	}

	var actor drawsteel.Actor
	if err := json.Unmarshal([]byte(result), &actor); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal actor")
	}

	return &GetOutput{Actor: &actor}, nil
}

func (r *redisRepository) ListByFolder(ctx context.Context, input *ListByFolderInput) (*ListByFolderOutput, error) {
	if input == nil || input.Folder == "" {
		return nil, errors.InvalidArgument(errFolderEmpty)
	}

	indexKey := folderIndexPrefix + input.Folder
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actors from index %s", indexKey)
	}
	sort.Strings(ids)

	actors := make([]*drawsteel.Actor, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, &GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "actor not found, cleaning up index",
					"actor_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get actor %s", id)
		}
		actors = append(actors, out.Actor)
	}

	return &ListByFolderOutput{Actors: actors}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	existing, err := r.Get(ctx, &GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, actorKeyPrefix+input.ID)
	pipe.SRem(ctx, folderIndexPrefix+existing.Actor.Folder, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete actor")
	}

	return &DeleteOutput{}, nil
}
