package rolllog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/drawsteel-importer/internal/redis"
)

const (
	// Key pattern: rolllog:{entity_type}:{entity_id}
	logKeyPrefix = "rolllog:"

	// DefaultTTL is how long a log lives after its first roll
	DefaultTTL = time.Hour

	// MaxRolls caps the log; older rolls are dropped first
	MaxRolls = 50

	errOwnerEmpty = "owner entity with an ID is required"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for roll logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Append adds a roll to the owner's log
func (r *redisRepository) Append(ctx context.Context, input *AppendInput) (*AppendOutput, error) {
	if input == nil || !valid(input.Owner) {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	now := r.clock.Now()
	log, err := r.load(ctx, input.Owner)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	if log == nil {
		ttl := input.TTL
		if ttl <= 0 {
			ttl = DefaultTTL
		}
		log = &Log{
			OwnerID:   input.Owner.GetID(),
			OwnerType: input.Owner.GetType(),
			CreatedAt: now,
			ExpiresAt: now.Add(ttl),
		}
	}

	log.Rolls = append(log.Rolls, input.Roll)
	if len(log.Rolls) > MaxRolls {
		log.Rolls = log.Rolls[len(log.Rolls)-MaxRolls:]
	}

	data, err := json.Marshal(log)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal roll log")
	}

	if err := r.client.Set(ctx, buildKey(input.Owner), data, log.ExpiresAt.Sub(now)).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store roll log")
	}

	return &AppendOutput{Log: log}, nil
}

// Get retrieves an entity's log
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || !valid(input.Owner) {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	log, err := r.load(ctx, input.Owner)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Log: log}, nil
}

// Delete removes an entity's log
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || !valid(input.Owner) {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	var deleted int
	if log, err := r.load(ctx, input.Owner); err == nil {
		deleted = len(log.Rolls)
	}

	if err := r.client.Del(ctx, buildKey(input.Owner)).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete roll log")
	}

	return &DeleteOutput{RollsDeleted: deleted}, nil
}

// load reads a log, treating one past its expiry as missing.
func (r *redisRepository) load(ctx context.Context, owner core.Entity) (*Log, error) {
	key := buildKey(owner)

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("roll log for %s %s not found", owner.GetType(), owner.GetID())
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get roll log")
	}

	var log Log
	if err := json.Unmarshal(raw, &log); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal roll log for %s", owner.GetID())
	}

	if r.clock.Now().After(log.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("roll log for %s %s has expired", owner.GetType(), owner.GetID())
	}

	return &log, nil
}

func buildKey(owner core.Entity) string {
	return logKeyPrefix + owner.GetType() + ":" + owner.GetID()
}

func valid(owner core.Entity) bool {
	return owner != nil && owner.GetID() != ""
}
