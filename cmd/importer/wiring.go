package main

import (
	"context"
	"log/slog"

	"github.com/alicebob/miniredis/v2"

	"github.com/KirkDiggler/drawsteel-importer/internal/config"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/drawsteel-importer/internal/orchestrators/powerroll"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/clock"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/drawsteel-importer/internal/redis"
	actorrepo "github.com/KirkDiggler/drawsteel-importer/internal/repositories/actor"
	"github.com/KirkDiggler/drawsteel-importer/internal/repositories/rolllog"
)

// services is everything the server and the local commands run on.
type services struct {
	importer  importer.Service
	powerRoll powerroll.Service
	close     func()
}

// newImporter builds the import pipeline over repo.
func newImporter(cfg *config.Config, repo actorrepo.Repository) (importer.Service, error) {
	d, err := cfg.DialectConfig()
	if err != nil {
		return nil, err
	}
	tables, err := cfg.Vocabulary()
	if err != nil {
		return nil, err
	}

	return importer.NewOrchestrator(&importer.Config{
		Dialect:     d,
		Vocabulary:  tables,
		ActorRepo:   repo,
		IDGenerator: idgen.NewRandom(),
		Clock:       clock.New(),
		SourceBook:  cfg.SourceBook,
		Folder:      cfg.Folder,
	})
}

// newServices connects to redis, or starts an embedded one when no address
// is configured, and wires both orchestrators on it.
func newServices(ctx context.Context, cfg *config.Config) (*services, error) {
	addr := cfg.RedisAddr
	closers := []func(){}

	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return nil, errors.Wrap(err, "failed to start embedded redis")
		}
		closers = append(closers, mr.Close)
		addr = mr.Addr()
		slog.WarnContext(ctx, "no redis address configured, using embedded store", "addr", addr)
	}

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	client, err := redisclient.NewClient(addr, &redisclient.Options{
		PoolSize: cfg.RedisPoolSize,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		closeAll()
		return nil, err
	}
	closers = append(closers, func() { _ = client.Close() })

	if err := redisclient.Ping(ctx, client); err != nil {
		closeAll()
		return nil, err
	}

	actors, err := actorrepo.NewRedis(&actorrepo.RedisConfig{Client: client})
	if err != nil {
		closeAll()
		return nil, err
	}
	rollLogs, err := rolllog.NewRedisRepository(&rolllog.Config{Client: client, Clock: clock.New()})
	if err != nil {
		closeAll()
		return nil, err
	}

	imp, err := newImporter(cfg, actors)
	if err != nil {
		closeAll()
		return nil, err
	}
	rolls, err := powerroll.NewOrchestrator(&powerroll.Config{
		ActorRepo:   actors,
		RollLogRepo: rollLogs,
		IDGenerator: idgen.NewUUID("roll"),
		Clock:       clock.New(),
		LogTTL:      cfg.RollLogTTL,
	})
	if err != nil {
		closeAll()
		return nil, err
	}

	return &services{importer: imp, powerRoll: rolls, close: closeAll}, nil
}
