package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/adapter"
	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
)

// ErrUnknownBackend is returned for an adapter kind no backend implements.
var ErrUnknownBackend = errors.New("unknown backend kind")

// App is the assembled client: backend collaborators, services and the
// session holder on top of them.
type App struct {
	Backend  *adapter.Backend
	Services *service.Services
	Holder   *session.Holder

	logger *logger.Logger
}

// NewApp connects the configured backend and the local session cache and
// builds the holder. The holder is not hydrated yet.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	backend, err := NewBackend(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	var cache store.LocalSessionCache
	if cfg.Storage.Local.DSN != "" {
		db, err := store.NewConnectSQLite(ctx, cfg.Storage.Local, logger)
		if err != nil {
			_ = backend.Close(ctx)
			return nil, fmt.Errorf("open session cache: %w", err)
		}
		backend.OnClose(func(context.Context) error { return db.Close() })
		cache = store.NewLocalSessionCache(db, logger)
	}

	services := service.NewServices(backend, *cfg, logger)

	return &App{
		Backend:  backend,
		Services: services,
		Holder:   session.NewHolder(backend.Identity, services, cache, logger),
		logger:   logger,
	}, nil
}

// Close releases every connection opened by [NewApp].
func (a *App) Close(ctx context.Context) error {
	a.logger.Debug().Msg("closing app")
	return a.Backend.Close(ctx)
}

// NewBackend returns the backend selected by cfg.Adapter.Kind.
func NewBackend(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*adapter.Backend, error) {
	logger.Info().Str("kind", cfg.Adapter.Kind).Msg("creating backend")

	switch cfg.Adapter.Kind {
	case config.KindAppwrite:
		return adapter.NewAppwriteBackend(cfg.Adapter, logger)
	case config.KindSelfHosted:
		return newSelfHostedBackend(ctx, cfg, logger)
	case config.KindMemory:
		return adapter.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Adapter.Kind)
	}
}

// newSelfHostedBackend connects MongoDB, PostgreSQL, Redis and the picture
// store. Whatever was opened before a failure is closed again.
func newSelfHostedBackend(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (_ *adapter.Backend, err error) {
	var closers []func(context.Context) error
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				_ = closers[i](ctx)
			}
		}
	}()

	mongoDB, disconnect, err := store.NewConnectMongo(ctx, cfg.Storage.Mongo, logger)
	if err != nil {
		return nil, err
	}
	closers = append(closers, disconnect)

	objects, err := newObjectStore(ctx, cfg, logger, &closers)
	if err != nil {
		return nil, err
	}

	accountsDB, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, err
	}
	closers = append(closers, func(context.Context) error { return accountsDB.Close() })

	redisClient, err := store.NewConnectRedis(ctx, cfg.Storage.Redis, logger)
	if err != nil {
		return nil, err
	}
	closers = append(closers, func(context.Context) error { return redisClient.Close() })

	identity := adapter.NewSelfHostedIdentity(
		store.NewAccountRepository(accountsDB, logger),
		store.NewRedisSessionStore(redisClient, logger),
		cfg.App,
		logger,
	)

	return adapter.NewBackend(adapter.NewMongoDocumentStore(mongoDB, logger), objects, identity, closers...), nil
}

func newObjectStore(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger, closers *[]func(context.Context) error) (adapter.ObjectStore, error) {
	switch cfg.Adapter.ObjectStore {
	case config.ObjectStoreGCS:
		client, err := store.NewConnectGCS(ctx, cfg.Storage.GCS, logger)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, func(context.Context) error { return client.Close() })
		return adapter.NewGCSObjectStore(client, cfg.Storage.GCS.PublicBaseURL, logger), nil
	default:
		return adapter.NewCloudinaryObjectStore(cfg.Storage.Cloudinary, logger)
	}
}
