package vectorstore

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/pharmagpt/pharmagpt/internal/embedding"
	"github.com/pharmagpt/pharmagpt/internal/logger"
)

// FXModule wires the vector store into Fx.
//
// It provides:
//   - *Config          (NewConfig)
//   - Store            (NewStore, backend selected by config)
//   - Lifecycle hook   (RegisterStoreLifecycle)
var FXModule = fx.Module(
	"vectorstore",

	fx.Provide(
		NewConfig,      // -> *Config
		NewStoreWithDI, // -> Store
	),

	fx.Invoke(RegisterStoreLifecycle),
)

// StoreParams groups the dependencies needed to construct a Store via
// dependency injection. The embedded fx.In marker enables automatic
// injection of the struct fields from the dependency container.
type StoreParams struct {
	fx.In

	Config   *Config
	Embedder *embedding.Client
	Logger   *logger.Logger
}

// NewStoreWithDI constructs the configured Store backend.
func NewStoreWithDI(params StoreParams) (Store, error) {
	return NewStore(params.Config, params.Embedder, params.Logger)
}

// NewStore constructs the backend named by cfg.Backend.
// Both binaries go through here so the selection logic stays in one place.
func NewStore(cfg *Config, embedder Embedder, log *logger.Logger) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendChromem:
		return NewChromemStore(cfg, embedder, log)
	case BackendQdrant:
		return NewQdrantStore(cfg, embedder, log)
	default:
		return nil, fmt.Errorf("vectorstore: unknown backend %q", cfg.Backend)
	}
}

// StoreLifeCycleParams groups the dependencies for store lifecycle management.
type StoreLifeCycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Store     Store
	Embedder  *embedding.Client
}

// RegisterStoreLifecycle sets up:
//  1. Collection creation for the remote backend on application start.
//     This hook is appended after the embedding warm-up hook, so the
//     engine's vector dimension is known by the time it runs.
//  2. Graceful close of backend connections on application stop.
func RegisterStoreLifecycle(params StoreLifeCycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if qs, ok := params.Store.(*QdrantStore); ok {
				return qs.EnsureCollection(ctx, params.Embedder.Dimension())
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return params.Store.Close(ctx)
		},
	})
}
