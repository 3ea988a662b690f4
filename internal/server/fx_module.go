package server

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/pharmagpt/pharmagpt/internal/logger"
)

// FXModule wires the HTTP server into Fx.
//
// It provides:
//   - Config          (NewConfig)
//   - *gin.Engine     (NewRouter)
//   - *http.Server    (NewServer)
//   - Lifecycle hook  (RegisterServerLifecycle)
var FXModule = fx.Module("server",
	fx.Provide(
		NewConfig,
		NewRouter,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// ServerLifeCycleParams groups the dependencies for server lifecycle
// management.
type ServerLifeCycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Server    *http.Server
	Logger    *logger.Logger
}

// RegisterServerLifecycle starts the listener on application start and
// shuts it down gracefully on stop. In-flight requests get until the stop
// context's deadline to finish.
func RegisterServerLifecycle(params ServerLifeCycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Logger.Info("Starting HTTP server", nil, map[string]interface{}{
				"address": params.Server.Addr,
			})
			go func() {
				if err := params.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					params.Logger.Error("HTTP server failed", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Shutting down HTTP server", nil)
			return params.Server.Shutdown(ctx)
		},
	})
}
