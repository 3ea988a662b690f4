package embedding

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the embedding engine into Fx.
//
// It provides:
//   - Config                 (NewConfig)
//   - *Client                (NewClient)
//   - Lifecycle hook         (RegisterEmbeddingLifecycle)
var FXModule = fx.Module(
	"embedding",

	fx.Provide(
		NewConfig, // -> *Config
		NewClient, // -> *Client
	),

	fx.Invoke(RegisterEmbeddingLifecycle),
)

// RegisterEmbeddingLifecycle warms the model up on application start.
// The warm-up is the expensive model materialization step; if it fails,
// startup is aborted — running with a cold or absent model would make
// every subsequent embedding call fail anyway.
func RegisterEmbeddingLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Warmup(ctx)
		},
	})
}
