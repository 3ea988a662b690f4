package metrics

import "go.uber.org/fx"

// FXModule defines the Fx module for the metrics package.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewConfig,
		NewMetrics,
	),
)
