// The ingest command builds the medicine index: it reads the dataset,
// embeds every record and upserts the result into the vector store. It
// runs once and exits, with a non-zero status when the run fails.
package main

import (
	"context"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/pharmagpt/pharmagpt/internal/embedding"
	"github.com/pharmagpt/pharmagpt/internal/ingest"
	"github.com/pharmagpt/pharmagpt/internal/logger"
	"github.com/pharmagpt/pharmagpt/internal/vectorstore"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		logger.FXModule,

		// The embedding warm-up hook must run before the store hook so
		// the collection dimension is known when it gets created.
		embedding.FXModule,
		vectorstore.FXModule,

		fx.Provide(
			ingest.NewConfig,
			ingest.NewPipeline,
		),
		fx.Invoke(registerRun),
	)

	app.Run()
}

// RunParams collects the dependencies of the one-shot ingestion hook.
type RunParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Config     *ingest.Config
	Pipeline   *ingest.Pipeline
	Logger     *logger.Logger
}

// registerRun schedules the ingestion run once the app has started, so
// that the embedding warm-up and collection setup hooks have completed
// by the time documents start flowing.
func registerRun(p RunParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go run(p)
			return nil
		},
	})
}

func run(p RunParams) {
	ctx := context.Background()

	count, err := p.Pipeline.Run(ctx)
	if err != nil {
		p.Logger.Error("Ingestion failed", err)
		_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
		return
	}

	if p.Config.Verify {
		if err := p.Pipeline.Verify(ctx); err != nil {
			p.Logger.Error("Index verification failed", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}
	}

	p.Logger.Info("Ingestion complete", nil, map[string]interface{}{
		"documents": count,
	})
	_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
}
