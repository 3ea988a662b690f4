// The server command runs the PharmaGPT query service: a conversational
// RAG API over the pre-built medicine index.
package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/pharmagpt/pharmagpt/internal/chat"
	"github.com/pharmagpt/pharmagpt/internal/embedding"
	"github.com/pharmagpt/pharmagpt/internal/llm"
	"github.com/pharmagpt/pharmagpt/internal/logger"
	"github.com/pharmagpt/pharmagpt/internal/metrics"
	"github.com/pharmagpt/pharmagpt/internal/retrieval"
	"github.com/pharmagpt/pharmagpt/internal/server"
	"github.com/pharmagpt/pharmagpt/internal/vectorstore"
)

func main() {
	// Environment from a local .env file, if present. Real environment
	// variables take precedence.
	_ = godotenv.Load()

	app := fx.New(
		logger.FXModule,
		metrics.FXModule,

		// Module order matters for startup hooks: the embedding warm-up
		// must run before the store ensures its collection, because the
		// collection dimension comes from the warmed-up engine.
		embedding.FXModule,
		vectorstore.FXModule,

		fx.Provide(
			llm.NewConfig,
			fx.Annotate(llm.NewClient, fx.As(new(chat.Completer))),
			fx.Annotate(retrieval.NewService, fx.As(new(chat.Retriever))),
			chat.NewConfig,
			chat.NewHandler,
		),

		server.FXModule,
	)

	app.Run()
}
