// Package embedding provides the text-to-vector engine shared by the
// ingestion pipeline and the query service.
//
// The engine is a thin client to an OpenAI-compatible /embeddings endpoint
// of a locally hosted inference server. The model identity is part of the
// engine configuration and determines the vector space: a collection built
// with one model must be queried with the same model, otherwise distances
// are not comparable. Both binaries therefore construct the engine from the
// same EMBEDDING_* environment variables.
//
// Construction validates the configuration; Warmup performs one real
// inference call to materialize the model and record the vector dimension.
// A warm-up failure is fatal at startup for both the ingestion job and the
// query service.
//
// Basic usage:
//
//	cfg := embedding.NewConfig()
//	client, err := embedding.NewClient(cfg)
//	if err != nil {
//	    return err
//	}
//	if err := client.Warmup(ctx); err != nil {
//	    return err
//	}
//	vec, err := client.Embed(ctx, "I have a headache and fever")
//
// FX Module Integration:
//
//	app := fx.New(
//	    embedding.FXModule,
//	    // ... other modules
//	)
//
// Configuration:
//
//	EMBEDDING_ENDPOINT              # Base URL of the inference server
//	EMBEDDING_MODEL                 # Model identity (default all-MiniLM-L6-v2)
//	EMBEDDING_SERVICE_TOKEN         # Optional bearer token
//	EMBEDDING_HTTP_TIMEOUT_SECONDS  # HTTP timeout (default 30)
package embedding
