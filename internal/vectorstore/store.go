package vectorstore

import (
	"context"
	"fmt"

	"github.com/pharmagpt/pharmagpt/internal/faults"
)

// Embedder is the text-to-vector engine the store embeds with.
// It is satisfied by *embedding.Client.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Store is the common interface for the vector store backends.
type Store interface {
	// Upsert writes documents by id. Existing ids are overwritten entirely
	// (content, metadata and vector), making the operation idempotent.
	Upsert(ctx context.Context, docs []Document) error

	// Query returns the topK stored documents closest to the query text,
	// ordered by non-decreasing distance. topK is clamped to the current
	// collection size; an empty collection yields an empty result.
	// Query never mutates store state.
	Query(ctx context.Context, text string, topK int) (QueryResult, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (uint64, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// validateDocuments enforces the upsert contract: ids must be non-empty
// and unique within one call.
func validateDocuments(docs []Document) error {
	seen := make(map[string]struct{}, len(docs))
	for i, doc := range docs {
		if doc.ID == "" {
			return faults.Data("vectorstore.upsert", fmt.Errorf("document at position %d has an empty id", i))
		}
		if _, dup := seen[doc.ID]; dup {
			return faults.Data("vectorstore.upsert", fmt.Errorf("duplicate document id %q in one call", doc.ID))
		}
		seen[doc.ID] = struct{}{}
	}
	return nil
}

// distanceFromSimilarity converts a cosine similarity score into the
// non-negative distance the query contract promises. Float error can push
// the similarity a hair above 1, which would yield a negative distance.
func distanceFromSimilarity(score float32) float32 {
	d := 1 - score
	if d < 0 {
		return 0
	}
	return d
}
