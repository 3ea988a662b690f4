package vectorstore

import (
	"context"
	"fmt"
	"runtime"

	chromem "github.com/philippgille/chromem-go"

	"github.com/pharmagpt/pharmagpt/internal/faults"
	"github.com/pharmagpt/pharmagpt/internal/logger"
)

//
// ──────────────────────────────────────────────────────────────
//   CHROMEM STORE (embedded, persistent)
// ──────────────────────────────────────────────────────────────
//
// This file implements the Store interface on top of chromem-go, an
// embedded vector database persisted under a local directory.
//
// Responsibilities:
//   • Open or create the named collection at the configured path.
//   • Upsert (id, vector, document, metadata) tuples; writes are
//     persisted through to disk as they happen.
//   • Answer k-NN queries by cosine similarity, converted to distance.
//
// The embedding model identity used to build the collection is an implicit
// part of the on-disk schema. Opening an existing collection assumes the
// configured engine matches the one that built it.
//

// ChromemStore persists the collection under a local directory via chromem-go.
type ChromemStore struct {
	db   *chromem.DB
	coll *chromem.Collection
	log  *logger.Logger
}

// NewChromemStore opens (or creates) the persistent collection.
// Opening is idempotent: an existing collection at the path is reused.
func NewChromemStore(cfg *Config, embedder Embedder, log *logger.Logger) (*ChromemStore, error) {
	db, err := chromem.NewPersistentDB(cfg.Path, false)
	if err != nil {
		return nil, faults.Store("vectorstore.open", fmt.Errorf("open persistent db at %q: %w", cfg.Path, err))
	}

	embedFunc := func(ctx context.Context, text string) ([]float32, error) {
		return embedder.Embed(ctx, text)
	}

	coll, err := db.GetOrCreateCollection(cfg.Collection, nil, embedFunc)
	if err != nil {
		return nil, faults.Store("vectorstore.open", fmt.Errorf("get or create collection %q: %w", cfg.Collection, err))
	}

	log.Info("Opened vector collection", nil, map[string]interface{}{
		"backend":    BackendChromem,
		"path":       cfg.Path,
		"collection": cfg.Collection,
		"documents":  coll.Count(),
	})

	return &ChromemStore{db: db, coll: coll, log: log}, nil
}

// Upsert writes the documents into the collection. Embeddings are computed
// through the collection's embedding function; an existing id is replaced
// entirely.
func (s *ChromemStore) Upsert(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}
	if err := validateDocuments(docs); err != nil {
		return err
	}

	converted := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		converted[i] = chromem.Document{
			ID:       doc.ID,
			Content:  doc.Content,
			Metadata: doc.Metadata.ToMap(),
		}
	}

	if err := s.coll.AddDocuments(ctx, converted, runtime.NumCPU()); err != nil {
		return faults.Store("vectorstore.upsert", err)
	}
	return nil
}

// Query embeds the text and returns the topK nearest documents.
func (s *ChromemStore) Query(ctx context.Context, text string, topK int) (QueryResult, error) {
	if topK <= 0 {
		return QueryResult{}, faults.Data("vectorstore.query", fmt.Errorf("topK must be greater than 0, got %d", topK))
	}

	count := s.coll.Count()
	if count == 0 {
		return QueryResult{}, nil
	}
	if topK > count {
		topK = count
	}

	results, err := s.coll.Query(ctx, text, topK, nil, nil)
	if err != nil {
		return QueryResult{}, faults.Store("vectorstore.query", err)
	}

	out := QueryResult{
		IDs:       make([]string, 0, len(results)),
		Documents: make([]string, 0, len(results)),
		Metadatas: make([]Metadata, 0, len(results)),
		Distances: make([]float32, 0, len(results)),
	}
	for _, r := range results {
		out.IDs = append(out.IDs, r.ID)
		out.Documents = append(out.Documents, r.Content)
		out.Metadatas = append(out.Metadatas, MetadataFromMap(r.Metadata))
		out.Distances = append(out.Distances, distanceFromSimilarity(r.Similarity))
	}
	return out, nil
}

// Count returns the number of stored documents.
func (s *ChromemStore) Count(ctx context.Context) (uint64, error) {
	return uint64(s.coll.Count()), nil
}

// Close is a no-op: chromem persists writes as they happen and holds no
// connections.
func (s *ChromemStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*ChromemStore)(nil)
