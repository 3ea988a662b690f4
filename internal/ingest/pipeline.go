// Package ingest turns the raw medicine table into searchable documents and
// indexes them into the vector store in batches.
package ingest

import (
	"context"
	"fmt"

	"github.com/pharmagpt/pharmagpt/internal/logger"
	"github.com/pharmagpt/pharmagpt/internal/normalize"
	"github.com/pharmagpt/pharmagpt/internal/vectorstore"
)

// contentTemplate composes the searchable text from the fields most useful
// for symptom and benefit matching. Changing this template changes what
// queries can find, so it is fixed.
const contentTemplate = "Medicine: %s\nBenefits: %s\nIntroduction: %s\nHow it works: %s"

// verifyQuery is the smoke query run after ingestion when verification is
// enabled.
const verifyQuery = "I have a headache and fever"

// Pipeline reads the source table, composes documents and upserts them into
// the vector store.
type Pipeline struct {
	cfg   *Config
	store vectorstore.Store
	log   *logger.Logger
}

// NewPipeline constructs an ingestion pipeline.
func NewPipeline(cfg *Config, store vectorstore.Store, log *logger.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, store: store, log: log}, nil
}

// Run executes one ingestion pass and returns the number of documents
// indexed. Any batch failure aborts the run; batches already committed stay
// committed. Because upserts are idempotent by id, re-running from the
// start is always safe.
func (p *Pipeline) Run(ctx context.Context) (int, error) {
	p.log.Info("Loading source table", nil, map[string]interface{}{
		"path":  p.cfg.DataPath,
		"limit": p.cfg.RowLimit,
	})

	records, err := ReadRecords(p.cfg.DataPath, p.cfg.RowLimit)
	if err != nil {
		return 0, err
	}

	docs := make([]vectorstore.Document, len(records))
	for idx, rec := range records {
		docs[idx] = buildDocument(idx, rec)
	}

	p.log.Info("Processing rows", nil, map[string]interface{}{"rows": len(docs)})

	if err := p.index(ctx, docs); err != nil {
		return 0, err
	}

	p.log.Info("Successfully indexed medicines", nil, map[string]interface{}{"documents": len(docs)})
	return len(docs), nil
}

// index partitions the documents into consecutive batches and upserts them
// in order. Batch order has no semantic effect, it only bounds peak memory
// and gives progress visibility.
func (p *Pipeline) index(ctx context.Context, docs []vectorstore.Document) error {
	for start := 0; start < len(docs); start += p.cfg.BatchSize {
		end := start + p.cfg.BatchSize
		if end > len(docs) {
			end = len(docs)
		}
		batchNo := start/p.cfg.BatchSize + 1

		if err := p.store.Upsert(ctx, docs[start:end]); err != nil {
			return fmt.Errorf("indexing batch %d [%d:%d]: %w", batchNo, start, end, err)
		}

		p.log.Info("Indexed batch", nil, map[string]interface{}{
			"batch": batchNo,
			"from":  start,
			"to":    end,
		})
	}
	return nil
}

// Verify runs a smoke query against the freshly built index and logs the
// nearest medicines with their distances.
func (p *Pipeline) Verify(ctx context.Context) error {
	res, err := p.store.Query(ctx, verifyQuery, 3)
	if err != nil {
		return fmt.Errorf("verify query: %w", err)
	}

	for i := 0; i < res.Len(); i++ {
		p.log.Info("Verify hit", nil, map[string]interface{}{
			"rank":     i + 1,
			"name":     res.Metadatas[i].Name,
			"distance": res.Distances[i],
		})
	}
	return nil
}

// buildDocument composes the searchable content and display metadata for
// the record at position idx. Every field passes through the normalizer, so
// absent values become empty strings rather than errors.
//
// The id is positional: re-running against a reordered or filtered source
// assigns the same ids to different medicines, so external references to
// ids only stay valid as long as the source row order does.
func buildDocument(idx int, rec Record) vectorstore.Document {
	content := fmt.Sprintf(contentTemplate,
		normalize.Clean(rec.Name),
		normalize.Clean(rec.ProductBenefits),
		normalize.Clean(rec.ProductIntroduction),
		normalize.Clean(rec.HowWorks),
	)

	return vectorstore.Document{
		ID:      fmt.Sprintf("med_%d", idx),
		Content: content,
		Metadata: vectorstore.Metadata{
			Name:             normalize.Clean(rec.Name),
			Contains:         normalize.Clean(rec.Contains),
			SideEffects:      normalize.Clean(rec.SideEffect),
			HowToUse:         normalize.Clean(rec.HowToUse),
			SafetyAdvice:     normalize.Clean(rec.SafetyAdvice),
			TherapeuticClass: normalize.Clean(rec.TherapeuticClass),
			HabitForming:     normalize.Clean(rec.HabitForming),
		},
	}
}
