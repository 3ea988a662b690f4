// Package retrieval answers "which medicines are relevant to this text"
// by delegating k-NN queries to the vector store.
package retrieval

import (
	"context"
	"fmt"

	"github.com/pharmagpt/pharmagpt/internal/faults"
	"github.com/pharmagpt/pharmagpt/internal/logger"
	"github.com/pharmagpt/pharmagpt/internal/vectorstore"
)

// Service performs semantic retrieval over the indexed collection.
// It never mutates store state.
type Service struct {
	store vectorstore.Store
	log   *logger.Logger
}

// NewService constructs a retrieval service.
func NewService(store vectorstore.Store, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// Retrieve embeds the query text and returns up to topK ranked results.
// An empty result is a valid outcome, distinct from a store or embedding
// failure which surfaces as an error.
func (s *Service) Retrieve(ctx context.Context, queryText string, topK int) (vectorstore.QueryResult, error) {
	if queryText == "" {
		return vectorstore.QueryResult{}, faults.Data("retrieval.retrieve", fmt.Errorf("query text cannot be empty"))
	}

	res, err := s.store.Query(ctx, queryText, topK)
	if err != nil {
		return vectorstore.QueryResult{}, err
	}

	s.log.Debug("Retrieved context", nil, map[string]interface{}{
		"query_len": len(queryText),
		"top_k":     topK,
		"results":   res.Len(),
	})
	return res, nil
}
