package vectorstore

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/pharmagpt/pharmagpt/internal/faults"
	"github.com/pharmagpt/pharmagpt/internal/logger"
)

//
// ──────────────────────────────────────────────────────────────
//   QDRANT STORE (remote)
// ──────────────────────────────────────────────────────────────
//
// This file implements the Store interface against a remote Qdrant
// instance via the official Go client, for deployments that outgrow the
// embedded backend.
//
// Responsibilities:
//   • Establish and validate connectivity with Qdrant.
//   • Create the collection if missing (dimension from the engine).
//   • Upsert document batches and run similarity queries.
//
// Qdrant point ids must be unsigned integers or UUIDs, so document ids
// like "med_42" are mapped to deterministic UUIDs (SHA-1 based). The
// original id is kept in the payload and returned by queries.
//

const (
	// payload keys alongside the metadata fields
	payloadKeyID       = "doc_id"
	payloadKeyDocument = "document"

	healthCheckTimeout = 3 * time.Second
)

// QdrantStore implements Store against a remote Qdrant collection.
type QdrantStore struct {
	api        *qdrant.Client
	embedder   Embedder
	collection string
	log        *logger.Logger
}

// NewQdrantStore constructs the client and validates connectivity via a
// health check. The Qdrant Go SDK creates lightweight gRPC connections, so
// this fails fast if the service is unreachable.
func NewQdrantStore(cfg *Config, embedder Embedder, log *logger.Logger) (*QdrantStore, error) {
	port := cfg.Qdrant.Port
	if port == 0 {
		port = 6334
	}

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Qdrant.Endpoint,
		Port:                   port,
		APIKey:                 cfg.Qdrant.ApiKey,
		SkipCompatibilityCheck: !cfg.Qdrant.CheckCompatibility,
	})
	if err != nil {
		return nil, faults.Store("vectorstore.open", fmt.Errorf("initialize qdrant client: %w", err))
	}

	s := &QdrantStore{
		api:        api,
		embedder:   embedder,
		collection: cfg.Collection,
		log:        log,
	}

	if err := s.healthCheck(); err != nil {
		return nil, faults.Store("vectorstore.open", err)
	}

	log.Info("Connected to qdrant", nil, map[string]interface{}{
		"backend":    BackendQdrant,
		"endpoint":   cfg.Qdrant.Endpoint,
		"port":       port,
		"collection": cfg.Collection,
	})

	return s, nil
}

// healthCheck verifies the availability of the Qdrant service.
// It should be lightweight and fast, it runs during startup.
func (s *QdrantStore) healthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	if _, err := s.api.HealthCheck(ctx); err != nil {
		return fmt.Errorf("qdrant health check failed: %w", err)
	}
	return nil
}

// EnsureCollection verifies that the collection exists and creates it if
// missing. Safe to call multiple times; if the collection already exists,
// the function exits early and assumes a matching embedding identity.
func (s *QdrantStore) EnsureCollection(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return faults.Store("vectorstore.ensure", fmt.Errorf("invalid vector dimension %d", dimension))
	}

	collections, err := s.api.ListCollections(ctx)
	if err != nil {
		return faults.Store("vectorstore.ensure", fmt.Errorf("list collections: %w", err))
	}

	if slices.Contains(collections, s.collection) {
		return nil
	}

	req := &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(dimension),
			Distance: qdrant.Distance_Cosine,
		}),
	}
	if err := s.api.CreateCollection(ctx, req); err != nil {
		return faults.Store("vectorstore.ensure", fmt.Errorf("create collection %q: %w", s.collection, err))
	}

	s.log.Info("Created qdrant collection", nil, map[string]interface{}{
		"collection": s.collection,
		"dimension":  dimension,
	})
	return nil
}

// Upsert embeds the document contents and writes the points. Wait=true
// blocks until the write is persisted, so a returned nil means the batch
// is durably committed.
func (s *QdrantStore) Upsert(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}
	if err := validateDocuments(docs); err != nil {
		return err
	}

	contents := make([]string, len(docs))
	for i, doc := range docs {
		contents[i] = doc.Content
	}
	vectors, err := s.embedder.EmbedBatch(ctx, contents)
	if err != nil {
		return err
	}

	points := make([]*qdrant.PointStruct, 0, len(docs))
	for i, doc := range docs {
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(pointID(doc.ID)),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(buildPayload(doc)),
		})
	}

	wait := true
	req := &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         points,
		Wait:           &wait,
	}
	if _, err := s.api.Upsert(ctx, req); err != nil {
		return faults.Store("vectorstore.upsert", err)
	}
	return nil
}

// Query embeds the text and returns the topK nearest documents.
func (s *QdrantStore) Query(ctx context.Context, text string, topK int) (QueryResult, error) {
	if topK <= 0 {
		return QueryResult{}, faults.Data("vectorstore.query", fmt.Errorf("topK must be greater than 0, got %d", topK))
	}

	count, err := s.Count(ctx)
	if err != nil {
		return QueryResult{}, err
	}
	if count == 0 {
		return QueryResult{}, nil
	}
	if uint64(topK) > count {
		topK = int(count)
	}

	vector, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return QueryResult{}, err
	}

	limit := uint64(topK)
	resp, err := s.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return QueryResult{}, faults.Store("vectorstore.query", err)
	}

	out := QueryResult{
		IDs:       make([]string, 0, len(resp)),
		Documents: make([]string, 0, len(resp)),
		Metadatas: make([]Metadata, 0, len(resp)),
		Distances: make([]float32, 0, len(resp)),
	}
	for _, point := range resp {
		out.IDs = append(out.IDs, payloadString(point.Payload, payloadKeyID))
		out.Documents = append(out.Documents, payloadString(point.Payload, payloadKeyDocument))
		out.Metadatas = append(out.Metadatas, metadataFromPayload(point.Payload))
		// Cosine scores from Qdrant are similarities, higher is closer.
		out.Distances = append(out.Distances, distanceFromSimilarity(point.Score))
	}
	return out, nil
}

// Count returns the number of stored points.
func (s *QdrantStore) Count(ctx context.Context) (uint64, error) {
	info, err := s.api.GetCollectionInfo(ctx, s.collection)
	if err != nil {
		return 0, faults.Store("vectorstore.count", fmt.Errorf("get collection %q: %w", s.collection, err))
	}
	if info.PointsCount == nil {
		return 0, nil
	}
	return *info.PointsCount, nil
}

// Close shuts down the underlying gRPC connection.
func (s *QdrantStore) Close(ctx context.Context) error {
	return s.api.Close()
}

// pointID maps a document id to a deterministic UUID accepted by Qdrant.
func pointID(docID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(docID)).String()
}

// buildPayload flattens a document into the stored payload: the original
// id and content next to the metadata fields.
func buildPayload(doc Document) map[string]any {
	payload := map[string]any{
		payloadKeyID:       doc.ID,
		payloadKeyDocument: doc.Content,
	}
	for k, v := range doc.Metadata.ToMap() {
		payload[k] = v
	}
	return payload
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	if v, ok := payload[key]; ok {
		return v.GetStringValue()
	}
	return ""
}

func metadataFromPayload(payload map[string]*qdrant.Value) Metadata {
	flat := make(map[string]string, len(payload))
	for k, v := range payload {
		flat[k] = v.GetStringValue()
	}
	return MetadataFromMap(flat)
}

var _ Store = (*QdrantStore)(nil)
