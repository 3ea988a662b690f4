// Package vectorstore persists medicine documents with their embedding
// vectors and answers k-nearest-neighbor queries over them.
//
// The package exposes a store-agnostic Store interface, allowing the
// application to switch between backends without changing application code:
//
//   - chromem: an embedded collection persisted under a local directory
//     (the default; the collection survives process restarts on disk)
//   - qdrant: a remote Qdrant instance reached over gRPC
//
// Both backends share the same contract:
//
//   - Upsert is idempotent by document id. Re-upserting an existing id
//     replaces content, metadata and vector entirely, never duplicates.
//     Re-running an ingestion from the start is therefore always safe.
//   - Query embeds the query text with the engine the store was built with
//     and returns up to k results ordered by non-decreasing distance
//     (distance = 1 - cosine similarity, so closer means more relevant).
//     k is clamped to the collection size; an empty collection yields an
//     empty result, not an error.
//
// The store does not embed text itself — it is constructed with an Embedder
// so the ingestion and query paths are guaranteed to share one engine
// instance and hence one vector space.
//
// Example usage:
//
//	store, err := vectorstore.NewStore(cfg, engine, log)
//	if err != nil {
//	    return err
//	}
//	err = store.Upsert(ctx, docs)
//	res, err := store.Query(ctx, "I have a headache and fever", 3)
package vectorstore
