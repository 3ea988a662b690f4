package vectorstore

import (
	"context"
	"hash/fnv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmagpt/pharmagpt/internal/faults"
	"github.com/pharmagpt/pharmagpt/internal/logger"
)

// stubEmbedder maps text to a bag-of-words vector over a small fixed
// dimension. Deterministic, and texts sharing words get close vectors,
// which is enough to exercise distance ordering.
type stubEmbedder struct{}

func (stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec := make([]float32, 16)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(strings.Trim(word, ".,:")))
		vec[h.Sum32()%16]++
	}
	return vec, nil
}

func (s stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i], _ = s.Embed(ctx, t)
	}
	return out, nil
}

func newTestStore(t *testing.T) *ChromemStore {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Path = t.TempDir()

	log := logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "test"})
	store, err := NewChromemStore(cfg, stubEmbedder{}, log)
	require.NoError(t, err)
	return store
}

func doc(id, content, name string) Document {
	return Document{ID: id, Content: content, Metadata: Metadata{Name: name}}
}

func TestChromemStore_UpsertOverwritesExistingID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, []Document{doc("med_0", "old content about pain", "Old")}))
	require.NoError(t, store.Upsert(ctx, []Document{doc("med_0", "new content about fever", "New")}))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	res, err := store.Query(ctx, "fever", 1)
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	assert.Equal(t, "med_0", res.IDs[0])
	assert.Equal(t, "new content about fever", res.Documents[0])
	assert.Equal(t, "New", res.Metadatas[0].Name)
}

func TestChromemStore_QueryClampsKAndSortsDistances(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, []Document{
		doc("med_0", "treats fever and headache", "A"),
		doc("med_1", "relieves joint pain", "B"),
		doc("med_2", "suppresses dry cough", "C"),
	}))

	res, err := store.Query(ctx, "fever", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Len())

	require.Len(t, res.Distances, 3)
	require.Len(t, res.Documents, 3)
	require.Len(t, res.Metadatas, 3)
	for i := range res.Distances {
		assert.GreaterOrEqual(t, res.Distances[i], float32(0))
		if i > 0 {
			assert.LessOrEqual(t, res.Distances[i-1], res.Distances[i])
		}
	}
}

func TestChromemStore_EmptyCollectionYieldsEmptyResult(t *testing.T) {
	store := newTestStore(t)

	res, err := store.Query(context.Background(), "anything", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
}

func TestChromemStore_UpsertValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Upsert(ctx, []Document{doc("", "no id", "X")})
	require.Error(t, err)
	assert.Equal(t, faults.KindData, faults.KindOf(err))

	err = store.Upsert(ctx, []Document{
		doc("med_0", "first", "A"),
		doc("med_0", "second", "B"),
	})
	require.Error(t, err)
	assert.Equal(t, faults.KindData, faults.KindOf(err))
}

func TestChromemStore_QueryRejectsNonPositiveK(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Query(context.Background(), "fever", 0)
	require.Error(t, err)
	assert.Equal(t, faults.KindData, faults.KindOf(err))
}

func TestChromemStore_PersistsAcrossReopen(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = t.TempDir()
	log := logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "test"})
	ctx := context.Background()

	store, err := NewChromemStore(cfg, stubEmbedder{}, log)
	require.NoError(t, err)
	require.NoError(t, store.Upsert(ctx, []Document{doc("med_0", "treats fever", "A")}))

	reopened, err := NewChromemStore(cfg, stubEmbedder{}, log)
	require.NoError(t, err)
	count, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestChromemStore_EndToEndFeverQuery(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, []Document{
		doc("med_0", "Medicine: Paracetamol\nBenefits: reduces fever and mild pain", "Paracetamol"),
		doc("med_1", "Medicine: Ibuprofen\nBenefits: treats inflammation fever and aches", "Ibuprofen"),
		doc("med_2", "Medicine: Cough Syrup\nBenefits: soothes throat and suppresses cough", "Cough Syrup"),
	}))

	res, err := store.Query(ctx, "fever", 2)
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())

	ingested := map[string]bool{"med_0": true, "med_1": true, "med_2": true}
	for _, id := range res.IDs {
		assert.True(t, ingested[id], "result id %q must come from the ingested set", id)
	}
	assert.LessOrEqual(t, res.Distances[0], res.Distances[1])
}

func TestMetadata_MapRoundTrip(t *testing.T) {
	m := Metadata{
		Name:             "Paracetamol",
		Contains:         "Paracetamol 500mg",
		SideEffects:      "Nausea",
		HowToUse:         "After food",
		SafetyAdvice:     "Avoid alcohol",
		TherapeuticClass: "Analgesic",
		HabitForming:     "No",
	}
	assert.Equal(t, m, MetadataFromMap(m.ToMap()))

	// Missing keys come back as empty strings, never null.
	assert.Equal(t, Metadata{}, MetadataFromMap(map[string]string{}))
}
