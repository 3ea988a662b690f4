package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmagpt/pharmagpt/internal/faults"
	"github.com/pharmagpt/pharmagpt/internal/logger"
	"github.com/pharmagpt/pharmagpt/internal/vectorstore"
)

type fakeStore struct {
	result vectorstore.QueryResult
	err    error

	gotText string
	gotTopK int
}

func (f *fakeStore) Upsert(ctx context.Context, docs []vectorstore.Document) error { return nil }

func (f *fakeStore) Query(ctx context.Context, text string, topK int) (vectorstore.QueryResult, error) {
	f.gotText = text
	f.gotTopK = topK
	return f.result, f.err
}

func (f *fakeStore) Count(ctx context.Context) (uint64, error) { return 0, nil }
func (f *fakeStore) Close(ctx context.Context) error           { return nil }

func testLogger() *logger.Logger {
	return logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "test"})
}

func TestRetrieve_DelegatesToStore(t *testing.T) {
	store := &fakeStore{result: vectorstore.QueryResult{
		IDs:       []string{"med_1", "med_0"},
		Documents: []string{"a", "b"},
		Metadatas: []vectorstore.Metadata{{Name: "A"}, {Name: "B"}},
		Distances: []float32{0.1, 0.4},
	}}

	res, err := NewService(store, testLogger()).Retrieve(context.Background(), "fever", 2)
	require.NoError(t, err)

	assert.Equal(t, "fever", store.gotText)
	assert.Equal(t, 2, store.gotTopK)
	assert.Equal(t, []string{"med_1", "med_0"}, res.IDs)
}

func TestRetrieve_EmptyQueryIsDataError(t *testing.T) {
	svc := NewService(&fakeStore{}, testLogger())

	_, err := svc.Retrieve(context.Background(), "", 2)
	require.Error(t, err)
	assert.Equal(t, faults.KindData, faults.KindOf(err))
}

func TestRetrieve_StoreErrorSurfaces(t *testing.T) {
	store := &fakeStore{err: faults.Store("vectorstore.query", errors.New("down"))}

	_, err := NewService(store, testLogger()).Retrieve(context.Background(), "fever", 2)
	require.Error(t, err)
	assert.Equal(t, faults.KindStore, faults.KindOf(err))
}

func TestRetrieve_EmptyResultIsNotAnError(t *testing.T) {
	res, err := NewService(&fakeStore{}, testLogger()).Retrieve(context.Background(), "fever", 2)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
}
