package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booklib/internal/models"
	"booklib/internal/storage"
	"booklib/internal/version"
)

func setupTestProvider(t *testing.T) *Provider {
	t.Helper()
	metrics := models.MetricsConfig{Enabled: true, Path: "/metrics", Port: 9090}
	obs := models.ObservabilityConfig{
		ServiceName: "test",
		Tracing: models.TracingConfig{
			Enabled:    true,
			Exporter:   "stdout",
			SampleRate: 1.0,
		},
	}
	provider, err := Setup(metrics, obs, version.Info{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return provider
}

func newInstrumented(t *testing.T) *InstrumentedStore {
	t.Helper()
	_ = setupTestProvider(t)

	instrumented, err := NewInstrumentedStore(storage.NewMemoryStore())
	require.NoError(t, err)
	return instrumented
}

func TestNewInstrumentedStore(t *testing.T) {
	instrumented := newInstrumented(t)
	assert.NotNil(t, instrumented)
}

func TestInstrumentedStore_AuthorOperations(t *testing.T) {
	instrumented := newInstrumented(t)
	ctx := context.Background()

	author, err := instrumented.AddAuthor(ctx, &models.Author{Name: "George Orwell", Country: "UK", BirthYear: 1903})
	require.NoError(t, err)
	assert.Equal(t, 1, author.ID)

	got, err := instrumented.GetAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "George Orwell", got.Name)

	authors, err := instrumented.Authors(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 1)

	updated, err := instrumented.UpdateAuthor(ctx, author.ID, &models.Author{Name: "Eric Blair", Country: "UK", BirthYear: 1903})
	require.NoError(t, err)
	assert.Equal(t, "Eric Blair", updated.Name)

	deleted, err := instrumented.DeleteAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, deleted.ID)
}

func TestInstrumentedStore_BookOperations(t *testing.T) {
	instrumented := newInstrumented(t)
	ctx := context.Background()

	author, err := instrumented.AddAuthor(ctx, &models.Author{Name: "George Orwell", Country: "UK", BirthYear: 1903})
	require.NoError(t, err)

	book, err := instrumented.AddBook(ctx, &models.Book{Title: "1984", AuthorID: author.ID, Year: 1949, Genre: "Dystopian", ISBN: "978-0-452-28423-4"})
	require.NoError(t, err)
	assert.Equal(t, 1, book.ID)

	got, err := instrumented.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "1984", got.Title)

	books, err := instrumented.BooksByAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Len(t, books, 1)

	_, err = instrumented.DeleteBook(ctx, book.ID)
	require.NoError(t, err)
}

func TestInstrumentedStore_NotFoundPassesThrough(t *testing.T) {
	instrumented := newInstrumented(t)

	_, err := instrumented.GetAuthor(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrAuthorNotFound,
		"instrumentation must not mask the sentinel")

	_, err = instrumented.GetBook(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrBookNotFound)
}

func TestInstrumentedStore_Close(t *testing.T) {
	instrumented := newInstrumented(t)
	assert.NoError(t, instrumented.Close())
}
