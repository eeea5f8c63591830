package observability

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"booklib/internal/models"
	"booklib/internal/storage"
)

// InstrumentedStore wraps a storage.Store implementation with OpenTelemetry
// tracing and metrics instrumentation.
type InstrumentedStore struct {
	inner    storage.Store
	tracer   trace.Tracer
	duration metric.Float64Histogram
	errors   metric.Int64Counter
}

// NewInstrumentedStore creates a store wrapper that records trace spans,
// operation latency histograms, and error counters for every store method
// call.
func NewInstrumentedStore(inner storage.Store) (*InstrumentedStore, error) {
	tracer := otel.Tracer("booklib/storage")
	meter := otel.Meter("booklib/storage")

	duration, err := meter.Float64Histogram(
		"storage.operation.duration",
		metric.WithDescription("Duration of storage operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	errCounter, err := meter.Int64Counter(
		"storage.operation.errors",
		metric.WithDescription("Number of storage operation errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	return &InstrumentedStore{
		inner:    inner,
		tracer:   tracer,
		duration: duration,
		errors:   errCounter,
	}, nil
}

func (s *InstrumentedStore) startSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, "storage."+operation,
		trace.WithAttributes(append([]attribute.KeyValue{
			attribute.String("storage.operation", operation),
		}, attrs...)...),
	)
	return ctx, span
}

// record finishes the span and updates the metrics. Not-found sentinels are
// normal domain outcomes, not failures, so they do not count as errors.
func (s *InstrumentedStore) record(ctx context.Context, span trace.Span, operation string, start time.Time, err error) {
	elapsed := time.Since(start).Seconds()
	attrs := metric.WithAttributes(attribute.String("operation", operation))

	s.duration.Record(ctx, elapsed, attrs)

	switch {
	case err == nil:
		span.SetStatus(codes.Ok, "")
	case errors.Is(err, storage.ErrAuthorNotFound) || errors.Is(err, storage.ErrBookNotFound):
		span.SetAttributes(attribute.Bool("storage.not_found", true))
		span.SetStatus(codes.Ok, "")
	default:
		s.errors.Add(ctx, 1, attrs)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}

func (s *InstrumentedStore) Authors(ctx context.Context) ([]*models.Author, error) {
	ctx, span := s.startSpan(ctx, "Authors")
	start := time.Now()
	result, err := s.inner.Authors(ctx)
	s.record(ctx, span, "Authors", start, err)
	return result, err
}

func (s *InstrumentedStore) GetAuthor(ctx context.Context, id int) (*models.Author, error) {
	ctx, span := s.startSpan(ctx, "GetAuthor", attribute.Int("author_id", id))
	start := time.Now()
	result, err := s.inner.GetAuthor(ctx, id)
	s.record(ctx, span, "GetAuthor", start, err)
	return result, err
}

func (s *InstrumentedStore) AddAuthor(ctx context.Context, author *models.Author) (*models.Author, error) {
	ctx, span := s.startSpan(ctx, "AddAuthor")
	start := time.Now()
	result, err := s.inner.AddAuthor(ctx, author)
	s.record(ctx, span, "AddAuthor", start, err)
	return result, err
}

func (s *InstrumentedStore) UpdateAuthor(ctx context.Context, id int, author *models.Author) (*models.Author, error) {
	ctx, span := s.startSpan(ctx, "UpdateAuthor", attribute.Int("author_id", id))
	start := time.Now()
	result, err := s.inner.UpdateAuthor(ctx, id, author)
	s.record(ctx, span, "UpdateAuthor", start, err)
	return result, err
}

func (s *InstrumentedStore) DeleteAuthor(ctx context.Context, id int) (*models.Author, error) {
	ctx, span := s.startSpan(ctx, "DeleteAuthor", attribute.Int("author_id", id))
	start := time.Now()
	result, err := s.inner.DeleteAuthor(ctx, id)
	s.record(ctx, span, "DeleteAuthor", start, err)
	return result, err
}

func (s *InstrumentedStore) Books(ctx context.Context) ([]*models.Book, error) {
	ctx, span := s.startSpan(ctx, "Books")
	start := time.Now()
	result, err := s.inner.Books(ctx)
	s.record(ctx, span, "Books", start, err)
	return result, err
}

func (s *InstrumentedStore) GetBook(ctx context.Context, id int) (*models.Book, error) {
	ctx, span := s.startSpan(ctx, "GetBook", attribute.Int("book_id", id))
	start := time.Now()
	result, err := s.inner.GetBook(ctx, id)
	s.record(ctx, span, "GetBook", start, err)
	return result, err
}

func (s *InstrumentedStore) AddBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	ctx, span := s.startSpan(ctx, "AddBook", attribute.Int("author_id", book.AuthorID))
	start := time.Now()
	result, err := s.inner.AddBook(ctx, book)
	s.record(ctx, span, "AddBook", start, err)
	return result, err
}

func (s *InstrumentedStore) UpdateBook(ctx context.Context, id int, book *models.Book) (*models.Book, error) {
	ctx, span := s.startSpan(ctx, "UpdateBook", attribute.Int("book_id", id))
	start := time.Now()
	result, err := s.inner.UpdateBook(ctx, id, book)
	s.record(ctx, span, "UpdateBook", start, err)
	return result, err
}

func (s *InstrumentedStore) DeleteBook(ctx context.Context, id int) (*models.Book, error) {
	ctx, span := s.startSpan(ctx, "DeleteBook", attribute.Int("book_id", id))
	start := time.Now()
	result, err := s.inner.DeleteBook(ctx, id)
	s.record(ctx, span, "DeleteBook", start, err)
	return result, err
}

func (s *InstrumentedStore) BooksByAuthor(ctx context.Context, authorID int) ([]*models.Book, error) {
	ctx, span := s.startSpan(ctx, "BooksByAuthor", attribute.Int("author_id", authorID))
	start := time.Now()
	result, err := s.inner.BooksByAuthor(ctx, authorID)
	s.record(ctx, span, "BooksByAuthor", start, err)
	return result, err
}

func (s *InstrumentedStore) Close() error {
	return s.inner.Close()
}
