// Package library holds the business rules of the book catalog: referential
// integrity between books and authors, filtering, pagination, and search.
// Handlers translate HTTP to service calls; the service raises typed
// ServiceErrors which only the API layer formats into responses.
package library

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"booklib/internal/models"
	"booklib/internal/storage"
	"booklib/internal/validation"
)

// Pagination bounds for book listings.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Service implements the catalog operations on top of a Store.
type Service struct {
	store     storage.Store
	validator *validation.Validator
}

// NewService creates a library service with the given store and validator.
func NewService(store storage.Store, validator *validation.Validator) *Service {
	return &Service{
		store:     store,
		validator: validator,
	}
}

// ListAuthors returns all authors, optionally filtered by exact country.
func (s *Service) ListAuthors(ctx context.Context, country string) ([]*models.Author, error) {
	authors, err := s.store.Authors(ctx)
	if err != nil {
		return nil, NewInternalError("failed to list authors", err)
	}

	if country == "" {
		return authors, nil
	}

	filtered := make([]*models.Author, 0, len(authors))
	for _, author := range authors {
		if author.Country == country {
			filtered = append(filtered, author)
		}
	}
	return filtered, nil
}

// GetAuthor returns the author with the given ID together with all books
// referencing it.
func (s *Service) GetAuthor(ctx context.Context, id int) (*models.AuthorWithBooks, error) {
	author, err := s.store.GetAuthor(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrAuthorNotFound) {
			return nil, NewAuthorNotFoundError(id)
		}
		return nil, NewInternalError("failed to get author", err)
	}

	books, err := s.store.BooksByAuthor(ctx, id)
	if err != nil {
		return nil, NewInternalError("failed to get author's books", err)
	}

	return &models.AuthorWithBooks{Author: *author, Books: books}, nil
}

// CreateAuthor validates the request and stores a new author.
func (s *Service) CreateAuthor(ctx context.Context, req *models.AuthorRequest) (*models.Author, error) {
	if details := s.validator.Struct(req); details != nil {
		return nil, NewValidationFailedError(details)
	}

	author, err := s.store.AddAuthor(ctx, req.ToAuthor())
	if err != nil {
		return nil, NewInternalError("failed to create author", err)
	}
	return author, nil
}

// UpdateAuthor validates the request and replaces all fields of the author
// with the given ID. Full update: the request carries every field.
func (s *Service) UpdateAuthor(ctx context.Context, id int, req *models.AuthorRequest) (*models.Author, error) {
	if details := s.validator.Struct(req); details != nil {
		return nil, NewValidationFailedError(details)
	}

	author, err := s.store.UpdateAuthor(ctx, id, req.ToAuthor())
	if err != nil {
		if errors.Is(err, storage.ErrAuthorNotFound) {
			return nil, NewAuthorNotFoundError(id)
		}
		return nil, NewInternalError("failed to update author", err)
	}
	return author, nil
}

// DeleteAuthor removes the author with the given ID. An author still
// referenced by at least one book cannot be deleted; the author remains in
// the store and the caller receives a 400-class error.
func (s *Service) DeleteAuthor(ctx context.Context, id int) (*models.Author, error) {
	if _, err := s.store.GetAuthor(ctx, id); err != nil {
		if errors.Is(err, storage.ErrAuthorNotFound) {
			return nil, NewAuthorNotFoundError(id)
		}
		return nil, NewInternalError("failed to get author", err)
	}

	books, err := s.store.BooksByAuthor(ctx, id)
	if err != nil {
		return nil, NewInternalError("failed to check author's books", err)
	}
	if len(books) > 0 {
		return nil, NewBadRequestError("Cannot delete author with existing books")
	}

	author, err := s.store.DeleteAuthor(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrAuthorNotFound) {
			return nil, NewAuthorNotFoundError(id)
		}
		return nil, NewInternalError("failed to delete author", err)
	}
	return author, nil
}

// ListBooksQuery captures the filter and pagination parameters of a book
// listing.
type ListBooksQuery struct {
	Genre string
	Page  int
	Limit int
}

// Normalize applies defaults and bounds: page at least 1, limit between 1
// and MaxPageSize with DefaultPageSize as fallback. Invalid values are
// recovered into a normal listing rather than failing the request.
func (q *ListBooksQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
}

// ListBooks returns one page of books, optionally filtered by exact genre,
// with the referenced author attached to each book. A page past the end of
// the collection clamps to the last valid page instead of returning an
// empty result.
func (s *Service) ListBooks(ctx context.Context, query ListBooksQuery) ([]*models.BookWithAuthor, *models.Pagination, error) {
	query.Normalize()

	books, err := s.store.Books(ctx)
	if err != nil {
		return nil, nil, NewInternalError("failed to list books", err)
	}

	if query.Genre != "" {
		filtered := make([]*models.Book, 0, len(books))
		for _, book := range books {
			if book.Genre == query.Genre {
				filtered = append(filtered, book)
			}
		}
		books = filtered
	}

	total := len(books)
	totalPages := (total + query.Limit - 1) / query.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	page := query.Page
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * query.Limit
	end := start + query.Limit
	if end > total {
		end = total
	}

	paged, err := s.attachAuthors(ctx, books[start:end])
	if err != nil {
		return nil, nil, err
	}

	pagination := &models.Pagination{
		Page:       page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}

	return paged, pagination, nil
}

// SearchBooks returns all books whose title contains the query as a
// case-insensitive substring. A missing or blank query is a client error.
func (s *Service) SearchBooks(ctx context.Context, q string) ([]*models.BookWithAuthor, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, NewBadRequestError(`Query parameter "q" is required`)
	}

	books, err := s.store.Books(ctx)
	if err != nil {
		return nil, NewInternalError("failed to search books", err)
	}

	keyword := strings.ToLower(q)
	matched := make([]*models.Book, 0)
	for _, book := range books {
		if strings.Contains(strings.ToLower(book.Title), keyword) {
			matched = append(matched, book)
		}
	}

	return s.attachAuthors(ctx, matched)
}

// GetBook returns the book with the given ID with its author attached.
func (s *Service) GetBook(ctx context.Context, id int) (*models.BookWithAuthor, error) {
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookNotFound) {
			return nil, NewBookNotFoundError(id)
		}
		return nil, NewInternalError("failed to get book", err)
	}

	return s.attachAuthor(ctx, book)
}

// CreateBook validates the request, verifies the referenced author exists,
// and stores a new book. Nothing is persisted when either check fails.
func (s *Service) CreateBook(ctx context.Context, req *models.BookRequest) (*models.BookWithAuthor, error) {
	if details := s.validator.Struct(req); details != nil {
		return nil, NewValidationFailedError(details)
	}

	if err := s.checkAuthorReference(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	book, err := s.store.AddBook(ctx, req.ToBook())
	if err != nil {
		return nil, NewInternalError("failed to create book", err)
	}

	return s.attachAuthor(ctx, book)
}

// UpdateBook validates the request, verifies the referenced author exists,
// and replaces all fields of the book with the given ID.
func (s *Service) UpdateBook(ctx context.Context, id int, req *models.BookRequest) (*models.BookWithAuthor, error) {
	if details := s.validator.Struct(req); details != nil {
		return nil, NewValidationFailedError(details)
	}

	if err := s.checkAuthorReference(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	book, err := s.store.UpdateBook(ctx, id, req.ToBook())
	if err != nil {
		if errors.Is(err, storage.ErrBookNotFound) {
			return nil, NewBookNotFoundError(id)
		}
		return nil, NewInternalError("failed to update book", err)
	}

	return s.attachAuthor(ctx, book)
}

// DeleteBook removes the book with the given ID.
func (s *Service) DeleteBook(ctx context.Context, id int) (*models.Book, error) {
	book, err := s.store.DeleteBook(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookNotFound) {
			return nil, NewBookNotFoundError(id)
		}
		return nil, NewInternalError("failed to delete book", err)
	}
	return book, nil
}

// checkAuthorReference verifies the author a book points at exists.
func (s *Service) checkAuthorReference(ctx context.Context, authorID int) error {
	if _, err := s.store.GetAuthor(ctx, authorID); err != nil {
		if errors.Is(err, storage.ErrAuthorNotFound) {
			return NewAuthorReferenceError(authorID)
		}
		return NewInternalError(fmt.Sprintf("failed to verify author %d", authorID), err)
	}
	return nil
}

// attachAuthor decorates a book with its referenced author. A dangling
// reference yields a nil author rather than an error, since reads should
// not fail because of historic data.
func (s *Service) attachAuthor(ctx context.Context, book *models.Book) (*models.BookWithAuthor, error) {
	author, err := s.store.GetAuthor(ctx, book.AuthorID)
	if err != nil && !errors.Is(err, storage.ErrAuthorNotFound) {
		return nil, NewInternalError("failed to attach author", err)
	}
	return &models.BookWithAuthor{Book: *book, Author: author}, nil
}

func (s *Service) attachAuthors(ctx context.Context, books []*models.Book) ([]*models.BookWithAuthor, error) {
	result := make([]*models.BookWithAuthor, 0, len(books))
	for _, book := range books {
		withAuthor, err := s.attachAuthor(ctx, book)
		if err != nil {
			return nil, err
		}
		result = append(result, withAuthor)
	}
	return result, nil
}
