package storage

import (
	"context"

	"booklib/internal/models"
)

// Store defines the interface for the author and book collections.
// It abstracts the entity storage so the library service and the
// observability instrumentation wrapper can share one contract.
//
// All mutations are effective immediately upon return. Implementations must
// be safe for concurrent use and must return copies, never internal state.
type Store interface {
	// Authors returns all authors ordered by ID.
	Authors(ctx context.Context) ([]*models.Author, error)

	// GetAuthor retrieves an author by ID.
	// Returns ErrAuthorNotFound when no such author exists.
	GetAuthor(ctx context.Context, id int) (*models.Author, error)

	// AddAuthor inserts a new author, assigning the next ID.
	// Returns the stored author including its assigned ID.
	AddAuthor(ctx context.Context, author *models.Author) (*models.Author, error)

	// UpdateAuthor replaces all fields of the author with the given ID.
	// Returns ErrAuthorNotFound when no such author exists.
	UpdateAuthor(ctx context.Context, id int, author *models.Author) (*models.Author, error)

	// DeleteAuthor removes an author by ID and returns the removed entity.
	// Returns ErrAuthorNotFound when no such author exists.
	DeleteAuthor(ctx context.Context, id int) (*models.Author, error)

	// Books returns all books ordered by ID.
	Books(ctx context.Context) ([]*models.Book, error)

	// GetBook retrieves a book by ID.
	// Returns ErrBookNotFound when no such book exists.
	GetBook(ctx context.Context, id int) (*models.Book, error)

	// AddBook inserts a new book, assigning the next ID.
	// Returns the stored book including its assigned ID.
	AddBook(ctx context.Context, book *models.Book) (*models.Book, error)

	// UpdateBook replaces all fields of the book with the given ID.
	// Returns ErrBookNotFound when no such book exists.
	UpdateBook(ctx context.Context, id int, book *models.Book) (*models.Book, error)

	// DeleteBook removes a book by ID and returns the removed entity.
	// Returns ErrBookNotFound when no such book exists.
	DeleteBook(ctx context.Context, id int) (*models.Book, error)

	// BooksByAuthor returns all books referencing the given author, ordered
	// by ID. An author with no books yields an empty slice, not an error.
	BooksByAuthor(ctx context.Context, authorID int) ([]*models.Book, error)

	// Close releases any resources held by the store.
	Close() error
}
