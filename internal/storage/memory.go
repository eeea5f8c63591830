package storage

import (
	"context"
	"sort"
	"sync"

	"booklib/internal/models"
)

// MemoryStore implements the Store interface using in-memory maps with
// auto-incrementing integer IDs. Data lives for the process lifetime only.
type MemoryStore struct {
	mu           sync.RWMutex
	authors      map[int]*models.Author
	books        map[int]*models.Book
	nextAuthorID int
	nextBookID   int
}

// NewMemoryStore creates an empty in-memory store. IDs start at 1.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		authors:      make(map[int]*models.Author),
		books:        make(map[int]*models.Book),
		nextAuthorID: 1,
		nextBookID:   1,
	}
}

// Authors returns all authors ordered by ID.
func (m *MemoryStore) Authors(ctx context.Context) ([]*models.Author, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	authors := make([]*models.Author, 0, len(m.authors))
	for _, author := range m.authors {
		// Return a copy to prevent external modification
		authorCopy := *author
		authors = append(authors, &authorCopy)
	}

	sort.Slice(authors, func(i, j int) bool {
		return authors[i].ID < authors[j].ID
	})

	return authors, nil
}

// GetAuthor retrieves an author by its ID.
func (m *MemoryStore) GetAuthor(ctx context.Context, id int) (*models.Author, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	author, exists := m.authors[id]
	if !exists {
		return nil, ErrAuthorNotFound
	}

	authorCopy := *author
	return &authorCopy, nil
}

// AddAuthor stores a new author under the next free ID.
func (m *MemoryStore) AddAuthor(ctx context.Context, author *models.Author) (*models.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	authorCopy := *author
	authorCopy.ID = m.nextAuthorID
	m.nextAuthorID++
	m.authors[authorCopy.ID] = &authorCopy

	result := authorCopy
	return &result, nil
}

// UpdateAuthor replaces the stored author with the given ID.
func (m *MemoryStore) UpdateAuthor(ctx context.Context, id int, author *models.Author) (*models.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.authors[id]; !exists {
		return nil, ErrAuthorNotFound
	}

	authorCopy := *author
	authorCopy.ID = id
	m.authors[id] = &authorCopy

	result := authorCopy
	return &result, nil
}

// DeleteAuthor removes an author by its ID and returns the removed entity.
func (m *MemoryStore) DeleteAuthor(ctx context.Context, id int) (*models.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	author, exists := m.authors[id]
	if !exists {
		return nil, ErrAuthorNotFound
	}

	delete(m.authors, id)

	authorCopy := *author
	return &authorCopy, nil
}

// Books returns all books ordered by ID.
func (m *MemoryStore) Books(ctx context.Context) ([]*models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	books := make([]*models.Book, 0, len(m.books))
	for _, book := range m.books {
		bookCopy := *book
		books = append(books, &bookCopy)
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].ID < books[j].ID
	})

	return books, nil
}

// GetBook retrieves a book by its ID.
func (m *MemoryStore) GetBook(ctx context.Context, id int) (*models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	book, exists := m.books[id]
	if !exists {
		return nil, ErrBookNotFound
	}

	bookCopy := *book
	return &bookCopy, nil
}

// AddBook stores a new book under the next free ID.
func (m *MemoryStore) AddBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bookCopy := *book
	bookCopy.ID = m.nextBookID
	m.nextBookID++
	m.books[bookCopy.ID] = &bookCopy

	result := bookCopy
	return &result, nil
}

// UpdateBook replaces the stored book with the given ID.
func (m *MemoryStore) UpdateBook(ctx context.Context, id int, book *models.Book) (*models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.books[id]; !exists {
		return nil, ErrBookNotFound
	}

	bookCopy := *book
	bookCopy.ID = id
	m.books[id] = &bookCopy

	result := bookCopy
	return &result, nil
}

// DeleteBook removes a book by its ID and returns the removed entity.
func (m *MemoryStore) DeleteBook(ctx context.Context, id int) (*models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	book, exists := m.books[id]
	if !exists {
		return nil, ErrBookNotFound
	}

	delete(m.books, id)

	bookCopy := *book
	return &bookCopy, nil
}

// BooksByAuthor returns all books referencing the given author, ordered by ID.
func (m *MemoryStore) BooksByAuthor(ctx context.Context, authorID int) ([]*models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	books := make([]*models.Book, 0)
	for _, book := range m.books {
		if book.AuthorID != authorID {
			continue
		}
		bookCopy := *book
		books = append(books, &bookCopy)
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].ID < books[j].ID
	})

	return books, nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}
