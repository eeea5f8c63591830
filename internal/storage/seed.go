package storage

import (
	"context"
	"fmt"

	"booklib/internal/models"
)

// Seed loads the sample catalog into the store. Intended for development
// setups where the API should answer with data immediately after start.
func Seed(ctx context.Context, store Store) error {
	authors := []*models.Author{
		{Name: "J.K. Rowling", Country: "UK", BirthYear: 1965},
		{Name: "George Orwell", Country: "UK", BirthYear: 1903},
		{Name: "Gabriel Garcia Marquez", Country: "Colombia", BirthYear: 1927},
	}

	ids := make([]int, 0, len(authors))
	for _, author := range authors {
		stored, err := store.AddAuthor(ctx, author)
		if err != nil {
			return fmt.Errorf("seed author %q: %w", author.Name, err)
		}
		ids = append(ids, stored.ID)
	}

	books := []*models.Book{
		{Title: "Harry Potter and the Philosopher's Stone", AuthorID: ids[0], Year: 1997, Genre: "Fantasy", ISBN: "978-0-7475-3269-9"},
		{Title: "Harry Potter and the Chamber of Secrets", AuthorID: ids[0], Year: 1998, Genre: "Fantasy", ISBN: "978-0-7475-3849-3"},
		{Title: "1984", AuthorID: ids[1], Year: 1949, Genre: "Dystopian", ISBN: "978-0-452-28423-4"},
		{Title: "Animal Farm", AuthorID: ids[1], Year: 1945, Genre: "Satire", ISBN: "978-0-452-28424-1"},
		{Title: "One Hundred Years of Solitude", AuthorID: ids[2], Year: 1967, Genre: "Magical Realism", ISBN: "978-0-06-088328-7"},
	}

	for _, book := range books {
		if _, err := store.AddBook(ctx, book); err != nil {
			return fmt.Errorf("seed book %q: %w", book.Title, err)
		}
	}

	return nil
}
