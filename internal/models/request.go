// Package models - API request types.
// This file defines the write-request bodies accepted by the API.
//
// Validation Philosophy:
// - Request structs are the allow-list: decoding JSON into them silently
//   drops any field the schema does not declare
// - Constraints are declared as validator/v10 struct tags and enforced by
//   internal/validation, which collects every violation in one pass
// - Create and full update share the same schema: PUT requires all fields,
//   a deliberate product choice rather than a partial patch
package models

// AuthorRequest is the body for creating or fully updating an author.
//
// BirthYear is bounded below by 1000 and above by the current calendar year;
// the upper bound is evaluated at validation time via the library_year rule.
type AuthorRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Country   string `json:"country" validate:"required,min=2,max=50"`
	BirthYear int    `json:"birthYear" validate:"required,library_year"`
}

// ToAuthor converts the sanitized request into an Author entity.
// The ID is assigned by the store.
func (r *AuthorRequest) ToAuthor() *Author {
	return &Author{
		Name:      r.Name,
		Country:   r.Country,
		BirthYear: r.BirthYear,
	}
}

// BookRequest is the body for creating or fully updating a book.
//
// ISBN accepts digits and hyphens only (isbn_chars rule); the referential
// check that AuthorID names an existing author is the library service's
// responsibility, not the validator's.
type BookRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	AuthorID int    `json:"authorId" validate:"required"`
	Year     int    `json:"year" validate:"required,library_year"`
	Genre    string `json:"genre" validate:"required,min=2,max=50"`
	ISBN     string `json:"isbn" validate:"required,isbn_chars"`
}

// ToBook converts the sanitized request into a Book entity.
// The ID is assigned by the store.
func (r *BookRequest) ToBook() *Book {
	return &Book{
		Title:    r.Title,
		AuthorID: r.AuthorID,
		Year:     r.Year,
		Genre:    r.Genre,
		ISBN:     r.ISBN,
	}
}
