// Package models defines the core domain entities, request/response shapes,
// and service configuration for the book library API.
package models

// Author represents a book author in the library catalog.
//
// Authors are identified by an auto-incrementing integer ID assigned by the
// store. Every book in the catalog references exactly one author via
// Book.AuthorID, and an author cannot be deleted while any book still
// references it.
type Author struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	BirthYear int    `json:"birthYear"`
}

// AuthorWithBooks is an author together with all books referencing it.
// Returned by the single-author endpoint.
type AuthorWithBooks struct {
	Author
	Books []*Book `json:"books"`
}
