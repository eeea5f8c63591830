package models

// Book represents a single book in the library catalog.
//
// AuthorID is a foreign reference into the author collection; the library
// service guarantees it points at an existing author at create and update
// time (referential integrity).
type Book struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	AuthorID int    `json:"authorId"`
	Year     int    `json:"year"`
	Genre    string `json:"genre"`
	ISBN     string `json:"isbn"`
}

// BookWithAuthor is a book with its referenced author attached. Author is nil
// when the reference is dangling, which can only happen for seeded or legacy
// data since mutations enforce the reference.
type BookWithAuthor struct {
	Book
	Author *Author `json:"author"`
}
