package api

import (
	"net/http"
	"strconv"

	"booklib/internal/library"
	"booklib/internal/models"
)

// ListBooks handles paginated book list requests.
// GET /api/books?genre=Fantasy&page=1&limit=10
func (h *Handlers) ListBooks(w http.ResponseWriter, r *http.Request) {
	query := library.ListBooksQuery{
		Genre: r.URL.Query().Get("genre"),
	}
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		if page, err := strconv.Atoi(pageParam); err == nil {
			query.Page = page
		}
	}
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if limit, err := strconv.Atoi(limitParam); err == nil {
			query.Limit = limit
		}
	}

	books, pagination, err := h.service.ListBooks(r.Context(), query)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp := models.NewListResponse(len(books), books)
	resp.Pagination = pagination
	h.writeJSONResponse(w, http.StatusOK, resp)
}

// SearchBooks handles title search requests.
// GET /api/books/search?q=harry
func (h *Handlers) SearchBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	books, err := h.service.SearchBooks(r.Context(), q)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp := models.NewListResponse(len(books), books)
	resp.Query = q
	h.writeJSONResponse(w, http.StatusOK, resp)
}

// GetBook handles single book requests, with the author attached.
// GET /api/books/{id}
func (h *Handlers) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "Book")
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	book, err := h.service.GetBook(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, models.NewDataResponse(book))
}

// CreateBook handles book creation requests. The referenced author must
// exist.
// POST /api/books
func (h *Handlers) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req models.BookRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeServiceError(w, err)
		return
	}

	book, err := h.service.CreateBook(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusCreated,
		models.NewMessageResponse("Book created successfully", book))
}

// UpdateBook handles full book updates.
// PUT /api/books/{id}
func (h *Handlers) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "Book")
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	var req models.BookRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeServiceError(w, err)
		return
	}

	book, err := h.service.UpdateBook(r.Context(), id, &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK,
		models.NewMessageResponse("Book updated successfully", book))
}

// DeleteBook handles book deletion requests.
// DELETE /api/books/{id}
func (h *Handlers) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "Book")
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	book, err := h.service.DeleteBook(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK,
		models.NewMessageResponse("Book deleted successfully", book))
}
