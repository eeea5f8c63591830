package api

import (
	"net/http"

	"booklib/internal/models"
)

// ListAuthors handles author list requests.
// GET /api/authors?country=UK
func (h *Handlers) ListAuthors(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")

	authors, err := h.service.ListAuthors(r.Context(), country)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, models.NewListResponse(len(authors), authors))
}

// GetAuthor handles single author requests, including the author's books.
// GET /api/authors/{id}
func (h *Handlers) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "Author")
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	author, err := h.service.GetAuthor(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, models.NewDataResponse(author))
}

// CreateAuthor handles author creation requests.
// POST /api/authors
func (h *Handlers) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req models.AuthorRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeServiceError(w, err)
		return
	}

	author, err := h.service.CreateAuthor(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusCreated,
		models.NewMessageResponse("Author created successfully", author))
}

// UpdateAuthor handles full author updates.
// PUT /api/authors/{id}
func (h *Handlers) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "Author")
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	var req models.AuthorRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeServiceError(w, err)
		return
	}

	author, err := h.service.UpdateAuthor(r.Context(), id, &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK,
		models.NewMessageResponse("Author updated successfully", author))
}

// DeleteAuthor handles author deletion requests. Deletion is refused while
// any book still references the author.
// DELETE /api/authors/{id}
func (h *Handlers) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "Author")
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	author, err := h.service.DeleteAuthor(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK,
		models.NewMessageResponse("Author deleted successfully", author))
}
