// Package api translates HTTP to library service calls and formats every
// outcome, success or failure, into the uniform response envelope.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"booklib/internal/library"
	"booklib/internal/models"
)

// Handlers contains the HTTP handlers for the book library API.
type Handlers struct {
	service *library.Service
	version string
}

// NewHandlers creates a new handlers instance.
func NewHandlers(service *library.Service, version string) *Handlers {
	return &Handlers{
		service: service,
		version: version,
	}
}

// Welcome handles the root route.
// GET /
func (h *Handlers) Welcome(w http.ResponseWriter, r *http.Request) {
	resp := models.NewMessageResponse("Welcome to Book Library API", map[string]interface{}{
		"version": h.version,
		"endpoints": map[string]string{
			"authors": "/api/authors",
			"books":   "/api/books",
			"docs":    "/api/docs",
		},
	})
	h.writeJSONResponse(w, http.StatusOK, resp)
}

// HealthCheck handles health check requests.
// GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	resp := models.NewDataResponse(map[string]string{
		"status":  "healthy",
		"version": h.version,
	})
	h.writeJSONResponse(w, http.StatusOK, resp)
}

// parseID extracts the {id} route variable as an integer. A malformed id is
// reported with the entity name so the message reads "Author ID must be a
// number" rather than a generic parse error.
func parseID(r *http.Request, entity string) (int, error) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		return 0, library.NewBadRequestError(fmt.Sprintf("%s ID must be a number", entity))
	}
	return id, nil
}

// decodeBody decodes the request body into dst. Unknown fields are ignored,
// so decoding into the typed request struct doubles as input sanitization.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return library.NewBadRequestError("Invalid JSON body")
	}
	return nil
}

// writeJSONResponse writes a JSON response.
func (h *Handlers) writeJSONResponse(w http.ResponseWriter, statusCode int, resp *models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		// Headers are already written, so log instead of answering twice.
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// writeServiceError maps a service error onto the envelope. Unexpected errors
// become an opaque 500 so internal detail never reaches the client.
func (h *Handlers) writeServiceError(w http.ResponseWriter, err error) {
	var serviceErr *library.ServiceError
	if !errors.As(err, &serviceErr) {
		slog.Error("Unexpected handler error", "error", err)
		h.writeJSONResponse(w, http.StatusInternalServerError,
			models.NewErrorResponse("Internal server error"))
		return
	}

	if serviceErr.Code == library.CodeInternal {
		slog.Error("Service error", "error", serviceErr)
	}

	var resp *models.Response
	if len(serviceErr.Details) > 0 {
		resp = models.NewValidationErrorResponse(serviceErr.Message, serviceErr.Details)
	} else {
		resp = models.NewErrorResponse(serviceErr.Message)
	}
	h.writeJSONResponse(w, serviceErr.StatusCode, resp)
}
