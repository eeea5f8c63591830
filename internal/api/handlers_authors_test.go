package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAuthor(t *testing.T, router *mux.Router, name, country string, birthYear int) int {
	t.Helper()

	rr := doRequest(t, router, "POST", "/api/authors", map[string]interface{}{
		"name":      name,
		"country":   country,
		"birthYear": birthYear,
	})
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	resp := decodeResponse(t, rr)
	data := resp.Data.(map[string]interface{})
	return int(data["id"].(float64))
}

func TestCreateAuthor(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, "POST", "/api/authors", map[string]interface{}{
		"name":      "George Orwell",
		"country":   "UK",
		"birthYear": 1903,
	})

	assert.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeResponse(t, rr)
	assert.True(t, resp.Success)
	assert.Equal(t, "Author created successfully", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "George Orwell", data["name"])
}

func TestCreateAuthor_ValidationFailure(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, "POST", "/api/authors", map[string]interface{}{
		"birthYear": 1903,
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeResponse(t, rr)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Validation failed", resp.Error.Message)
	require.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "name", resp.Error.Details[0].Field)
	assert.Equal(t, "country", resp.Error.Details[1].Field)
}

func TestListAuthors(t *testing.T) {
	router, _ := newTestRouter(t)
	createAuthor(t, router, "Author UK", "UK", 1950)
	createAuthor(t, router, "Author FR", "France", 1950)

	rr := doRequest(t, router, "GET", "/api/authors", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)
}

func TestListAuthors_CountryFilter(t *testing.T) {
	router, _ := newTestRouter(t)
	createAuthor(t, router, "Author UK", "UK", 1950)
	createAuthor(t, router, "Author FR", "France", 1950)

	rr := doRequest(t, router, "GET", "/api/authors?country=UK", nil)

	resp := decodeResponse(t, rr)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 1, *resp.Count)

	items := resp.Data.([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Author UK", items[0].(map[string]interface{})["name"])
}

func TestListAuthors_EmptyCollection(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, "GET", "/api/authors", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr)
	require.NotNil(t, resp.Count, "count must serialize even when zero")
	assert.Equal(t, 0, *resp.Count)
}

func TestGetAuthor_WithBooks(t *testing.T) {
	router, _ := newTestRouter(t)
	authorID := createAuthor(t, router, "George Orwell", "UK", 1903)

	rr := doRequest(t, router, "POST", "/api/books", map[string]interface{}{
		"title":    "1984",
		"authorId": authorID,
		"year":     1949,
		"genre":    "Dystopian",
		"isbn":     "978-0-452-28423-4",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, router, "GET", fmt.Sprintf("/api/authors/%d", authorID), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "George Orwell", data["name"])

	books := data["books"].([]interface{})
	require.Len(t, books, 1)
	assert.Equal(t, "1984", books[0].(map[string]interface{})["title"])
}

func TestGetAuthor_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, "GET", "/api/authors/42", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	resp := decodeResponse(t, rr)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Author with ID 42 not found", resp.Error.Message)
}

func TestGetAuthor_MalformedID(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, "GET", "/api/authors/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeResponse(t, rr)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Author ID must be a number", resp.Error.Message)
}

func TestUpdateAuthor(t *testing.T) {
	router, _ := newTestRouter(t)
	authorID := createAuthor(t, router, "George Orwell", "UK", 1903)

	rr := doRequest(t, router, "PUT", fmt.Sprintf("/api/authors/%d", authorID), map[string]interface{}{
		"name":      "Eric Blair",
		"country":   "UK",
		"birthYear": 1903,
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr)
	assert.Equal(t, "Author updated successfully", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(authorID), data["id"])
	assert.Equal(t, "Eric Blair", data["name"])
}

func TestUpdateAuthor_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, "PUT", "/api/authors/9", map[string]interface{}{
		"name":      "Eric Blair",
		"country":   "UK",
		"birthYear": 1903,
	})

	assert.Equal(t, http.StatusNotFound, rr.Code)
	resp := decodeResponse(t, rr)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Author with ID 9 not found", resp.Error.Message)
}

func TestDeleteAuthor(t *testing.T) {
	router, _ := newTestRouter(t)
	authorID := createAuthor(t, router, "George Orwell", "UK", 1903)

	rr := doRequest(t, router, "DELETE", fmt.Sprintf("/api/authors/%d", authorID), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr)
	assert.Equal(t, "Author deleted successfully", resp.Message)

	rr = doRequest(t, router, "GET", fmt.Sprintf("/api/authors/%d", authorID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteAuthor_WithBooksRefused(t *testing.T) {
	router, _ := newTestRouter(t)
	authorID := createAuthor(t, router, "George Orwell", "UK", 1903)

	rr := doRequest(t, router, "POST", "/api/books", map[string]interface{}{
		"title":    "1984",
		"authorId": authorID,
		"year":     1949,
		"genre":    "Dystopian",
		"isbn":     "978-0-452-28423-4",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, router, "DELETE", fmt.Sprintf("/api/authors/%d", authorID), nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeResponse(t, rr)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Cannot delete author with existing books", resp.Error.Message)

	// The author is still retrievable.
	rr = doRequest(t, router, "GET", fmt.Sprintf("/api/authors/%d", authorID), nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}
