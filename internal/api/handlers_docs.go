package api

import (
	_ "embed"
	"net/http"
)

//go:embed docs/API_DOCS.md
var apiDocs []byte

// ServeDocs serves the API reference as markdown.
// GET /api/docs
func (h *Handlers) ServeDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(apiDocs)
}
