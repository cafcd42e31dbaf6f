package api

import (
	_ "embed"
	"log/slog"
	"net/http"
)

//go:embed web/index.html
var indexPage []byte

// Index handles GET / requests by serving the single-page form.
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(indexPage); err != nil {
		slog.DebugContext(r.Context(), "failed to write index page", "error", err)
	}
}
