package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/gridgames-go/internal/middleware"
	"github.com/mcoot/gridgames-go/internal/web/templates/layout"
	"github.com/mcoot/gridgames-go/internal/web/templates/pages"
)

// Logging creates logging middleware for the web interface
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// Submission tags every page with the configured submission ID
func Submission(id string) func(http.Handler) http.Handler {
	return middleware.Submission(id)
}

// Recovery creates panic recovery middleware for the web interface
// Returns an HTML error page on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = pages.Error(pages.ErrorData{
		PageData: layout.PageData{Title: "Error"},
		Heading:  "Internal Server Error",
		Message:  "Something went wrong. Please try again later.",
	}).Render(r.Context(), w)
}
