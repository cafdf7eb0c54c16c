// Package pages serves the UI shell. Every page route returns the same
// embedded document; the shell decides what to render from the path and
// drives the /api/ui endpoints from there.
package pages

import (
	_ "embed"
	"log/slog"
	"net/http"
)

//go:embed index.html
var shell []byte

// Routes lists every path the shell is mounted on.
func Routes() []string {
	return []string{
		"/",
		"/login",
		"/signup",
		"/verify",
		"/forgot-password",
		"/dashboard",
		"/create-event",
	}
}

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.pages.New"

		log.Debug("serving shell", slog.String("op", op), slog.String("path", r.URL.Path))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(shell)
	}
}
