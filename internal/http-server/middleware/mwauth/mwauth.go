// Package mwauth guards protected endpoints. A missing, malformed or
// expired session token answers immediately with a login redirect, the
// wrapped handler (and through it, the backend) is never reached.
package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventify/internal/lib/api/response"
	"eventify/internal/lib/logger/sl"
	"eventify/internal/session"

	"github.com/go-chi/render"
)

type ctxKey struct{}

func New(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := session.Read(r)
			if err != nil {
				unauthorized(w, r)
				return
			}

			if err := sess.Valid(time.Now()); err != nil {
				log.Warn("session token rejected", sl.Err(err))
				unauthorized(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.LoginRequired())
}

func WithSession(ctx context.Context, sess session.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

func FromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(session.Session)
	return sess, ok
}
