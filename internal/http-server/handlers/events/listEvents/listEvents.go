package listEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"eventify/internal/http-server/middleware/mwauth"
	"eventify/internal/lib/api/response"
	"eventify/internal/lib/logger/sl"
	"eventify/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Events []models.EventSummary `json:"events"`
	Page   int                   `json:"page"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsProvider
type EventsProvider interface {
	Events(ctx context.Context, token string, page, size int) ([]models.EventSummary, error)
}

// New returns the dashboard page handler. Each call replaces the whole
// displayed collection, the page index is clamped at zero going backward.
func New(log *slog.Logger, provider EventsProvider, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.events.listEvents.New"

		log = log.With(
			slog.String("op", op),
		)

		sess, ok := mwauth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.LoginRequired())

			return
		}

		page := 0
		if raw := r.URL.Query().Get("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				log.Warn("invalid page index", slog.String("page", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid page index"))

				return
			}
			page = parsed
		}
		if page < 0 {
			page = 0
		}

		events, err := provider.Events(r.Context(), sess.Token, page, pageSize)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to load events"))

			return
		}

		log.Info("events retrieved", slog.Int("count", len(events)), slog.Int("page", page))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Events:   events,
			Page:     page,
		})
	}
}
