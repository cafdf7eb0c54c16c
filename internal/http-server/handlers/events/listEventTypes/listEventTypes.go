package listEventTypes

import (
	"context"
	"log/slog"
	"net/http"

	"eventify/internal/http-server/middleware/mwauth"
	"eventify/internal/lib/api/response"
	"eventify/internal/lib/logger/sl"
	"eventify/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	EventTypes []models.EventType `json:"eventTypes"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TypesProvider
type TypesProvider interface {
	EventTypes(ctx context.Context, token string) ([]models.EventType, error)
}

// New serves the category list the wizard fetches once at step 1 entry.
func New(log *slog.Logger, provider TypesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.events.listEventTypes.New"

		log = log.With(
			slog.String("op", op),
		)

		sess, ok := mwauth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.LoginRequired())

			return
		}

		types, err := provider.EventTypes(r.Context(), sess.Token)
		if err != nil {
			log.Error("failed to get event types", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to load event types"))

			return
		}

		log.Info("event types retrieved", slog.Int("count", len(types)))

		render.JSON(w, r, Response{
			Response:   response.OK(),
			EventTypes: types,
		})
	}
}
