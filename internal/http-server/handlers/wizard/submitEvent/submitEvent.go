package submitEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventify/internal/backend"
	"eventify/internal/http-server/middleware/mwauth"
	"eventify/internal/lib/api/response"
	"eventify/internal/lib/logger/sl"
	"eventify/internal/models"
	"eventify/internal/wizard"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, token string, payload models.EventPayload, poster *models.Poster) (string, error)
}

// New submits the finished draft. This is the only place the whole draft is
// validated; on success the draft is discarded and the user is sent back to
// the dashboard.
func New(log *slog.Logger, drafts *wizard.Store, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.submitEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		sess, ok := mwauth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.LoginRequired())

			return
		}

		draft, err := drafts.FromRequest(r)
		if err != nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("no draft in progress"))

			return
		}

		draft.Lock()
		defer draft.Unlock()

		if err := draft.Validate(); err != nil {
			log.Info("draft rejected", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		creatorID, err := sess.UserID()
		if err != nil {
			log.Error("failed to read user id from session", sl.Err(err))

			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.LoginRequired())

			return
		}

		payload, err := draft.Payload(creatorID)
		if err != nil {
			log.Error("failed to compose event payload", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		msg, err := creator.CreateEvent(r.Context(), sess.Token, payload, draft.Poster)
		if err != nil {
			var bizErr *backend.BusinessError
			if errors.As(err, &bizErr) {
				log.Info("event rejected by server", slog.String("reason", bizErr.Message))

				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(bizErr.Message))

				return
			}

			log.Error("failed to create event", sl.Err(err))

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		drafts.Delete(draft.ID)

		http.SetCookie(w, &http.Cookie{
			Name:     wizard.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		log.Info("event created", slog.String("event", payload.EventName))

		if msg == "" {
			msg = "event created successfully"
		}

		resp := response.OKMessage(msg)
		resp.Redirect = "/dashboard"

		render.JSON(w, r, resp)
	}
}
