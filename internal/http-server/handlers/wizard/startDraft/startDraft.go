package startDraft

import (
	"log/slog"
	"net/http"
	"time"

	"eventify/internal/lib/api/response"
	"eventify/internal/wizard"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Step int `json:"step"`
}

// New opens a fresh wizard draft. Mounting the wizard always starts clean,
// any earlier draft is simply left to expire, which matches the wizard
// losing its state on page reload.
func New(log *slog.Logger, drafts *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.startDraft.New"

		log = log.With(
			slog.String("op", op),
		)

		draft := drafts.Create(time.Now())

		http.SetCookie(w, &http.Cookie{
			Name:     wizard.CookieName,
			Value:    draft.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		log.Info("draft created", slog.String("draft_id", draft.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Step:     draft.Step,
		})
	}
}
