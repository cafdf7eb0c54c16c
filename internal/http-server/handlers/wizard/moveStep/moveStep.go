package moveStep

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"eventify/internal/lib/api/response"
	"eventify/internal/lib/logger/sl"
	"eventify/internal/wizard"

	"github.com/go-chi/render"
)

type Request struct {
	Action string `json:"action,omitempty"`
	Step   *int   `json:"step,omitempty"`
}

type Response struct {
	response.Response
	Step int `json:"step"`
}

// New advances, rewinds, or jumps the wizard. "next" and "back" clamp at the
// edges, a direct step number is only honored inside the step range. An
// empty body means "next"; anything else unrecognized is rejected.
func New(log *slog.Logger, drafts *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.moveStep.New"

		log = log.With(
			slog.String("op", op),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

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

		switch {
		case req.Step != nil:
			if err := draft.Jump(*req.Step); err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown step"))

				return
			}
		case req.Action == "" || req.Action == "next":
			draft.Next()
		case req.Action == "back":
			draft.Back()
		default:
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown action"))

			return
		}

		log.Info("step changed", slog.Int("step", draft.Step))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Step:     draft.Step,
		})
	}
}
