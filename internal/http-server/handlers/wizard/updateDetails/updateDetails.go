package updateDetails

import (
	"errors"
	"log/slog"
	"net/http"

	"eventify/internal/lib/api/response"
	"eventify/internal/lib/logger/sl"
	"eventify/internal/wizard"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	EventName    string `json:"eventName" validate:"max=200"`
	EventVenue   string `json:"eventVenue" validate:"max=200"`
	EventTypeIDs []int  `json:"eventTypeIds"`
}

// New records the details step. Fields may arrive partially filled, the
// wizard only enforces completeness at submit time.
func New(log *slog.Logger, drafts *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.updateDetails.New"

		log = log.With(
			slog.String("op", op),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

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

		draft.SetDetails(req.EventName, req.EventVenue, req.EventTypeIDs)

		log.Info("details updated", slog.String("draft_id", draft.ID))

		render.JSON(w, r, response.OK())
	}
}
