package tickets

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventify/internal/lib/api/response"
	"eventify/internal/lib/logger/sl"
	"eventify/internal/models"
	"eventify/internal/wizard"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	TypeCategory    string  `json:"typeCategory" validate:"required,max=100"`
	NumberOfTickets int     `json:"numberOfTickets" validate:"min=0"`
	Price           float64 `json:"price" validate:"min=0"`
}

type Response struct {
	response.Response
	Tickets      []models.TicketTier `json:"tickets"`
	TotalTickets int                 `json:"totalTickets"`
	Warning      string              `json:"warning,omitempty"`
}

// NewAdd appends a ticket tier to the draft.
func NewAdd(log *slog.Logger, drafts *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.tickets.NewAdd"

		log = log.With(
			slog.String("op", op),
		)

		req, ok := decodeTier(log, w, r)
		if !ok {
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

		draft.AddTier(models.TicketTier{
			Category: req.TypeCategory,
			Count:    req.NumberOfTickets,
			Price:    req.Price,
		})

		log.Info("tier added", slog.String("draft_id", draft.ID), slog.Int("tiers", len(draft.Tiers)))

		respond(w, r, draft)
	}
}

// NewUpdate replaces the tier at the path index.
func NewUpdate(log *slog.Logger, drafts *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.tickets.NewUpdate"

		log = log.With(
			slog.String("op", op),
		)

		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid tier index"))

			return
		}

		req, ok := decodeTier(log, w, r)
		if !ok {
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

		err = draft.UpdateTier(index, models.TicketTier{
			Category: req.TypeCategory,
			Count:    req.NumberOfTickets,
			Price:    req.Price,
		})
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		log.Info("tier updated", slog.String("draft_id", draft.ID), slog.Int("index", index))

		respond(w, r, draft)
	}
}

// NewRemove deletes the tier at the path index.
func NewRemove(log *slog.Logger, drafts *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.tickets.NewRemove"

		log = log.With(
			slog.String("op", op),
		)

		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid tier index"))

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

		if err := draft.RemoveTier(index); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		log.Info("tier removed", slog.String("draft_id", draft.ID), slog.Int("index", index))

		respond(w, r, draft)
	}
}

func decodeTier(log *slog.Logger, w http.ResponseWriter, r *http.Request) (Request, bool) {
	var req Request

	err := render.DecodeJSON(r.Body, &req)
	if err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))

		return req, false
	}

	if err := validator.New().Struct(req); err != nil {
		var validateErr validator.ValidationErrors
		errors.As(err, &validateErr)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(validateErr))

		return req, false
	}

	return req, true
}

func respond(w http.ResponseWriter, r *http.Request, draft *wizard.Draft) {
	resp := Response{
		Response:     response.OK(),
		Tickets:      draft.Tiers,
		TotalTickets: draft.TotalTickets(),
	}

	if resp.TotalTickets <= 0 {
		resp.Warning = wizard.ErrNoTickets.Error()
	}

	render.JSON(w, r, resp)
}
