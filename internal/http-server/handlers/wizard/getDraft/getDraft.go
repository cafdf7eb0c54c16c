package getDraft

import (
	"log/slog"
	"net/http"

	"eventify/internal/lib/api/response"
	"eventify/internal/models"
	"eventify/internal/wizard"

	"github.com/go-chi/render"
)

// Response is the aggregated read-only view the review step renders.
type Response struct {
	response.Response
	Step         int                 `json:"step"`
	EventName    string              `json:"eventName"`
	EventVenue   string              `json:"eventVenue"`
	EventTypeIDs []int               `json:"eventTypeIds"`
	StartDate    string              `json:"startDate,omitempty"`
	EndDate      string              `json:"endDate,omitempty"`
	StartTime    string              `json:"startTime,omitempty"`
	EndTime      string              `json:"endTime,omitempty"`
	IsMultiDay   bool                `json:"isMultiDay"`
	Tickets      []models.TicketTier `json:"tickets"`
	TotalTickets int                 `json:"totalTickets"`
	PosterName   string              `json:"posterName,omitempty"`
	Warning      string              `json:"warning,omitempty"`
}

func New(log *slog.Logger, drafts *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.getDraft.New"

		log = log.With(
			slog.String("op", op),
		)

		draft, err := drafts.FromRequest(r)
		if err != nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("no draft in progress"))

			return
		}

		draft.Lock()
		defer draft.Unlock()

		resp := Response{
			Response:     response.OK(),
			Step:         draft.Step,
			EventName:    draft.Name,
			EventVenue:   draft.Venue,
			EventTypeIDs: draft.TypeIDs,
			StartDate:    draft.StartDate,
			EndDate:      draft.EndDate,
			StartTime:    draft.StartTime,
			EndTime:      draft.EndTime,
			IsMultiDay:   draft.MultiDay,
			Tickets:      draft.Tiers,
			TotalTickets: draft.TotalTickets(),
		}

		if draft.Poster != nil {
			resp.PosterName = draft.Poster.Name
		}

		// Non-blocking, the user can still reach review with it showing.
		if resp.TotalTickets <= 0 {
			resp.Warning = wizard.ErrNoTickets.Error()
		}

		render.JSON(w, r, resp)
	}
}
