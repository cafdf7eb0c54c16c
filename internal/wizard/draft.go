// Package wizard holds the event-creation draft: five sequential steps
// accumulating into one in-memory object, submitted as a single multipart
// request and never partially persisted.
package wizard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"eventify/internal/models"
)

const (
	StepDetails  = 1
	StepSchedule = 2
	StepTickets  = 3
	StepPoster   = 4
	StepReview   = 5
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrBadStep        = errors.New("step out of range")
	ErrBadTierIndex   = errors.New("ticket tier index out of range")
	ErrEndBeforeStart = errors.New("end date must not be before start date")
	ErrNoTickets      = errors.New("total number of tickets must be greater than zero")
)

type Draft struct {
	mu sync.Mutex

	ID   string
	Step int

	Name    string
	Venue   string
	TypeIDs []int

	StartDate string
	EndDate   string
	StartTime string
	EndTime   string
	MultiDay  bool

	Tiers  []models.TicketTier
	Poster *models.Poster
}

// Lock serializes access to the draft. The same draft cookie can ride
// parallel requests (double-click, second tab), so every handler holds the
// lock for the whole read-modify-respond sequence.
func (d *Draft) Lock() {
	d.mu.Lock()
}

func (d *Draft) Unlock() {
	d.mu.Unlock()
}

// Next advances by one step, capped at review.
func (d *Draft) Next() {
	if d.Step < StepReview {
		d.Step++
	}
}

// Back retreats by one step, floored at the first step.
func (d *Draft) Back() {
	if d.Step > StepDetails {
		d.Step--
	}
}

// Jump moves straight to a step, used by the review screen's edit controls.
func (d *Draft) Jump(step int) error {
	if step < StepDetails || step > StepReview {
		return ErrBadStep
	}

	d.Step = step

	return nil
}

func (d *Draft) SetDetails(name, venue string, typeIDs []int) {
	d.Name = name
	d.Venue = venue
	d.TypeIDs = dedupe(typeIDs)
}

// SetSchedule applies the date/time step. A single-day event keeps its end
// date pinned to the start date, whatever end date was chosen before.
func (d *Draft) SetSchedule(startDate, endDate, startTime, endTime string, multiDay bool) error {
	for _, date := range []string{startDate, endDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(DateLayout, date); err != nil {
			return fmt.Errorf("invalid date %q: %w", date, err)
		}
	}

	for _, clock := range []string{startTime, endTime} {
		if clock == "" {
			continue
		}
		if _, err := time.Parse(TimeLayout, clock); err != nil {
			return fmt.Errorf("invalid time %q: %w", clock, err)
		}
	}

	if !multiDay {
		endDate = startDate
	}

	if multiDay && startDate != "" && endDate != "" {
		start, _ := time.Parse(DateLayout, startDate)
		end, _ := time.Parse(DateLayout, endDate)
		if end.Before(start) {
			return ErrEndBeforeStart
		}
	}

	d.StartDate = startDate
	d.EndDate = endDate
	d.StartTime = startTime
	d.EndTime = endTime
	d.MultiDay = multiDay

	return nil
}

func (d *Draft) AddTier(tier models.TicketTier) {
	d.Tiers = append(d.Tiers, tier)
}

func (d *Draft) UpdateTier(index int, tier models.TicketTier) error {
	if index < 0 || index >= len(d.Tiers) {
		return ErrBadTierIndex
	}

	d.Tiers[index] = tier

	return nil
}

// RemoveTier deletes tier index, shifting every later tier down by one.
func (d *Draft) RemoveTier(index int) error {
	if index < 0 || index >= len(d.Tiers) {
		return ErrBadTierIndex
	}

	d.Tiers = append(d.Tiers[:index], d.Tiers[index+1:]...)

	return nil
}

func (d *Draft) TotalTickets() int {
	total := 0
	for _, tier := range d.Tiers {
		total += tier.Count
	}

	return total
}

// SetPoster replaces any prior poster wholesale.
func (d *Draft) SetPoster(poster *models.Poster) {
	d.Poster = poster
}

// Validate is the submit gate. Intermediate steps never block navigation,
// the whole draft is checked once, here.
func (d *Draft) Validate() error {
	if d.Name == "" {
		return errors.New("event name is required")
	}
	if d.Venue == "" {
		return errors.New("event venue is required")
	}
	if d.StartDate == "" {
		return errors.New("event date is required")
	}
	if d.StartTime == "" || d.EndTime == "" {
		return errors.New("start and end times are required")
	}
	if d.TotalTickets() <= 0 {
		return ErrNoTickets
	}

	return nil
}

// Payload composes the event descriptor: start = date + start time, end =
// (multi-day ? end date : start date) + end time, capacity = total tickets.
func (d *Draft) Payload(creatorID string) (models.EventPayload, error) {
	start, err := combine(d.StartDate, d.StartTime)
	if err != nil {
		return models.EventPayload{}, err
	}

	endDate := d.StartDate
	if d.MultiDay && d.EndDate != "" {
		endDate = d.EndDate
	}

	end, err := combine(endDate, d.EndTime)
	if err != nil {
		return models.EventPayload{}, err
	}

	return models.EventPayload{
		EventName:      d.Name,
		EventStartDate: start,
		EventEndDate:   end,
		EventVenue:     d.Venue,
		EventCapacity:  d.TotalTickets(),
		CreatorID:      creatorID,
		TicketType:     d.Tiers,
		EventTypeIDs:   d.TypeIDs,
	}, nil
}

func combine(date, clock string) (time.Time, error) {
	ts, err := time.Parse(DateLayout+" "+TimeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("compose timestamp: %w", err)
	}

	return ts, nil
}

func dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
