package models

import "time"

type EventType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TicketTier is one ticket category within an event. Field names follow the
// backend's wire format.
type TicketTier struct {
	Category string  `json:"typeCategory"`
	Count    int     `json:"numberOfTickets"`
	Price    float64 `json:"price"`
}

// EventSummary is the read-only event shape returned by the paginated list.
// It is never mutated by the gateway.
type EventSummary struct {
	ID             int          `json:"id"`
	EventName      string       `json:"eventName"`
	EventStartDate time.Time    `json:"eventStartDate"`
	EventEndDate   time.Time    `json:"eventEndDate"`
	EventVenue     string       `json:"eventVenue"`
	EventCapacity  int          `json:"eventCapacity"`
	PosterURL      string       `json:"posterUrl,omitempty"`
	EventTypes     []EventType  `json:"eventTypes,omitempty"`
	TicketTypes    []TicketTier `json:"ticketType,omitempty"`
}

// EventPayload is the JSON descriptor sent as the "event" part of the
// multipart create request.
type EventPayload struct {
	EventName      string       `json:"eventName"`
	EventStartDate time.Time    `json:"eventStartDate"`
	EventEndDate   time.Time    `json:"eventEndDate"`
	EventVenue     string       `json:"eventVenue"`
	EventCapacity  int          `json:"eventCapacity"`
	CreatorID      string       `json:"creatorId"`
	TicketType     []TicketTier `json:"ticketType"`
	EventTypeIDs   []int        `json:"eventTypeIds"`
}

// Poster is the uploaded poster image, replaced wholesale on re-selection.
type Poster struct {
	Name        string
	ContentType string
	Data        []byte
}
