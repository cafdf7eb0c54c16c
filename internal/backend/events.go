package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"eventify/internal/models"
)

// EventTypes fetches the selectable event categories. The backend returns
// either a bare array or {"eventTypes": [...]}.
func (c *Client) EventTypes(ctx context.Context, token string) ([]models.EventType, error) {
	const op = "backend.EventTypes"

	var raw json.RawMessage
	if err := c.getJSON(ctx, "/api/events/event-types", token, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var types []models.EventType
	if err := json.Unmarshal(raw, &types); err == nil {
		return types, nil
	}

	var wrapped struct {
		EventTypes []models.EventType `json:"eventTypes"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	return wrapped.EventTypes, nil
}

// Events fetches one page of events. The page replaces whatever the caller
// held before, there is no merging.
func (c *Client) Events(ctx context.Context, token string, page, size int) ([]models.EventSummary, error) {
	const op = "backend.Events"

	var res struct {
		Data struct {
			Content []models.EventSummary `json:"content"`
		} `json:"data"`
	}

	path := fmt.Sprintf("/api/events/get/all?page=%d&size=%d", page, size)
	if err := c.getJSON(ctx, path, token, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res.Data.Content, nil
}

// CreateEvent sends the aggregated wizard result: the event descriptor as a
// JSON part named "event" and, when present, the poster binary as a part
// named "poster".
func (c *Client) CreateEvent(ctx context.Context, token string, payload models.EventPayload, poster *models.Poster) (string, error) {
	const op = "backend.CreateEvent"

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	eventHeader := textproto.MIMEHeader{}
	eventHeader.Set("Content-Disposition", `form-data; name="event"`)
	eventHeader.Set("Content-Type", "application/json")

	part, err := mw.CreatePart(eventHeader)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	descriptor, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%s: encode event descriptor: %w", op, err)
	}

	if _, err := part.Write(descriptor); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if poster != nil {
		posterHeader := textproto.MIMEHeader{}
		posterHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="poster"; filename=%q`, poster.Name))
		if poster.ContentType != "" {
			posterHeader.Set("Content-Type", poster.ContentType)
		}

		posterPart, err := mw.CreatePart(posterHeader)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}

		if _, err := posterPart.Write(poster.Data); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/events/create", &body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	// The create endpoint does not always carry the {success, message}
	// envelope, so success is only rejected when explicitly reported.
	var res struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	if err := c.do(req, token, &res); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if res.Success != nil && !*res.Success {
		return "", fmt.Errorf("%s: %w", op, &BusinessError{Message: res.Message})
	}

	return res.Message, nil
}
