package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventify/internal/backend"
	"eventify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return backend.New(srv.URL, 5*time.Second)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/auth/login", r.URL.Path)

			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "jane@example.com", req["email"])
			assert.Equal(t, "hunter2", req["password"])

			_, _ = w.Write([]byte(`{"success": true, "message": "welcome", "token": "jwt-token", "user": {"id": 42}}`))
		})

		res, err := client.Login(context.Background(), "jane@example.com", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "jwt-token", res.Token)
		assert.Equal(t, "welcome", res.Message)
		assert.JSONEq(t, `{"id": 42}`, string(res.User))
	})

	t.Run("Rejection surfaces the server message", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success": false, "message": "invalid credentials"}`))
		})

		_, err := client.Login(context.Background(), "jane@example.com", "wrong")
		require.Error(t, err)

		var bizErr *backend.BusinessError
		require.ErrorAs(t, err, &bizErr)
		assert.Equal(t, "invalid credentials", bizErr.Message)
	})

	t.Run("Undecodable failure is not a business error", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream exploded"))
		})

		_, err := client.Login(context.Background(), "jane@example.com", "hunter2")
		require.Error(t, err)

		var bizErr *backend.BusinessError
		assert.False(t, errors.As(err, &bizErr))
	})
}

func TestVerifyAccount(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/verify", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		var req map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 123456, req["verification-code"])

		_, _ = w.Write([]byte(`{"success": true, "message": "account verified"}`))
	})

	msg, err := client.VerifyAccount(context.Background(), "session-token", 123456)
	require.NoError(t, err)
	assert.Equal(t, "account verified", msg)
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()

	t.Run("VerifyResetCode returns the reset token", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/upload-verification-code", r.URL.Path)

			_, _ = w.Write([]byte(`{"success": true, "token": "reset-token"}`))
		})

		token, err := client.VerifyResetCode(context.Background(), "jane@example.com", "654321")
		require.NoError(t, err)
		assert.Equal(t, "reset-token", token)
	})

	t.Run("ResetPassword rides the reset token bearer", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/reset-password", r.URL.Path)
			assert.Equal(t, "Bearer reset-token", r.Header.Get("Authorization"))

			_, _ = w.Write([]byte(`{"success": true}`))
		})

		err := client.ResetPassword(context.Background(), "reset-token", "new-password")
		require.NoError(t, err)
	})
}

func TestEventTypes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
	}{
		{
			name: "Bare array",
			body: `[{"id": 1, "name": "Music"}, {"id": 2, "name": "Tech"}]`,
		},
		{
			name: "Wrapped object",
			body: `{"eventTypes": [{"id": 1, "name": "Music"}, {"id": 2, "name": "Tech"}]}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/events/event-types", r.URL.Path)
				assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

				_, _ = w.Write([]byte(tc.body))
			})

			types, err := client.EventTypes(context.Background(), "session-token")
			require.NoError(t, err)
			require.Len(t, types, 2)
			assert.Equal(t, models.EventType{ID: 1, Name: "Music"}, types[0])
		})
	}
}

func TestEvents(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/get/all", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "6", r.URL.Query().Get("size"))

		_, _ = w.Write([]byte(`{"data": {"content": [
			{"id": 7, "eventName": "Go Conf", "eventVenue": "City Hall", "eventCapacity": 110}
		]}}`))
	})

	events, err := client.Events(context.Background(), "session-token", 2, 6)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Go Conf", events[0].EventName)
	assert.Equal(t, 110, events[0].EventCapacity)
}

func TestCreateEvent(t *testing.T) {
	t.Parallel()

	payload := models.EventPayload{
		EventName:      "Go Conf",
		EventStartDate: time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC),
		EventEndDate:   time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC),
		EventVenue:     "City Hall",
		EventCapacity:  110,
		CreatorID:      "42",
		TicketType: []models.TicketTier{
			{Category: "VIP", Count: 10, Price: 150},
			{Category: "General", Count: 100, Price: 25},
		},
		EventTypeIDs: []int{1, 3},
	}

	t.Run("Event and poster parts", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/events/create", r.URL.Path)
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

			require.NoError(t, r.ParseMultipartForm(1<<20))

			var decoded models.EventPayload
			require.NoError(t, json.Unmarshal([]byte(r.MultipartForm.Value["event"][0]), &decoded))
			assert.Equal(t, "Go Conf", decoded.EventName)
			assert.Equal(t, 110, decoded.EventCapacity)
			assert.Equal(t, "42", decoded.CreatorID)

			file, header, err := r.FormFile("poster")
			require.NoError(t, err)
			defer file.Close()

			assert.Equal(t, "banner.png", header.Filename)
			data, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, []byte("png-bytes"), data)

			_, _ = w.Write([]byte(`{"success": true, "message": "event created"}`))
		})

		msg, err := client.CreateEvent(context.Background(), "session-token", payload,
			&models.Poster{Name: "banner.png", ContentType: "image/png", Data: []byte("png-bytes")})
		require.NoError(t, err)
		assert.Equal(t, "event created", msg)
	})

	t.Run("Poster is optional", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))

			assert.NotEmpty(t, r.MultipartForm.Value["event"])
			assert.Empty(t, r.MultipartForm.File["poster"])

			w.WriteHeader(http.StatusCreated)
		})

		msg, err := client.CreateEvent(context.Background(), "session-token", payload, nil)
		require.NoError(t, err)
		assert.Empty(t, msg)
	})

	t.Run("Explicit rejection", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "message": "capacity exceeds venue limit"}`))
		})

		_, err := client.CreateEvent(context.Background(), "session-token", payload, nil)
		require.Error(t, err)

		var bizErr *backend.BusinessError
		require.ErrorAs(t, err, &bizErr)
		assert.Equal(t, "capacity exceeds venue limit", bizErr.Message)
	})
}
