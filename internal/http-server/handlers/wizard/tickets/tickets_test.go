package tickets_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"eventify/internal/http-server/handlers/wizard/tickets"
	"eventify/internal/lib/logger/handlers/slogdiscard"
	"eventify/internal/models"
	"eventify/internal/wizard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withIndex(req *http.Request, index string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("index", index)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestAddTierHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Tier is appended and totals reported", func(t *testing.T) {
		t.Parallel()

		drafts := wizard.NewStore(time.Hour)
		draft := drafts.Create(time.Now())
		draft.AddTier(models.TicketTier{Category: "VIP", Count: 10, Price: 150})

		handler := tickets.NewAdd(logger, drafts)

		body := `{"typeCategory": "General", "numberOfTickets": 100, "price": 25}`
		req := httptest.NewRequest(http.MethodPost, "/api/ui/wizard/tickets", bytes.NewBufferString(body))
		req.AddCookie(&http.Cookie{Name: wizard.CookieName, Value: draft.ID})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.Len(t, draft.Tiers, 2)
		assert.Contains(t, rr.Body.String(), `"totalTickets":110`)
		assert.NotContains(t, rr.Body.String(), "warning")
	})

	t.Run("Zero count tier reports a warning", func(t *testing.T) {
		t.Parallel()

		drafts := wizard.NewStore(time.Hour)
		draft := drafts.Create(time.Now())

		handler := tickets.NewAdd(logger, drafts)

		body := `{"typeCategory": "VIP", "numberOfTickets": 0, "price": 150}`
		req := httptest.NewRequest(http.MethodPost, "/api/ui/wizard/tickets", bytes.NewBufferString(body))
		req.AddCookie(&http.Cookie{Name: wizard.CookieName, Value: draft.ID})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "total number of tickets must be greater than zero")
	})

	t.Run("Parallel adds all land", func(t *testing.T) {
		t.Parallel()

		drafts := wizard.NewStore(time.Hour)
		draft := drafts.Create(time.Now())

		handler := tickets.NewAdd(logger, drafts)

		const workers = 8

		var wg sync.WaitGroup
		wg.Add(workers)

		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()

				body := `{"typeCategory": "General", "numberOfTickets": 10, "price": 25}`
				req := httptest.NewRequest(http.MethodPost, "/api/ui/wizard/tickets", bytes.NewBufferString(body))
				req.AddCookie(&http.Cookie{Name: wizard.CookieName, Value: draft.ID})

				handler.ServeHTTP(httptest.NewRecorder(), req)
			}()
		}

		wg.Wait()

		draft.Lock()
		defer draft.Unlock()

		assert.Len(t, draft.Tiers, workers)
		assert.Equal(t, workers*10, draft.TotalTickets())
	})

	t.Run("Missing category", func(t *testing.T) {
		t.Parallel()

		drafts := wizard.NewStore(time.Hour)
		draft := drafts.Create(time.Now())

		handler := tickets.NewAdd(logger, drafts)

		req := httptest.NewRequest(http.MethodPost, "/api/ui/wizard/tickets", bytes.NewBufferString(`{"numberOfTickets": 5}`))
		req.AddCookie(&http.Cookie{Name: wizard.CookieName, Value: draft.ID})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "field TypeCategory is a required field")
		assert.Empty(t, draft.Tiers)
	})
}

func TestUpdateTierHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Tier is replaced in place", func(t *testing.T) {
		t.Parallel()

		drafts := wizard.NewStore(time.Hour)
		draft := drafts.Create(time.Now())
		draft.AddTier(models.TicketTier{Category: "VIP", Count: 10, Price: 150})

		handler := tickets.NewUpdate(logger, drafts)

		body := `{"typeCategory": "VIP", "numberOfTickets": 20, "price": 175}`
		req := httptest.NewRequest(http.MethodPut, "/api/ui/wizard/tickets/0", bytes.NewBufferString(body))
		req.AddCookie(&http.Cookie{Name: wizard.CookieName, Value: draft.ID})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, withIndex(req, "0"))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 20, draft.Tiers[0].Count)
		assert.Contains(t, rr.Body.String(), `"totalTickets":20`)
	})

	t.Run("Index out of range", func(t *testing.T) {
		t.Parallel()

		drafts := wizard.NewStore(time.Hour)
		draft := drafts.Create(time.Now())

		handler := tickets.NewUpdate(logger, drafts)

		body := `{"typeCategory": "VIP", "numberOfTickets": 20, "price": 175}`
		req := httptest.NewRequest(http.MethodPut, "/api/ui/wizard/tickets/4", bytes.NewBufferString(body))
		req.AddCookie(&http.Cookie{Name: wizard.CookieName, Value: draft.ID})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, withIndex(req, "4"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "ticket tier index out of range")
	})

	t.Run("Non-numeric index", func(t *testing.T) {
		t.Parallel()

		drafts := wizard.NewStore(time.Hour)

		handler := tickets.NewUpdate(logger, drafts)

		req := httptest.NewRequest(http.MethodPut, "/api/ui/wizard/tickets/abc", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, withIndex(req, "abc"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid tier index")
	})
}

func TestRemoveTierHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Later tiers shift down", func(t *testing.T) {
		t.Parallel()

		drafts := wizard.NewStore(time.Hour)
		draft := drafts.Create(time.Now())
		draft.AddTier(models.TicketTier{Category: "VIP", Count: 10, Price: 150})
		draft.AddTier(models.TicketTier{Category: "General", Count: 100, Price: 25})

		handler := tickets.NewRemove(logger, drafts)

		req := httptest.NewRequest(http.MethodDelete, "/api/ui/wizard/tickets/0", nil)
		req.AddCookie(&http.Cookie{Name: wizard.CookieName, Value: draft.ID})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, withIndex(req, "0"))

		require.Equal(t, http.StatusOK, rr.Code)
		require.Len(t, draft.Tiers, 1)
		assert.Equal(t, "General", draft.Tiers[0].Category)
		assert.Contains(t, rr.Body.String(), `"totalTickets":100`)
	})

	t.Run("No draft", func(t *testing.T) {
		t.Parallel()

		handler := tickets.NewRemove(logger, wizard.NewStore(time.Hour))

		req := httptest.NewRequest(http.MethodDelete, "/api/ui/wizard/tickets/0", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, withIndex(req, "0"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
