package pages_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventify/internal/http-server/handlers/pages"
	"eventify/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
)

func TestPagesHandler(t *testing.T) {
	t.Parallel()

	handler := pages.New(slogdiscard.NewDiscardLogger())

	for _, route := range pages.Routes() {
		route := route
		t.Run(route, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, route, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), "Eventify")
		})
	}
}
