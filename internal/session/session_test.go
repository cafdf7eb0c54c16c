package session_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventify/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestStoreRead(t *testing.T) {
	t.Parallel()

	user := json.RawMessage(`{"id":42,"email":"jane@example.com"}`)

	rr := httptest.NewRecorder()
	session.Store(rr, "some-token", user)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}

	s, err := session.Read(req)
	require.NoError(t, err)

	assert.Equal(t, "some-token", s.Token)
	assert.JSONEq(t, string(user), string(s.User))
}

func TestStoreCookieLifetime(t *testing.T) {
	t.Parallel()

	t.Run("Cookies expire with the token", func(t *testing.T) {
		t.Parallel()

		exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		token := signToken(t, jwt.MapClaims{"exp": exp.Unix(), "userId": "u-1"})

		rr := httptest.NewRecorder()
		session.Store(rr, token, json.RawMessage(`{}`))

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 2)
		for _, c := range cookies {
			assert.WithinDuration(t, exp, c.Expires, time.Second, "cookie %s", c.Name)
		}
	})

	t.Run("No readable exp falls back to a session cookie", func(t *testing.T) {
		t.Parallel()

		rr := httptest.NewRecorder()
		session.Store(rr, "not-a-jwt", json.RawMessage(`{}`))

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 2)
		for _, c := range cookies {
			assert.True(t, c.Expires.IsZero(), "cookie %s", c.Name)
		}
	})
}

func TestReadNoSession(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := session.Read(req)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestValid(t *testing.T) {
	t.Parallel()

	now := time.Now()

	testCases := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:    "Valid token",
			token:   signToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix(), "userId": "u-1"}),
			wantErr: nil,
		},
		{
			name:    "Expired ten seconds ago",
			token:   signToken(t, jwt.MapClaims{"exp": now.Add(-10 * time.Second).Unix(), "userId": "u-1"}),
			wantErr: session.ErrTokenExpired,
		},
		{
			name:    "No exp claim",
			token:   signToken(t, jwt.MapClaims{"userId": "u-1"}),
			wantErr: session.ErrTokenExpired,
		},
		{
			name:    "Malformed token",
			token:   "not.a.jwt",
			wantErr: session.ErrTokenExpired,
		},
		{
			name:    "Empty token",
			token:   "",
			wantErr: session.ErrTokenExpired,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := session.Session{Token: tc.token}.Valid(now)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestUserID(t *testing.T) {
	t.Parallel()

	t.Run("String claim", func(t *testing.T) {
		t.Parallel()

		s := session.Session{Token: signToken(t, jwt.MapClaims{"userId": "user-17"})}

		id, err := s.UserID()
		require.NoError(t, err)
		assert.Equal(t, "user-17", id)
	})

	t.Run("Numeric claim", func(t *testing.T) {
		t.Parallel()

		s := session.Session{Token: signToken(t, jwt.MapClaims{"userId": 17})}

		id, err := s.UserID()
		require.NoError(t, err)
		assert.Equal(t, "17", id)
	})

	t.Run("Missing claim", func(t *testing.T) {
		t.Parallel()

		s := session.Session{Token: signToken(t, jwt.MapClaims{"sub": "whatever"})}

		_, err := s.UserID()
		assert.Error(t, err)
	})
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "Valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "Lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "Missing header", header: "", wantErr: true},
		{name: "Wrong scheme", header: "Basic abc", wantErr: true},
		{name: "No token", header: "Bearer", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			got, err := session.BearerToken(req)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
