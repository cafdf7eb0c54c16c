// Package session is the single read/write contract over the client-side
// session state: the "token" and "user" cookies written on login/signup and
// consulted by every protected view. Token claims are decoded without
// signature verification, the backend is the only party that validates
// signatures.
package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenCookie = "token"
	UserCookie  = "user"
)

var (
	ErrNoSession    = errors.New("no session")
	ErrTokenExpired = errors.New("token expired")
)

type Session struct {
	Token string
	User  json.RawMessage
}

// Store writes the session cookies. The user record is opaque JSON, so it is
// base64-encoded to stay cookie-safe. Both cookies live until the token's
// exp claim, so the session survives browser restarts exactly as long as the
// token itself is alive; a token without a readable exp gets a plain session
// cookie.
func Store(w http.ResponseWriter, token string, user json.RawMessage) {
	var expires time.Time
	if claims, err := (Session{Token: token}).claims(); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			expires = exp.Time
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     UserCookie,
		Value:    base64.RawURLEncoding.EncodeToString(user),
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func Clear(w http.ResponseWriter) {
	for _, name := range []string{TokenCookie, UserCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:   name,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}
}

func Read(r *http.Request) (Session, error) {
	c, err := r.Cookie(TokenCookie)
	if err != nil || c.Value == "" {
		return Session{}, ErrNoSession
	}

	s := Session{Token: c.Value}

	if uc, err := r.Cookie(UserCookie); err == nil {
		if raw, err := base64.RawURLEncoding.DecodeString(uc.Value); err == nil {
			s.User = raw
		}
	}

	return s, nil
}

// Valid checks the token's exp claim against now. A token that cannot be
// decoded is treated the same as an expired one.
func (s Session) Valid(now time.Time) error {
	claims, err := s.claims()
	if err != nil {
		return ErrTokenExpired
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ErrTokenExpired
	}

	if exp.Before(now) {
		return ErrTokenExpired
	}

	return nil
}

// UserID returns the userId claim, used as the creator id on event creation.
func (s Session) UserID() (string, error) {
	claims, err := s.claims()
	if err != nil {
		return "", err
	}

	switch id := claims["userId"].(type) {
	case string:
		if id != "" {
			return id, nil
		}
	case float64:
		return strconv.FormatInt(int64(id), 10), nil
	}

	return "", errors.New("userId claim not found in token")
}

func (s Session) claims() (jwt.MapClaims, error) {
	token, _, err := new(jwt.Parser).ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// BearerToken extracts a bearer token from the Authorization header. Used by
// the password-reset flow, where the short-lived reset token never touches
// the session cookies.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("authorization header format must be 'Bearer {token}'")
	}

	return parts[1], nil
}
