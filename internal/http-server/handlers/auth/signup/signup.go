package signup

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"eventify/internal/backend"
	"eventify/internal/lib/api/response"
	"eventify/internal/lib/logger/sl"
	"eventify/internal/models"
	"eventify/internal/session"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type Response struct {
	response.Response
	User json.RawMessage `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRegistrar
type UserRegistrar interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (models.AuthResult, error)
}

func New(log *slog.Logger, registrar UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signup.New"

		log = log.With(
			slog.String("op", op),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("email", req.Email))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		// Checked before any network call.
		if req.Password != req.ConfirmPassword {
			log.Warn("password mismatch")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("passwords do not match"))

			return
		}

		res, err := registrar.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
		if err != nil {
			var bizErr *backend.BusinessError
			if errors.As(err, &bizErr) {
				log.Warn("registration rejected", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(bizErr.Message))

				return
			}

			log.Error("failed to register", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("an error occurred, please try again"))

			return
		}

		session.Store(w, res.Token, res.User)

		log.Info("user registered")

		responseOK(w, r, res)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, res models.AuthResult) {
	msg := res.Message
	if msg == "" {
		msg = "Registration successful! Redirecting..."
	}

	resp := response.OKMessage(msg)
	resp.Redirect = "/verify"

	render.JSON(w, r, Response{
		Response: resp,
		User:     res.User,
	})
}
