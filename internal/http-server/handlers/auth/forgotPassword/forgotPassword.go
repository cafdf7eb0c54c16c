// Package forgotPassword implements the three-step reset flow: request a
// code by email, trade the code for a short-lived reset token, then set the
// new password under that token. Steps cannot be skipped, the reset token
// from step 2 is the only way into step 3.
package forgotPassword

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventify/internal/backend"
	"eventify/internal/lib/api/response"
	"eventify/internal/lib/logger/sl"
	"eventify/internal/session"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CodeRequester
type CodeRequester interface {
	RequestPasswordReset(ctx context.Context, email string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CodeVerifier
type CodeVerifier interface {
	VerifyResetCode(ctx context.Context, email, code string) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PasswordResetter
type PasswordResetter interface {
	ResetPassword(ctx context.Context, resetToken, password string) error
}

type RequestCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func NewRequestCode(log *slog.Logger, requester CodeRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.forgotPassword.NewRequestCode"

		log = log.With(
			slog.String("op", op),
		)

		var req RequestCodeRequest
		if !decodeAndValidate(w, r, log, &req) {
			return
		}

		if err := requester.RequestPasswordReset(r.Context(), req.Email); err != nil {
			respondError(w, r, log, err, "failed to request reset code")
			return
		}

		log.Info("reset code requested")

		render.JSON(w, r, response.OKMessage(
			"A verification code has been sent to your email. Please check your inbox and enter the code below.",
		))
	}
}

type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type VerifyCodeResponse struct {
	response.Response
	Token string `json:"token,omitempty"`
}

func NewVerifyCode(log *slog.Logger, verifier CodeVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.forgotPassword.NewVerifyCode"

		log = log.With(
			slog.String("op", op),
		)

		var req VerifyCodeRequest
		if !decodeAndValidate(w, r, log, &req) {
			return
		}

		token, err := verifier.VerifyResetCode(r.Context(), req.Email, req.Code)
		if err != nil {
			respondError(w, r, log, err, "failed to verify reset code")
			return
		}

		log.Info("reset code verified")

		render.JSON(w, r, VerifyCodeResponse{
			Response: response.OKMessage("Your verification code is correct. You can now set a new password."),
			Token:    token,
		})
	}
}

type ResetRequest struct {
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

func NewResetPassword(log *slog.Logger, resetter PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.forgotPassword.NewResetPassword"

		log = log.With(
			slog.String("op", op),
		)

		resetToken, err := session.BearerToken(r)
		if err != nil {
			log.Warn("missing reset token", sl.Err(err))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("reset token is missing"))

			return
		}

		var req ResetRequest
		if !decodeAndValidate(w, r, log, &req) {
			return
		}

		// Checked before any network call.
		if req.Password != req.ConfirmPassword {
			log.Warn("password mismatch")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("passwords do not match, please ensure both fields match"))

			return
		}

		if err := resetter.ResetPassword(r.Context(), resetToken, req.Password); err != nil {
			respondError(w, r, log, err, "failed to reset password")
			return
		}

		log.Info("password reset")

		resp := response.OKMessage("Your password has been successfully reset! Redirecting to login page...")
		resp.Redirect = "/"

		render.JSON(w, r, resp)
	}
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, log *slog.Logger, req any) bool {
	if err := render.DecodeJSON(r.Body, req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))

		return false
	}

	if err := validator.New().Struct(req); err != nil {
		var validateErr validator.ValidationErrors
		errors.As(err, &validateErr)

		log.Error("invalid request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(validateErr))

		return false
	}

	return true
}

func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, generic string) {
	var bizErr *backend.BusinessError
	if errors.As(err, &bizErr) {
		log.Warn("backend rejected request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(bizErr.Message))

		return
	}

	log.Error(generic, sl.Err(err))
	render.Status(r, http.StatusBadGateway)
	render.JSON(w, r, response.Error("something went wrong, please try again"))
}
