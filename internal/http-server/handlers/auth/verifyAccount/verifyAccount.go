package verifyAccount

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventify/internal/backend"
	"eventify/internal/http-server/middleware/mwauth"
	"eventify/internal/lib/api/response"
	"eventify/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Code int `json:"verification-code" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AccountVerifier
type AccountVerifier interface {
	VerifyAccount(ctx context.Context, token string, code int) (string, error)
}

func New(log *slog.Logger, verifier AccountVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.verifyAccount.New"

		log = log.With(
			slog.String("op", op),
		)

		sess, ok := mwauth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.LoginRequired())

			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		msg, err := verifier.VerifyAccount(r.Context(), sess.Token, req.Code)
		if err != nil {
			var bizErr *backend.BusinessError
			if errors.As(err, &bizErr) {
				// The backend's explanation is shown as-is.
				log.Warn("verification rejected", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(bizErr.Message))

				return
			}

			log.Error("failed to verify account", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("something went wrong, please try again"))

			return
		}

		log.Info("account verified")

		if msg == "" {
			msg = "Verification successful! Redirecting..."
		}

		resp := response.OKMessage(msg)
		resp.Redirect = "/dashboard"

		render.JSON(w, r, resp)
	}
}
