package backend

import (
	"context"
	"fmt"

	"eventify/internal/models"
)

func (c *Client) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	const op = "backend.Login"

	var res models.AuthResult
	if err := c.postJSON(ctx, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &res); err != nil {
		return models.AuthResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if !res.Success {
		return models.AuthResult{}, fmt.Errorf("%s: %w", op, &BusinessError{Message: res.Message})
	}

	return res, nil
}

func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (models.AuthResult, error) {
	const op = "backend.Register"

	var res models.AuthResult
	if err := c.postJSON(ctx, "/api/auth/register", "", map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"password":  password,
	}, &res); err != nil {
		return models.AuthResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if !res.Success {
		return models.AuthResult{}, fmt.Errorf("%s: %w", op, &BusinessError{Message: res.Message})
	}

	return res, nil
}

// VerifyAccount submits the numeric verification code under the session
// token and returns the backend's message.
func (c *Client) VerifyAccount(ctx context.Context, token string, code int) (string, error) {
	const op = "backend.VerifyAccount"

	var res statusResponse
	if err := c.postJSON(ctx, "/api/auth/verify", token, map[string]int{
		"verification-code": code,
	}, &res); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !res.Success {
		return "", fmt.Errorf("%s: %w", op, &BusinessError{Message: res.Message})
	}

	return res.Message, nil
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	const op = "backend.RequestPasswordReset"

	var res statusResponse
	if err := c.postJSON(ctx, "/api/auth/forgot-password", "", map[string]string{
		"email": email,
	}, &res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !res.Success {
		return fmt.Errorf("%s: %w", op, &BusinessError{Message: res.Message})
	}

	return nil
}

// VerifyResetCode trades the emailed code for a short-lived reset token.
func (c *Client) VerifyResetCode(ctx context.Context, email, code string) (string, error) {
	const op = "backend.VerifyResetCode"

	var res statusResponse
	if err := c.postJSON(ctx, "/api/auth/upload-verification-code", "", map[string]string{
		"email": email,
		"code":  code,
	}, &res); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !res.Success {
		return "", fmt.Errorf("%s: %w", op, &BusinessError{Message: res.Message})
	}

	return res.Token, nil
}

// ResetPassword sets the new password under the reset token's bearer auth.
func (c *Client) ResetPassword(ctx context.Context, resetToken, password string) error {
	const op = "backend.ResetPassword"

	var res statusResponse
	if err := c.postJSON(ctx, "/api/auth/reset-password", resetToken, map[string]string{
		"password": password,
	}, &res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !res.Success {
		return fmt.Errorf("%s: %w", op, &BusinessError{Message: res.Message})
	}

	return nil
}
