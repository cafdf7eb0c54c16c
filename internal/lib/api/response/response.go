package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the envelope shared by every /api/ui endpoint. Message carries
// the toast text the UI shell shows on success, Redirect the page the shell
// should navigate to next.
type Response struct {
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func OKMessage(msg string) Response {
	return Response{
		Status:  StatusOK,
		Message: msg,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// LoginRequired is the uniform answer for a missing, malformed or expired
// session token.
func LoginRequired() Response {
	return Response{
		Status:   StatusError,
		Error:    "session expired",
		Redirect: "/login",
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid email", err.Field()))
		case "min":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is too small", err.Field()))
		case "max":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is too big", err.Field()))
		case "len":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s has a wrong length", err.Field()))
		case "datetime":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s has a wrong format", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Error(strings.Join(errMsgs, ", "))
}
