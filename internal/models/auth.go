package models

import "encoding/json"

// AuthResult is the backend's answer to login and register calls. The user
// record is opaque to the gateway and is stored and returned verbatim.
type AuthResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    json.RawMessage `json:"user,omitempty"`
	Token   string          `json:"token,omitempty"`
}
