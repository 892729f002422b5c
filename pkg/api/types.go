package api

import "encoding/json"

// Envelope is the response wrapper the checklist service puts around every
// payload. Data is kept raw because record shapes are not stable; callers
// decode into checklist.Raw and let pkg/extract sort it out.
type Envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// AuthSuccess is the statusCode the service documents for successful
// login and register calls.
const AuthSuccess = 2110

// LoginRequest carries credentials for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest carries the fields for POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenData struct {
	Token string `json:"token"`
}
