package models

// RegisterResponse is the body returned by POST /api/auth/register.
type RegisterResponse struct {
	// Message is a human-readable confirmation.
	Message string `json:"message"`

	// User is the username of the newly created account.
	User string `json:"user"`
}

// LoginResponse is the body returned by POST /api/auth/login.
type LoginResponse struct {
	// AccessToken is the signed JWT to present as a bearer credential.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// NoteResponse is the body returned by note create and update endpoints.
type NoteResponse struct {
	Message string `json:"message"`
	Note    Note   `json:"note"`
}

// MessageResponse is a minimal confirmation body (e.g. note deletion).
type MessageResponse struct {
	Message string `json:"message"`
}
