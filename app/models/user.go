package models

import "time"

// User is one staff credential row. Passwords are stored and compared as
// plain text to match the legacy credential table; see DESIGN.md for why this
// known defect is reproduced rather than fixed.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// Session is one store-backed login session, referenced from the signed
// session cookie and read once per request.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
