package model

import "time"

// User is a registered account
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	PasswordHash string `json:"-"`
}

// PasswordResetToken is a single-use token sent to the user's email
type PasswordResetToken struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the token is no longer usable at now
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
