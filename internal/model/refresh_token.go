package model

import (
	"errors"
	"time"
)

// ErrInvalidFingerprint is raised when refresh token is presented from another device
var ErrInvalidFingerprint = errors.New("invalid fingerprint for refresh token provided")

// ErrRefreshTokenExpired is raised when refresh token is beyond its lifetime
var ErrRefreshTokenExpired = errors.New("refresh token already expired")

// RefreshToken is a long-lived session token bound to a device fingerprint
type RefreshToken struct {
	ID          string
	UserID      string
	Fingerprint string
	ExpiresIn   int
	CreatedAt   time.Time
}

// Verify checks the token belongs to the presenting device and is still alive
func (r *RefreshToken) Verify(fingerprint string, now time.Time) error {
	if r.Fingerprint != fingerprint {
		return ErrInvalidFingerprint
	}

	if r.CreatedAt.Add(time.Duration(r.ExpiresIn) * time.Second).Before(now) {
		return ErrRefreshTokenExpired
	}
	return nil
}
