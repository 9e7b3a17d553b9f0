package errors

import (
	"encoding/json"
)

// BusinessErr signals that the request is well-formed but violates a
// domain rule, e.g. unknown enum literal or duplicate email
type BusinessErr struct {
	target  string
	message string
}

func (e *BusinessErr) Error() string {
	return e.message
}

// MarshalJSON renders the error in the API error payload shape
func (e *BusinessErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

// NewBusinessErr builds BusinessErr
func NewBusinessErr(target string, msg string) error {
	return &BusinessErr{
		target:  target,
		message: msg,
	}
}

// EntryNotFoundErr signals the addressed entry doesn't exist (anymore)
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// NewEntryNotFoundErr builds EntryNotFoundErr
func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// AccessDeniedErr signals the authenticated user is not allowed to
// perform the operation on the addressed entry
type AccessDeniedErr struct {
	message string
}

func (e *AccessDeniedErr) Error() string {
	return e.message
}

// NewAccessDeniedErr builds AccessDeniedErr
func NewAccessDeniedErr(msg string) *AccessDeniedErr {
	return &AccessDeniedErr{message: msg}
}
