package engine

import "errors"

var (
	ErrNoIdentity         = errors.New("no identity provisioned")
	ErrInvalidSignupToken = errors.New("invalid signup token")
	ErrSessionNotFound    = errors.New("session not found")
	ErrMalformedEnvelope  = errors.New("malformed encrypted envelope")
	ErrWrongSession       = errors.New("envelope belongs to another session")
	ErrFilenameTooLong    = errors.New("filename exceeds envelope limit")
)
