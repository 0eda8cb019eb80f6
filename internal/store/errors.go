package store

import "errors"

var (
	ErrSaltNotFound     = errors.New("database salt not found")
	ErrIdentityNotFound = errors.New("identity not found")
	ErrSessionNotFound  = errors.New("session not found")
)
