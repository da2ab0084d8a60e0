package session

import "errors"

var (
	ErrInvalidToken            = errors.New("session: invalid token")
	ErrUnexpectedSigningMethod = errors.New("session: unexpected signing method")
)
