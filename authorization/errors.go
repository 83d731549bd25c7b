package authorization

import "errors"

var (
	// ErrInvalidToken is returned when the provided token is invalid or expired
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidTokenType is returned when the type of the token is invalid for the requested operation
	ErrInvalidTokenType = errors.New("invalid token type for requested operation")
)
