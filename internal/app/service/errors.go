package service

import "errors"

var (
	// ErrInvalidURL marks a submission that is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid original url")

	// ErrGenerationExhausted is returned when every generation attempt
	// collided with an existing code.
	ErrGenerationExhausted = errors.New("could not generate a unique short code")

	// ErrInvalidID marks a malformed mapping identifier.
	ErrInvalidID = errors.New("invalid mapping id")
)
