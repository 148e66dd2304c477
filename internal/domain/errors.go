package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrUnknownLanguage = errors.New("unknown language code")
)
