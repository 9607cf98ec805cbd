package profile

import "errors"

var (
	ErrNotFound     = errors.New("profile not found")
	ErrInvalid      = errors.New("invalid profile")
	ErrUnknownColor = errors.New("unknown color name")
)
