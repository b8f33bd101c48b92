package service

import "errors"

// ErrInvalidInput is wrapped by every request validation failure.
var ErrInvalidInput = errors.New("invalid input")
