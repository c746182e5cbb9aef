package core

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDeserialization   = errors.New("deserialization error")
	ErrIO                = errors.New("i/o error")
)
