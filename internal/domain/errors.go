package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoRecords          = errors.New("no records available")
	ErrUnknownField       = errors.New("field is not part of the vocabulary tables")
	ErrMissingParticipant = errors.New("record has no participant identifier")
)
