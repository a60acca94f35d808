package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert registration")
	ErrFailedToGet    = errors.New("failed to get registration")
	ErrDuplicate      = errors.New("registration violates a uniqueness constraint")
)
