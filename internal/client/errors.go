package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidID      = errors.New("account id must be a positive integer")
	ErrMissingID      = errors.New("account id is required")
)
