package adapter

import "errors"

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrBadRequest           = errors.New("bad request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrServiceUnavailable   = errors.New("service unavailable")
	ErrUnexpectedStatus     = errors.New("unexpected response status")
	ErrInvalidAddress       = errors.New("invalid service address")
)
