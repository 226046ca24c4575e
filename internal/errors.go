package internal

import "errors"

// ErrInvalidCategory is returned by the mood store when an append is attempted
// with a category id outside the fixed enumeration. Trusted UI paths never
// construct such an id, so this signals an internal error.
var ErrInvalidCategory = errors.New("mood category outside the fixed enumeration")

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}
