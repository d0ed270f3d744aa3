package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNetwork indicates that an outbound provider call failed before a
// response body could be read (connection failure, timeout).
var ErrNetwork = errors.New("provider network error")

// ErrDecode indicates that a provider response did not match the expected
// document shape.
var ErrDecode = errors.New("provider response decode error")

// ErrProvider indicates that the remote provider reported a non-success
// result code in an otherwise well-formed response.
var ErrProvider = errors.New("provider reported failure")
