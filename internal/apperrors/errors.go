package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found
// (or is not visible to the requester).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates an operation attempted outside the statuses that permit it.
var ErrInvalidState = errors.New("operation not allowed in current status")

// ErrForbidden indicates the caller is authenticated but lacks the required role or ownership.
var ErrForbidden = errors.New("forbidden")
