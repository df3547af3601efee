package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ValidationError represents a rejected request payload.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	if e.Message == "" {
		return "invalid request"
	}
	return e.Message
}

// Is enables errors.Is matching on ValidationError.
func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationError)
	return ok
}

// ErrValidation is the sentinel error for rejected payloads.
var ErrValidation = ValidationError{}

// UnauthenticatedError means no valid session accompanied the request.
type UnauthenticatedError struct{}

func (e UnauthenticatedError) Error() string { return "unauthorized" }

// ErrUnauthenticated is returned when a mutating request carries no session.
var ErrUnauthenticated = UnauthenticatedError{}

// ForbiddenError means the session is valid but the caller is not the admin.
type ForbiddenError struct{}

func (e ForbiddenError) Error() string { return "forbidden" }

// ErrForbidden is returned when an authenticated caller is not the admin.
var ErrForbidden = ForbiddenError{}
