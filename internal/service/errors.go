package service

import (
	"errors"
	"fmt"
)

// ValidationError is bad or missing input, including a duplicate unique field.
type ValidationError struct {
	Msg string
	Err error
}

func (e ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "Not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// AuthorizationError means the caller is known but not allowed to act.
type AuthorizationError struct {
	Msg string
}

func (e AuthorizationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "Not authorized"
}

// AuthenticationError means the caller could not be identified.
type AuthenticationError struct {
	Msg string
	Err error
}

func (e AuthenticationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "Not authenticated"
}

func (e AuthenticationError) Unwrap() error { return e.Err }

// NotificationError is an awaited email send that failed and aborted the
// mutation it guarded.
type NotificationError struct {
	Msg string
	Err error
}

func (e NotificationError) Error() string {
	return e.Msg
}

func (e NotificationError) Unwrap() error { return e.Err }

// ServerError carries a message that is safe to show next to a 500.
type ServerError struct {
	Msg string
	Err error
}

func (e ServerError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e ServerError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target AuthorizationError
	return errors.As(err, &target)
}

func IsAuthentication(err error) bool {
	var target AuthenticationError
	return errors.As(err, &target)
}

func IsNotification(err error) bool {
	var target NotificationError
	return errors.As(err, &target)
}
