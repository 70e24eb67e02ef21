package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrMissingAPIKey    = errors.New("no API key configured for this account")
	ErrDeepDiveRequired = errors.New("deep dive requires a pro subscription")
	ErrNoDeepDivesLeft  = errors.New("no deep dives remaining")
)

type NotFoundError struct {
	EntityType string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID)
}

func NewNotFoundError(entityType, id string) error {
	return &NotFoundError{EntityType: entityType, ID: id}
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// AccessDeniedError means the entity exists but the caller neither owns nor shares it.
type AccessDeniedError struct {
	EntityType string
	ID         string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access to %s '%s' denied", e.EntityType, e.ID)
}

func NewAccessDeniedError(entityType, id string) error {
	return &AccessDeniedError{EntityType: entityType, ID: id}
}

func IsAccessDeniedError(err error) bool {
	var target *AccessDeniedError
	return errors.As(err, &target)
}
