package domain

import (
	"errors"
	"fmt"
)

// Entity kinds used in not-found errors.
const (
	KindFilm  = "film"
	KindUser  = "user"
	KindGenre = "genre"
	KindMpa   = "mpa rating"
)

// ErrDuplicateEmail is returned when a create or update would leave two
// users with the same email.
var ErrDuplicateEmail = errors.New("email is already in use")

// ValidationError reports a malformed entity field. Maps to 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown film or user id. Maps to 404.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

// ReferenceNotFoundError reports a dangling genre or MPA id. This is a
// lookup failure against the reference tables, not a validation
// failure. Maps to 404.
type ReferenceNotFoundError struct {
	Kind string
	ID   int64
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d does not exist", e.Kind, e.ID)
}

// ConditionsNotMetError reports an operation whose preconditions do not
// hold in the current state, e.g. liking a film twice. Maps to 400.
type ConditionsNotMetError struct {
	Detail string
}

func (e *ConditionsNotMetError) Error() string {
	return e.Detail
}
