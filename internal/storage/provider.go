// Package storage abstracts where events live. The core never talks to a
// backend directly; it goes through an EventProvider and only updates its
// working state when the provider call succeeded.
package storage

import (
	"context"
	"errors"

	"iljeong/internal/model"
)

// ErrNotFound is returned when an event ID does not exist in the backend.
var ErrNotFound = errors.New("no event with that id")

// EventProvider is the abstracted persistence collaborator, implementable
// over various storage systems (a local file, a remote HTTP API, ...).
//
// The provider's responsibilities are:
//   - keep the persisted event set
//   - assign an identifier on creation
//   - fail atomically: a returned error means the backend is unchanged
type EventProvider interface {
	List(ctx context.Context) ([]model.Event, error)
	Create(ctx context.Context, e model.Event) (model.Event, error)
	Update(ctx context.Context, id string, e model.Event) (model.Event, error)
	Delete(ctx context.Context, id string) error
}
