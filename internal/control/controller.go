// Package control wires the scheduling core to a persistence provider and
// owns the session's working event set.
package control

import (
	"context"

	"github.com/rs/zerolog/log"

	"iljeong/internal/model"
	"iljeong/internal/storage"
	"iljeong/internal/validate"
)

// Controller holds the working event set for one session. Mutations go
// through the provider first; a failed provider call leaves the working
// set exactly as it was.
type Controller struct {
	provider storage.EventProvider
	events   []model.Event
}

func NewController(provider storage.EventProvider) *Controller {
	return &Controller{
		provider: provider,
		events:   []model.Event{},
	}
}

// Events returns the current working set.
func (c *Controller) Events() []model.Event {
	return c.events
}

// Refresh replaces the working set with the provider's current state.
func (c *Controller) Refresh(ctx context.Context) error {
	events, err := c.provider.List(ctx)
	if err != nil {
		return err
	}
	c.events = events
	log.Debug().Int("count", len(events)).Msg("refreshed events")
	return nil
}

// Save validates the event and persists it, creating or updating depending
// on whether it carries an ID. Overlaps with existing events are not an
// error but a conflict set requiring explicit confirmation: unless force
// is set, a non-empty conflict return means nothing was saved.
func (c *Controller) Save(ctx context.Context, e model.Event, force bool) ([]model.Event, error) {
	if err := validate.Form(e); err != nil {
		return nil, err
	}

	conflicts := model.FindOverlapping(e, c.events)
	if len(conflicts) > 0 && !force {
		return conflicts, nil
	}

	var saved model.Event
	var err error
	if e.Saved() {
		saved, err = c.provider.Update(ctx, e.ID, e)
	} else {
		saved, err = c.provider.Create(ctx, e)
	}
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range c.events {
		if c.events[i].ID == saved.ID {
			c.events[i] = saved
			replaced = true
			break
		}
	}
	if !replaced {
		c.events = append(c.events, saved)
	}

	log.Info().Str("id", saved.ID).Str("title", saved.Title).Msg("saved event")
	return conflicts, nil
}

// Delete removes an event from the backend and, on success, from the
// working set.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.provider.Delete(ctx, id); err != nil {
		return err
	}
	for i := range c.events {
		if c.events[i].ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			break
		}
	}
	log.Info().Str("id", id).Msg("deleted event")
	return nil
}
