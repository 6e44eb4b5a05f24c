package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"iljeong/internal/model"
)

// ErrAlreadyRunning is returned by Start when the engine's timer is
// already active.
var ErrAlreadyRunning = errors.New("reminder engine already running")

// ListFunc supplies the current event set for a poll tick.
type ListFunc func(context.Context) ([]model.Event, error)

// Engine owns the reminder state for one session: the set of event IDs
// that already fired (monotonic until the session ends) and the list of
// notifications currently shown. All methods are safe for use from the
// timer goroutine and the owner simultaneously; each poll tick is atomic.
type Engine struct {
	mu            sync.Mutex
	notified      map[string]struct{}
	notifications []Notification
	cron          *cron.Cron
}

func NewEngine() *Engine {
	return &Engine{
		notified: make(map[string]struct{}),
	}
}

// Poll transitions every newly-due event to notified and returns the
// notifications emitted by this tick, in event input order. Polling again
// with an unchanged now emits nothing; an ID, once notified, stays
// notified even if the due window is still open.
func (e *Engine) Poll(events []model.Event, now time.Time) []Notification {
	e.mu.Lock()
	defer e.mu.Unlock()

	due := Upcoming(events, now, e.notified)
	emitted := make([]Notification, 0, len(due))
	for _, ev := range due {
		n := Notification{EventID: ev.ID, Message: Message(ev)}
		e.notified[ev.ID] = struct{}{}
		e.notifications = append(e.notifications, n)
		emitted = append(emitted, n)
	}
	return emitted
}

// Notifications returns a copy of the currently-displayed notifications.
func (e *Engine) Notifications() []Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Notification, len(e.notifications))
	copy(out, e.notifications)
	return out
}

// HasNotified reports whether the given event already fired this session.
func (e *Engine) HasNotified(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.notified[id]
	return ok
}

// Remove drops the notification at the given position from the visible
// list. The event stays in the notified set: dismissing the toast does not
// re-arm the reminder.
func (e *Engine) Remove(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.notifications) {
		return
	}
	e.notifications = append(e.notifications[:index], e.notifications[index+1:]...)
}

// Start begins polling on the given interval (once per second when the
// interval is not positive). The list function is called on every tick for
// a fresh event snapshot; onDue (if non-nil) is invoked for each emitted
// notification. Start returns immediately; call Stop to tear the timer
// down.
func (e *Engine) Start(interval time.Duration, list ListFunc, onDue func(Notification)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cron != nil {
		return ErrAlreadyRunning
	}
	if interval <= 0 {
		interval = time.Second
	}

	c := cron.New(cron.WithSeconds())
	_, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		events, err := list(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("could not list events for reminder poll")
			return
		}
		for _, n := range e.Poll(events, time.Now()) {
			if onDue != nil {
				onDue(n)
			}
		}
	})
	if err != nil {
		return err
	}

	e.cron = c
	c.Start()
	return nil
}

// Stop cancels the polling timer. The notified set survives; only a new
// session resets it.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cron == nil {
		return
	}
	e.cron.Stop()
	e.cron = nil
}
