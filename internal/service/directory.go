// Package service implements the booking directory on top of the
// persistence gateway: the aggregated read views (venues by city, entity
// detail, shows listing, search) and the transactional write operations.
package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

// EventPublisher receives domain events after a write has been committed.
type EventPublisher interface {
	PublishShowBooked(ctx context.Context, ev queue.ShowBookedEvent) error
	PublishListingCreated(ctx context.Context, ev queue.ListingCreatedEvent) error
}

// Directory is the entry point for handlers.  It holds no per-request state.
type Directory struct {
	store  *repository.Store
	events EventPublisher
	now    func() time.Time
	log    logrus.FieldLogger
}

// Option configures a Directory.
type Option func(*Directory)

// WithClock replaces time.Now as the source of "now" used to split shows
// into past and upcoming.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// WithPublisher enables domain events.
func WithPublisher(p EventPublisher) Option {
	return func(d *Directory) { d.events = p }
}

// WithLogger sets the logger used for best-effort failures.
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Directory) { d.log = l }
}

// NewDirectory builds a Directory over store.
func NewDirectory(store *repository.Store, opts ...Option) *Directory {
	d := &Directory{
		store: store,
		now:   time.Now,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Ping reports whether the store is reachable.
func (d *Directory) Ping(ctx context.Context) error {
	return d.store.Ping(ctx)
}

func formatStart(t time.Time) string {
	return t.UTC().Format(startTimeLayout)
}

func countUpcoming(starts []time.Time, now time.Time) int {
	n := 0
	for _, t := range starts {
		if t.After(now) {
			n++
		}
	}
	return n
}
