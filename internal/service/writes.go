package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/monitoring"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

const publishTimeout = 3 * time.Second

// CreateVenue persists v and sets its ID.  Nothing is written on failure.
func (d *Directory) CreateVenue(ctx context.Context, v *model.Venue) (err error) {
	defer func() { monitoring.ObserveWrite("venue", "create", err) }()
	v.Genres = v.Genres.Normalize()
	err = d.store.WithTx(ctx, func(tx *repository.Tx) error {
		return tx.Venues().Create(ctx, v)
	})
	if err != nil {
		return fmt.Errorf("create venue: %w", err)
	}
	d.publishListing(ctx, "venue", v.ID, v.Name, v.City, v.State)
	return nil
}

// UpdateVenue applies patch to the venue with the given id.  Fields left nil
// in patch keep their stored values.
func (d *Directory) UpdateVenue(ctx context.Context, id int64, patch model.VenuePatch) (_ *model.Venue, err error) {
	defer func() { monitoring.ObserveWrite("venue", "update", err) }()
	var updated *model.Venue
	err = d.store.WithTx(ctx, func(tx *repository.Tx) error {
		v, err := tx.Venues().GetByID(ctx, id)
		if err != nil {
			return err
		}
		patch.Apply(v)
		v.Genres = v.Genres.Normalize()
		if err := tx.Venues().Update(ctx, v); err != nil {
			return err
		}
		updated = v
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update venue %d: %w", id, err)
	}
	return updated, nil
}

// DeleteVenue removes a venue together with the shows it hosts.
func (d *Directory) DeleteVenue(ctx context.Context, id int64) (err error) {
	defer func() { monitoring.ObserveWrite("venue", "delete", err) }()
	err = d.store.WithTx(ctx, func(tx *repository.Tx) error {
		if _, err := tx.Venues().GetByID(ctx, id); err != nil {
			return err
		}
		if _, err := tx.Shows().DeleteByVenue(ctx, id); err != nil {
			return err
		}
		return tx.Venues().Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete venue %d: %w", id, err)
	}
	return nil
}

// CreateArtist persists a and sets its ID.
func (d *Directory) CreateArtist(ctx context.Context, a *model.Artist) (err error) {
	defer func() { monitoring.ObserveWrite("artist", "create", err) }()
	a.Genres = a.Genres.Normalize()
	err = d.store.WithTx(ctx, func(tx *repository.Tx) error {
		return tx.Artists().Create(ctx, a)
	})
	if err != nil {
		return fmt.Errorf("create artist: %w", err)
	}
	d.publishListing(ctx, "artist", a.ID, a.Name, a.City, a.State)
	return nil
}

// UpdateArtist applies patch to the artist with the given id.
func (d *Directory) UpdateArtist(ctx context.Context, id int64, patch model.ArtistPatch) (_ *model.Artist, err error) {
	defer func() { monitoring.ObserveWrite("artist", "update", err) }()
	var updated *model.Artist
	err = d.store.WithTx(ctx, func(tx *repository.Tx) error {
		a, err := tx.Artists().GetByID(ctx, id)
		if err != nil {
			return err
		}
		patch.Apply(a)
		a.Genres = a.Genres.Normalize()
		if err := tx.Artists().Update(ctx, a); err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update artist %d: %w", id, err)
	}
	return updated, nil
}

// CreateShow books s.  The artist and the venue must exist; otherwise
// repository.ErrArtistNotFound or repository.ErrVenueNotFound is returned and
// nothing is written.
func (d *Directory) CreateShow(ctx context.Context, s *model.Show) (err error) {
	defer func() { monitoring.ObserveWrite("show", "create", err) }()
	var artist *model.Artist
	var venue *model.Venue
	err = d.store.WithTx(ctx, func(tx *repository.Tx) error {
		var err error
		if artist, err = tx.Artists().GetByID(ctx, s.ArtistID); err != nil {
			return err
		}
		if venue, err = tx.Venues().GetByID(ctx, s.VenueID); err != nil {
			return err
		}
		return tx.Shows().Create(ctx, s)
	})
	if err != nil {
		return fmt.Errorf("create show: %w", err)
	}

	if d.events != nil {
		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		ev := queue.ShowBookedEvent{
			ShowID:     s.ID,
			VenueID:    venue.ID,
			VenueName:  venue.Name,
			ArtistID:   artist.ID,
			ArtistName: artist.Name,
			StartTime:  formatStart(s.StartTime),
			BookedAt:   d.now().UTC().Format(time.RFC3339),
		}
		if perr := d.events.PublishShowBooked(pubCtx, ev); perr != nil {
			d.log.WithError(perr).WithField("show_id", s.ID).Warn("publish show.booked failed")
		}
	}
	return nil
}

// publishListing is best effort: the listing is already committed.
func (d *Directory) publishListing(ctx context.Context, kind string, id int64, name, city, state string) {
	if d.events == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	ev := queue.ListingCreatedEvent{
		Kind:      kind,
		ID:        id,
		Name:      name,
		City:      city,
		State:     state,
		CreatedAt: d.now().UTC().Format(time.RFC3339),
	}
	if err := d.events.PublishListingCreated(pubCtx, ev); err != nil {
		d.log.WithError(err).WithFields(logrus.Fields{"kind": kind, "id": id}).Warn("publish listing.created failed")
	}
}
