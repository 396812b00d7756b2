// Package repository contains data access logic for Show domain operations.
// A Show is one booking of an artist at a venue; the joined projections in
// this file feed the detail pages and the global shows listing.
package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/model"
)

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	q       sqlx.ExtContext
	dialect database.Dialect
}

// ShowWithArtist is a show of a venue joined with its artist.
type ShowWithArtist struct {
	ShowID          int64     `db:"show_id"`
	StartTime       time.Time `db:"start_time"`
	ArtistID        int64     `db:"artist_id"`
	ArtistName      string    `db:"artist_name"`
	ArtistImageLink string    `db:"artist_image_link"`
}

// ShowWithVenue is a show of an artist joined with its venue.
type ShowWithVenue struct {
	ShowID         int64     `db:"show_id"`
	StartTime      time.Time `db:"start_time"`
	VenueID        int64     `db:"venue_id"`
	VenueName      string    `db:"venue_name"`
	VenueImageLink string    `db:"venue_image_link"`
}

// ShowListing is a show joined with both its venue and its artist.
type ShowListing struct {
	ShowID          int64     `db:"show_id"`
	StartTime       time.Time `db:"start_time"`
	VenueID         int64     `db:"venue_id"`
	VenueName       string    `db:"venue_name"`
	ArtistID        int64     `db:"artist_id"`
	ArtistName      string    `db:"artist_name"`
	ArtistImageLink string    `db:"artist_image_link"`
}

// Create inserts a new show and assigns the generated ID.  The foreign keys
// reject unknown artist or venue ids.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`
	s.StartTime = s.StartTime.UTC()
	id, err := insert(ctx, r.q, r.dialect, q, s.ArtistID, s.VenueID, s.StartTime)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// ListForVenue returns the shows hosted by a venue together with their artist,
// in insertion order.
func (r *ShowRepo) ListForVenue(ctx context.Context, venueID int64) ([]ShowWithArtist, error) {
	const q = `SELECT s.id AS show_id, s.start_time, a.id AS artist_id, a.name AS artist_name,
		a.image_link AS artist_image_link
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = ?
		ORDER BY s.id`
	out := []ShowWithArtist{}
	if err := sqlx.SelectContext(ctx, r.q, &out, r.q.Rebind(q), venueID); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].StartTime = out[i].StartTime.UTC()
	}
	return out, nil
}

// ListForArtist returns the shows of an artist together with their venue, in
// insertion order.
func (r *ShowRepo) ListForArtist(ctx context.Context, artistID int64) ([]ShowWithVenue, error) {
	const q = `SELECT s.id AS show_id, s.start_time, v.id AS venue_id, v.name AS venue_name,
		v.image_link AS venue_image_link
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = ?
		ORDER BY s.id`
	out := []ShowWithVenue{}
	if err := sqlx.SelectContext(ctx, r.q, &out, r.q.Rebind(q), artistID); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].StartTime = out[i].StartTime.UTC()
	}
	return out, nil
}

// ListJoined returns every show joined with its venue and artist, ordered by
// venue id.  There is no time filter.
func (r *ShowRepo) ListJoined(ctx context.Context) ([]ShowListing, error) {
	const q = `SELECT s.id AS show_id, s.start_time,
		v.id AS venue_id, v.name AS venue_name,
		a.id AS artist_id, a.name AS artist_name, a.image_link AS artist_image_link
		FROM shows s
		JOIN venues v  ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY v.id, s.id`
	out := []ShowListing{}
	if err := sqlx.SelectContext(ctx, r.q, &out, q); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].StartTime = out[i].StartTime.UTC()
	}
	return out, nil
}

// StartTimesByVenue returns the start times of the given venues' shows keyed
// by venue id.
func (r *ShowRepo) StartTimesByVenue(ctx context.Context, venueIDs ...int64) (map[int64][]time.Time, error) {
	return r.startTimesBy(ctx, "venue_id", venueIDs)
}

// StartTimesByArtist returns the start times of the given artists' shows
// keyed by artist id.
func (r *ShowRepo) StartTimesByArtist(ctx context.Context, artistIDs ...int64) (map[int64][]time.Time, error) {
	return r.startTimesBy(ctx, "artist_id", artistIDs)
}

// startTimesBy groups show start times by one of the foreign key columns,
// reading only the rows owned by ids.  column is never user input.
func (r *ShowRepo) startTimesBy(ctx context.Context, column string, ids []int64) (map[int64][]time.Time, error) {
	out := make(map[int64][]time.Time)
	if len(ids) == 0 {
		return out, nil
	}
	q, args, err := sqlx.In(`SELECT `+column+` AS owner_id, start_time FROM shows
		WHERE `+column+` IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		OwnerID   int64     `db:"owner_id"`
		StartTime time.Time `db:"start_time"`
	}
	if err := sqlx.SelectContext(ctx, r.q, &rows, r.q.Rebind(q), args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.OwnerID] = append(out[row.OwnerID], row.StartTime.UTC())
	}
	return out, nil
}

// DeleteByVenue removes every show hosted by the venue and returns how many
// rows were deleted.
func (r *ShowRepo) DeleteByVenue(ctx context.Context, venueID int64) (int64, error) {
	res, err := r.q.ExecContext(ctx, r.q.Rebind(`DELETE FROM shows WHERE venue_id = ?`), venueID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Count returns the number of shows.
func (r *ShowRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "shows")
}
