// Package repository contains data access logic separated from HTTP handlers.
// This file defines the repository methods for venues.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/model"
)

const venueColumns = `id, name, address, city, state, phone, genres, image_link,
	facebook_link, website_link, seeking_talent, seeking_description`

// VenueRepo encapsulates all queries on the venues table.  It runs either on
// the pool or inside a transaction depending on how it was obtained.
type VenueRepo struct {
	q       sqlx.ExtContext
	dialect database.Dialect
}

// Create inserts a new venue.  On success the venue's ID field is populated
// with the generated value.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (name, address, city, state, phone, genres, image_link,
		facebook_link, website_link, seeking_talent, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	id, err := insert(ctx, r.q, r.dialect, q,
		v.Name, v.Address, v.City, v.State, v.Phone, v.Genres, v.ImageLink,
		v.FacebookLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return err
	}
	v.ID = id
	return nil
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no row
// is found.
func (r *VenueRepo) GetByID(ctx context.Context, id int64) (*model.Venue, error) {
	var v model.Venue
	err := sqlx.GetContext(ctx, r.q, &v, r.q.Rebind(`SELECT `+venueColumns+` FROM venues WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// List returns every venue ordered by id.
func (r *VenueRepo) List(ctx context.Context) ([]model.Venue, error) {
	out := []model.Venue{}
	if err := sqlx.SelectContext(ctx, r.q, &out, `SELECT `+venueColumns+` FROM venues ORDER BY id`); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRefs returns the id and name of every venue ordered by id.
func (r *VenueRepo) ListRefs(ctx context.Context) ([]Ref, error) {
	out := []Ref{}
	if err := sqlx.SelectContext(ctx, r.q, &out, `SELECT id, name FROM venues ORDER BY id`); err != nil {
		return nil, err
	}
	return out, nil
}

// Search returns the venues whose name contains term, ignoring case.  An
// empty term matches every venue.
func (r *VenueRepo) Search(ctx context.Context, term string) ([]model.Venue, error) {
	out := []model.Venue{}
	q := r.q.Rebind(`SELECT ` + venueColumns + ` FROM venues
		WHERE ` + r.dialect.Lower() + `(name) LIKE ? ESCAPE '!' ORDER BY id`)
	if err := sqlx.SelectContext(ctx, r.q, &out, q, containsPattern(term)); err != nil {
		return nil, err
	}
	return out, nil
}

// Update writes every column of v to the row with v.ID.  It returns
// ErrVenueNotFound when no such row exists.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues
		SET name = ?, address = ?, city = ?, state = ?, phone = ?, genres = ?, image_link = ?,
		    facebook_link = ?, website_link = ?, seeking_talent = ?, seeking_description = ?
		WHERE id = ?`
	err := execAffecting(ctx, r.q, q,
		v.Name, v.Address, v.City, v.State, v.Phone, v.Genres, v.ImageLink,
		v.FacebookLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription, v.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrVenueNotFound
	}
	return err
}

// Delete removes the venue row.  Shows referencing it must be removed first
// (see ShowRepo.DeleteByVenue); the foreign key rejects the delete otherwise.
func (r *VenueRepo) Delete(ctx context.Context, id int64) error {
	err := execAffecting(ctx, r.q, `DELETE FROM venues WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrVenueNotFound
	}
	return err
}

// Count returns the number of venues.
func (r *VenueRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "venues")
}
