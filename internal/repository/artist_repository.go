package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/model"
)

const artistColumns = `id, name, city, state, phone, genres, image_link,
	facebook_link, website_link, seeking_venue, seeking_description`

// ArtistRepo encapsulates all queries on the artists table.
type ArtistRepo struct {
	q       sqlx.ExtContext
	dialect database.Dialect
}

// Create inserts a new artist and sets its generated ID.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	const q = `INSERT INTO artists (name, city, state, phone, genres, image_link,
		facebook_link, website_link, seeking_venue, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	id, err := insert(ctx, r.q, r.dialect, q,
		a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
		a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

// GetByID fetches an artist by id or returns ErrArtistNotFound.
func (r *ArtistRepo) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	var a model.Artist
	err := sqlx.GetContext(ctx, r.q, &a, r.q.Rebind(`SELECT `+artistColumns+` FROM artists WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListRefs returns the id and name of every artist ordered by id.
func (r *ArtistRepo) ListRefs(ctx context.Context) ([]Ref, error) {
	out := []Ref{}
	if err := sqlx.SelectContext(ctx, r.q, &out, `SELECT id, name FROM artists ORDER BY id`); err != nil {
		return nil, err
	}
	return out, nil
}

// Search returns the artists whose name contains term, ignoring case.
func (r *ArtistRepo) Search(ctx context.Context, term string) ([]model.Artist, error) {
	out := []model.Artist{}
	q := r.q.Rebind(`SELECT ` + artistColumns + ` FROM artists
		WHERE ` + r.dialect.Lower() + `(name) LIKE ? ESCAPE '!' ORDER BY id`)
	if err := sqlx.SelectContext(ctx, r.q, &out, q, containsPattern(term)); err != nil {
		return nil, err
	}
	return out, nil
}

// Update writes every column of a to the row with a.ID.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const q = `UPDATE artists
		SET name = ?, city = ?, state = ?, phone = ?, genres = ?, image_link = ?,
		    facebook_link = ?, website_link = ?, seeking_venue = ?, seeking_description = ?
		WHERE id = ?`
	err := execAffecting(ctx, r.q, q,
		a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
		a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription, a.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrArtistNotFound
	}
	return err
}

// Count returns the number of artists.
func (r *ArtistRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "artists")
}
