package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/database"
)

// Store is the persistence gateway.  Reads go straight to the pool; every
// write should run inside WithTx.
type Store struct {
	db      *sqlx.DB
	dialect database.Dialect
}

// NewStore wraps an open connection pool.
func NewStore(db *sqlx.DB, dialect database.Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// Venues returns a venue repository bound to the pool.
func (s *Store) Venues() *VenueRepo { return &VenueRepo{q: s.db, dialect: s.dialect} }

// Artists returns an artist repository bound to the pool.
func (s *Store) Artists() *ArtistRepo { return &ArtistRepo{q: s.db, dialect: s.dialect} }

// Shows returns a show repository bound to the pool.
func (s *Store) Shows() *ShowRepo { return &ShowRepo{q: s.db, dialect: s.dialect} }

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Ref is the id+name projection used by listings and form pickers.
type Ref struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Tx exposes repositories bound to a single transaction.
type Tx struct {
	tx      *sqlx.Tx
	dialect database.Dialect
}

func (t *Tx) Venues() *VenueRepo   { return &VenueRepo{q: t.tx, dialect: t.dialect} }
func (t *Tx) Artists() *ArtistRepo { return &ArtistRepo{q: t.tx, dialect: t.dialect} }
func (t *Tx) Shows() *ShowRepo     { return &ShowRepo{q: t.tx, dialect: t.dialect} }

// WithTx runs fn inside a transaction.  The transaction is committed when fn
// returns nil and rolled back when fn returns an error or panics, so nothing
// written inside a failed fn is visible afterwards.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Tx) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback tx: %w", rbErr))
			}
		}
	}()
	if err = fn(&Tx{tx: tx, dialect: s.dialect}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// insert executes an INSERT and returns the generated id.  PostgreSQL has no
// LastInsertId so the id is read back with RETURNING.
func insert(ctx context.Context, q sqlx.ExtContext, d database.Dialect, query string, args ...any) (int64, error) {
	query = q.Rebind(query)
	if d.UsesReturning() {
		var id int64
		if err := q.QueryRowxContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// execAffecting runs a statement and reports sql.ErrNoRows when it touched nothing.
func execAffecting(ctx context.Context, q sqlx.ExtContext, query string, args ...any) error {
	res, err := q.ExecContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a LIKE pattern (escape character '!') matching any
// value that contains term, compared in lower case.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

func count(ctx context.Context, q sqlx.ExtContext, table string) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, q, &n, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, err
	}
	return n, nil
}
