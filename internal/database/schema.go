package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		address VARCHAR(120) NOT NULL,
		city VARCHAR(120) NOT NULL,
		state VARCHAR(120) NOT NULL,
		phone VARCHAR(120) NOT NULL DEFAULT '',
		genres TEXT NOT NULL,
		image_link VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link VARCHAR(120) NOT NULL DEFAULT '',
		website_link VARCHAR(120) NOT NULL DEFAULT '',
		seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT ''
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS artists (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		city VARCHAR(120) NOT NULL,
		state VARCHAR(120) NOT NULL,
		phone VARCHAR(120) NOT NULL DEFAULT '',
		genres TEXT NOT NULL,
		image_link VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link VARCHAR(120) NOT NULL DEFAULT '',
		website_link VARCHAR(120) NOT NULL DEFAULT '',
		seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT ''
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS shows (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		artist_id BIGINT NOT NULL,
		venue_id BIGINT NOT NULL,
		start_time DATETIME NOT NULL,
		KEY idx_shows_venue (venue_id),
		KEY idx_shows_artist (artist_id),
		CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id),
		CONSTRAINT fk_shows_venue FOREIGN KEY (venue_id) REFERENCES venues (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		address VARCHAR(120) NOT NULL,
		city VARCHAR(120) NOT NULL,
		state VARCHAR(120) NOT NULL,
		phone VARCHAR(120) NOT NULL DEFAULT '',
		genres TEXT NOT NULL,
		image_link VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link VARCHAR(120) NOT NULL DEFAULT '',
		website_link VARCHAR(120) NOT NULL DEFAULT '',
		seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS artists (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		city VARCHAR(120) NOT NULL,
		state VARCHAR(120) NOT NULL,
		phone VARCHAR(120) NOT NULL DEFAULT '',
		genres TEXT NOT NULL,
		image_link VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link VARCHAR(120) NOT NULL DEFAULT '',
		website_link VARCHAR(120) NOT NULL DEFAULT '',
		seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS shows (
		id BIGSERIAL PRIMARY KEY,
		artist_id BIGINT NOT NULL REFERENCES artists (id),
		venue_id BIGINT NOT NULL REFERENCES venues (id),
		start_time TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_venue ON shows (venue_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_artist ON shows (artist_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		genres TEXT NOT NULL,
		image_link TEXT NOT NULL DEFAULT '',
		facebook_link TEXT NOT NULL DEFAULT '',
		website_link TEXT NOT NULL DEFAULT '',
		seeking_talent BOOLEAN NOT NULL DEFAULT 0,
		seeking_description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS artists (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		genres TEXT NOT NULL,
		image_link TEXT NOT NULL DEFAULT '',
		facebook_link TEXT NOT NULL DEFAULT '',
		website_link TEXT NOT NULL DEFAULT '',
		seeking_venue BOOLEAN NOT NULL DEFAULT 0,
		seeking_description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS shows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		artist_id INTEGER NOT NULL REFERENCES artists (id),
		venue_id INTEGER NOT NULL REFERENCES venues (id),
		start_time DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_venue ON shows (venue_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_artist ON shows (artist_id)`,
}

// Schema returns the DDL statements for the dialect, in dependency order.
func Schema(d Dialect) []string {
	switch d {
	case Postgres:
		return postgresSchema
	case SQLite:
		return sqliteSchema
	default:
		return mysqlSchema
	}
}

// Migrate creates the venues, artists and shows tables when they are missing.
func Migrate(ctx context.Context, db *sqlx.DB, d Dialect) error {
	for _, stmt := range Schema(d) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
