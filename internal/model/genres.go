package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Genres is the list of genre labels attached to a venue or an artist.  It is
// persisted as a JSON array in a text column so that the same schema works on
// MySQL, PostgreSQL and SQLite.
type Genres []string

// Value implements driver.Valuer.  A nil list is stored as "[]" because the
// genres column is NOT NULL.
func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(g))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (g *Genres) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*g = Genres{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("genres: unsupported source type %T", src)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		*g = Genres{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("genres: %w", err)
	}
	*g = Genres(out)
	return nil
}

// Normalize trims every label, drops empty ones and removes duplicates while
// keeping the submitted order.
func (g Genres) Normalize() Genres {
	out := make(Genres, 0, len(g))
	seen := make(map[string]bool, len(g))
	for _, s := range g {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
