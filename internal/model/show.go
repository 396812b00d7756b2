package model

import "time"

// StartTimeLayout is the layout used wherever a show's start time is
// rendered as plain text in a view-model.
const StartTimeLayout = "2006/01/02, 15:04:05"

// Show is one booking of an artist at a venue.  It is the join entity of the
// venue/artist many-to-many relation and carries its own identity.
//
// Fields:
//
//	ID        primary key identifier
//	ArtistID  artist performing (artists.id, required)
//	VenueID   venue hosting the show (venues.id, required)
//	StartTime when the show begins, stored in UTC
type Show struct {
	ID        int64     `db:"id" json:"id"`
	ArtistID  int64     `db:"artist_id" json:"artist_id"`
	VenueID   int64     `db:"venue_id" json:"venue_id"`
	StartTime time.Time `db:"start_time" json:"start_time"`
}

// IsUpcoming reports whether the show starts strictly after now.  A show
// starting exactly at now counts as past.
func (s Show) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}
