// Package queue defines message payloads exchanged over the message broker
// and the publisher that sends them.
package queue

const (
	// ShowBookedQueue receives a ShowBookedEvent for every new show.
	ShowBookedQueue = "show.booked"
	// ListingCreatedQueue receives a ListingCreatedEvent for every new venue or artist.
	ListingCreatedQueue = "listing.created"
)

// ShowBookedEvent is published when a show has been committed.  It carries
// the venue and artist names so consumers do not need to query the database.
type ShowBookedEvent struct {
	ShowID     int64  `json:"show_id"`
	VenueID    int64  `json:"venue_id"`
	VenueName  string `json:"venue_name"`
	ArtistID   int64  `json:"artist_id"`
	ArtistName string `json:"artist_name"`
	StartTime  string `json:"start_time"`
	BookedAt   string `json:"booked_at"`
}

// ListingCreatedEvent is published when a venue or an artist is listed.
// Kind is either "venue" or "artist".
type ListingCreatedEvent struct {
	Kind      string `json:"kind"`
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at"`
}
