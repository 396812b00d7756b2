package service

import (
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/repository"
)

const startTimeLayout = model.StartTimeLayout

// Area groups the venues of one city.
type Area struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []AreaVenue `json:"venues"`
}

// AreaVenue is a venue entry of an Area.
type AreaVenue struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueShow is a show on a venue page, described by its artist.
type VenueShow struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueDetail is the venue page view-model.
type VenueDetail struct {
	model.Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// ArtistShow is a show on an artist page, described by its venue.
type ArtistShow struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistDetail is the artist page view-model.
type ArtistDetail struct {
	model.Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ShowItem is one row of the global shows listing.
type ShowItem struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueHit is a venue search result.
type VenueHit struct {
	model.Venue
	NumUpcomingShows int `json:"num_upcoming_shows"`
}

// ArtistHit is an artist search result.
type ArtistHit struct {
	model.Artist
	NumUpcomingShows int `json:"num_upcoming_shows"`
}

// SearchResult is the outcome of a name search.
type SearchResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

// ShowFormOptions lists the artists and venues a show can be booked with.
type ShowFormOptions struct {
	Artists []repository.Ref `json:"artists"`
	Venues  []repository.Ref `json:"venues"`
}
