package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/repository"
)

// VenueAreas groups every venue by city.  Cities appear in the order their
// first venue is found (venues are read by ascending id).  When venues of one
// city disagree on the state, the venue read last decides the area's state.
func (d *Directory) VenueAreas(ctx context.Context) ([]Area, error) {
	venues, err := d.store.Venues().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	starts, err := d.store.Shows().StartTimesByVenue(ctx, venueIDs(venues)...)
	if err != nil {
		return nil, fmt.Errorf("list show times: %w", err)
	}
	now := d.now()

	areas := []Area{}
	byCity := make(map[string]int)
	for _, v := range venues {
		i, ok := byCity[v.City]
		if !ok {
			i = len(areas)
			byCity[v.City] = i
			areas = append(areas, Area{City: v.City, Venues: []AreaVenue{}})
		}
		areas[i].State = v.State
		areas[i].Venues = append(areas[i].Venues, AreaVenue{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: countUpcoming(starts[v.ID], now),
		})
	}
	return areas, nil
}

// VenueDetail loads a venue with its shows split into past and upcoming.
// It returns repository.ErrVenueNotFound for an unknown id.
func (d *Directory) VenueDetail(ctx context.Context, id int64) (*VenueDetail, error) {
	v, err := d.store.Venues().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venue %d: %w", id, err)
	}
	rows, err := d.store.Shows().ListForVenue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("shows of venue %d: %w", id, err)
	}
	now := d.now()

	out := &VenueDetail{Venue: *v, PastShows: []VenueShow{}, UpcomingShows: []VenueShow{}}
	for _, row := range rows {
		item := VenueShow{
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink,
			StartTime:       formatStart(row.StartTime),
		}
		if row.StartTime.After(now) {
			out.UpcomingShows = append(out.UpcomingShows, item)
		} else {
			out.PastShows = append(out.PastShows, item)
		}
	}
	out.PastShowsCount = len(out.PastShows)
	out.UpcomingShowsCount = len(out.UpcomingShows)
	return out, nil
}

// ArtistDetail loads an artist with its shows split into past and upcoming.
// It returns repository.ErrArtistNotFound for an unknown id.
func (d *Directory) ArtistDetail(ctx context.Context, id int64) (*ArtistDetail, error) {
	a, err := d.store.Artists().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("artist %d: %w", id, err)
	}
	rows, err := d.store.Shows().ListForArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("shows of artist %d: %w", id, err)
	}
	now := d.now()

	out := &ArtistDetail{Artist: *a, PastShows: []ArtistShow{}, UpcomingShows: []ArtistShow{}}
	for _, row := range rows {
		item := ArtistShow{
			VenueID:        row.VenueID,
			VenueName:      row.VenueName,
			VenueImageLink: row.VenueImageLink,
			StartTime:      formatStart(row.StartTime),
		}
		if row.StartTime.After(now) {
			out.UpcomingShows = append(out.UpcomingShows, item)
		} else {
			out.PastShows = append(out.PastShows, item)
		}
	}
	out.PastShowsCount = len(out.PastShows)
	out.UpcomingShowsCount = len(out.UpcomingShows)
	return out, nil
}

// Shows lists every show, past and upcoming, ordered by venue id.
func (d *Directory) Shows(ctx context.Context) ([]ShowItem, error) {
	rows, err := d.store.Shows().ListJoined(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	out := make([]ShowItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, ShowItem{
			VenueID:         row.VenueID,
			VenueName:       row.VenueName,
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink,
			StartTime:       formatStart(row.StartTime),
		})
	}
	return out, nil
}

// Artists returns the id and name of every artist.
func (d *Directory) Artists(ctx context.Context) ([]repository.Ref, error) {
	refs, err := d.store.Artists().ListRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return refs, nil
}

// SearchVenues matches term against venue names, ignoring case.  An empty
// term returns every venue.
func (d *Directory) SearchVenues(ctx context.Context, term string) (SearchResult[VenueHit], error) {
	venues, err := d.store.Venues().Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return SearchResult[VenueHit]{}, fmt.Errorf("search venues: %w", err)
	}
	starts, err := d.store.Shows().StartTimesByVenue(ctx, venueIDs(venues)...)
	if err != nil {
		return SearchResult[VenueHit]{}, fmt.Errorf("list show times: %w", err)
	}
	now := d.now()
	hits := make([]VenueHit, 0, len(venues))
	for _, v := range venues {
		hits = append(hits, VenueHit{Venue: v, NumUpcomingShows: countUpcoming(starts[v.ID], now)})
	}
	return SearchResult[VenueHit]{Count: len(hits), Data: hits}, nil
}

// SearchArtists matches term against artist names, ignoring case.
func (d *Directory) SearchArtists(ctx context.Context, term string) (SearchResult[ArtistHit], error) {
	artists, err := d.store.Artists().Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return SearchResult[ArtistHit]{}, fmt.Errorf("search artists: %w", err)
	}
	starts, err := d.store.Shows().StartTimesByArtist(ctx, artistIDs(artists)...)
	if err != nil {
		return SearchResult[ArtistHit]{}, fmt.Errorf("list show times: %w", err)
	}
	now := d.now()
	hits := make([]ArtistHit, 0, len(artists))
	for _, a := range artists {
		hits = append(hits, ArtistHit{Artist: a, NumUpcomingShows: countUpcoming(starts[a.ID], now)})
	}
	return SearchResult[ArtistHit]{Count: len(hits), Data: hits}, nil
}

// Venue loads a venue for form pre-population.
func (d *Directory) Venue(ctx context.Context, id int64) (*model.Venue, error) {
	return d.store.Venues().GetByID(ctx, id)
}

// Artist loads an artist for form pre-population.
func (d *Directory) Artist(ctx context.Context, id int64) (*model.Artist, error) {
	return d.store.Artists().GetByID(ctx, id)
}

// ShowFormOptions returns the artists and venues offered by the new show form.
func (d *Directory) ShowFormOptions(ctx context.Context) (ShowFormOptions, error) {
	artists, err := d.store.Artists().ListRefs(ctx)
	if err != nil {
		return ShowFormOptions{}, fmt.Errorf("list artists: %w", err)
	}
	venues, err := d.store.Venues().ListRefs(ctx)
	if err != nil {
		return ShowFormOptions{}, fmt.Errorf("list venues: %w", err)
	}
	return ShowFormOptions{Artists: artists, Venues: venues}, nil
}

// IsEmpty reports whether no venue and no artist has been listed yet.
func (d *Directory) IsEmpty(ctx context.Context) (bool, error) {
	venues, err := d.store.Venues().Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count venues: %w", err)
	}
	artists, err := d.store.Artists().Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count artists: %w", err)
	}
	return venues == 0 && artists == 0, nil
}

func venueIDs(venues []model.Venue) []int64 {
	ids := make([]int64, len(venues))
	for i, v := range venues {
		ids[i] = v.ID
	}
	return ids
}

func artistIDs(artists []model.Artist) []int64 {
	ids := make([]int64, len(artists))
	for i, a := range artists {
		ids[i] = a.ID
	}
	return ids
}
