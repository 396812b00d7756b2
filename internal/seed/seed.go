// Package seed lists a handful of sample venues, artists and shows so a fresh
// development database has something to browse.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/service"
)

var venues = []model.Venue{
	{
		Name:               "The Musical Hop",
		Address:            "1015 Folsom Street",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "123-123-1234",
		Genres:             model.Genres{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		WebsiteLink:        "https://www.themusicalhop.com",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
	},
	{
		Name:         "The Dueling Pianos Bar",
		Address:      "335 Delancey Street",
		City:         "New York",
		State:        "NY",
		Phone:        "914-003-1132",
		Genres:       model.Genres{"Classical", "R&B", "Hip-Hop"},
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=400",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		WebsiteLink:  "https://www.theduelingpianos.com",
	},
	{
		Name:         "Park Square Live Music & Coffee",
		Address:      "34 Whiskey Moore Ave",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "415-000-1234",
		Genres:       model.Genres{"Rock n Roll", "Jazz", "Classical", "Folk"},
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=400",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
	},
}

var artists = []model.Artist{
	{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             model.Genres{"Rock n Roll"},
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		WebsiteLink:        "https://www.gunsnpetalsband.com",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	},
	{
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		Genres:       model.Genres{"Jazz"},
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
	},
	{
		Name:      "The Wild Sax Band",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		Genres:    model.Genres{"Jazz", "Classical"},
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
	},
}

// shows pairs indexes into artists and venues with a start time.
var shows = []struct {
	artist, venue int
	at            time.Time
}{
	{0, 0, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{1, 2, time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{2, 2, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{2, 2, time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{2, 2, time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}

// Run lists the sample data unless the directory already has listings.
// It reports whether anything was written.
func Run(ctx context.Context, dir *service.Directory, log logrus.FieldLogger) (bool, error) {
	empty, err := dir.IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		log.Debug("seed: directory not empty, skipping")
		return false, nil
	}

	venueIDs := make([]int64, len(venues))
	for i := range venues {
		v := venues[i]
		if err := dir.CreateVenue(ctx, &v); err != nil {
			return false, fmt.Errorf("seed venue %q: %w", v.Name, err)
		}
		venueIDs[i] = v.ID
	}
	artistIDs := make([]int64, len(artists))
	for i := range artists {
		a := artists[i]
		if err := dir.CreateArtist(ctx, &a); err != nil {
			return false, fmt.Errorf("seed artist %q: %w", a.Name, err)
		}
		artistIDs[i] = a.ID
	}
	for _, s := range shows {
		show := &model.Show{ArtistID: artistIDs[s.artist], VenueID: venueIDs[s.venue], StartTime: s.at}
		if err := dir.CreateShow(ctx, show); err != nil {
			return false, fmt.Errorf("seed show: %w", err)
		}
	}
	log.WithFields(logrus.Fields{
		"venues":  len(venues),
		"artists": len(artists),
		"shows":   len(shows),
	}).Info("seeded sample data")
	return true, nil
}
