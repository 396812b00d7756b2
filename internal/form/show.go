package form

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/iliyamo/fyyur/internal/model"
)

// startTimeLayouts are tried in order; times without a zone are taken as UTC.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// Show is the posted show form.
type Show struct {
	ArtistID  string `json:"artist_id"`
	VenueID   string `json:"venue_id"`
	StartTime string `json:"start_time"`
}

// ParseShow reads a show form from posted values.
func ParseShow(values url.Values) *Show {
	f := fields(values)
	return &Show{
		ArtistID:  f.str("artist_id"),
		VenueID:   f.str("venue_id"),
		StartTime: f.str("start_time"),
	}
}

var errBadID = errors.New("must be a positive integer")

func positiveID(v any) error {
	s, _ := v.(string)
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err != nil || n <= 0 {
		return errBadID
	}
	return nil
}

func startTime(v any) error {
	s, _ := v.(string)
	if s == "" {
		return nil
	}
	if _, err := parseStartTime(s); err != nil {
		return errors.New("must look like 2006-01-02 15:04:05")
	}
	return nil
}

func parseStartTime(s string) (time.Time, error) {
	var err error
	for _, layout := range startTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

func (f *Show) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.ArtistID, validation.Required, validation.By(positiveID)),
		validation.Field(&f.VenueID, validation.Required, validation.By(positiveID)),
		validation.Field(&f.StartTime, validation.Required, validation.By(startTime)),
	)
}

// Model converts a validated form into a show.
func (f *Show) Model() (*model.Show, error) {
	artistID, err := strconv.ParseInt(f.ArtistID, 10, 64)
	if err != nil {
		return nil, err
	}
	venueID, err := strconv.ParseInt(f.VenueID, 10, 64)
	if err != nil {
		return nil, err
	}
	at, err := parseStartTime(f.StartTime)
	if err != nil {
		return nil, err
	}
	return &model.Show{ArtistID: artistID, VenueID: venueID, StartTime: at}, nil
}
