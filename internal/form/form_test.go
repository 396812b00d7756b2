package form

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/model"
)

func venueValues() url.Values {
	return url.Values{
		"name":           {" The Musical Hop "},
		"address":        {"1015 Folsom Street"},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"phone":          {"123-123-1234"},
		"genres":         {"Jazz", "Reggae", "Jazz"},
		"facebook_link":  {"https://www.facebook.com/TheMusicalHop"},
		"seeking_talent": {"false", "y"},
	}
}

func TestVenueFormCreate(t *testing.T) {
	f := ParseVenue(venueValues())
	require.NoError(t, f.Validate())

	v := f.Model()
	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, model.Genres{"Jazz", "Reggae"}, v.Genres)
	assert.True(t, v.SeekingTalent)
	assert.Equal(t, "https://www.facebook.com/TheMusicalHop", v.FacebookLink)
}

func TestVenueFormMissingFields(t *testing.T) {
	vals := venueValues()
	vals.Del("city")
	vals.Del("genres")
	vals.Set("website_link", "not a url")

	err := ParseVenue(vals).Validate()
	require.Error(t, err)
	assert.True(t, IsInvalid(err))
	errs := Errors(err)
	assert.Contains(t, errs, "city")
	assert.Contains(t, errs, "genres")
	assert.Contains(t, errs, "website_link")
	assert.NotContains(t, errs, "name")
}

func TestVenueFormPatchOnlyPostedFields(t *testing.T) {
	f := ParseVenue(url.Values{"phone": {"555-0000"}, "seeking_talent": {"false"}})
	require.NoError(t, f.ValidatePatch())

	p := f.Patch()
	require.NotNil(t, p.Phone)
	assert.Equal(t, "555-0000", *p.Phone)
	require.NotNil(t, p.SeekingTalent)
	assert.False(t, *p.SeekingTalent)
	assert.Nil(t, p.Name)
	assert.Nil(t, p.Genres)
	assert.Nil(t, p.Address)
}

func TestVenueFormPatchRejectsBlankRequired(t *testing.T) {
	err := ParseVenue(url.Values{"name": {"  "}}).ValidatePatch()
	require.Error(t, err)
	assert.Contains(t, Errors(err), "name")
}

func TestArtistForm(t *testing.T) {
	vals := url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"genres":        {"Rock n Roll"},
		"seeking_venue": {"y"},
	}
	f := ParseArtist(vals)
	require.NoError(t, f.Validate())
	a := f.Model()
	assert.True(t, a.SeekingVenue)
	assert.Equal(t, model.Genres{"Rock n Roll"}, a.Genres)

	p := f.Patch()
	require.NotNil(t, p.SeekingVenue)
	assert.True(t, *p.SeekingVenue)
	assert.Nil(t, p.FacebookLink)
}

func TestArtistFromRoundTrip(t *testing.T) {
	a := &model.Artist{Name: "Matt Quevedo", City: "New York", State: "NY", Genres: model.Genres{"Jazz"}}
	f := ArtistFrom(a)
	require.NoError(t, f.Validate())
	assert.Equal(t, *a, *f.Model())
}

func TestShowForm(t *testing.T) {
	cases := map[string]time.Time{
		"2019-05-21 21:30:00":       time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
		"2019-05-21T21:30":          time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
		"2019-05-21T21:30:00-02:00": time.Date(2019, 5, 21, 23, 30, 0, 0, time.UTC),
	}
	for in, want := range cases {
		f := ParseShow(url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {in}})
		require.NoError(t, f.Validate(), in)
		s, err := f.Model()
		require.NoError(t, err)
		assert.Equal(t, int64(4), s.ArtistID)
		assert.Equal(t, int64(1), s.VenueID)
		assert.True(t, want.Equal(s.StartTime), in)
	}
}

func TestShowFormInvalid(t *testing.T) {
	err := ParseShow(url.Values{"artist_id": {"abc"}, "start_time": {"tomorrow"}}).Validate()
	require.Error(t, err)
	errs := Errors(err)
	assert.Contains(t, errs, "artist_id")
	assert.Contains(t, errs, "venue_id")
	assert.Contains(t, errs, "start_time")
}

func TestErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, Errors(assert.AnError))
	assert.False(t, IsInvalid(nil))
}
