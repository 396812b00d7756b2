package form

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/iliyamo/fyyur/internal/model"
)

// Artist is the posted artist form.
type Artist struct {
	listing
	SeekingVenue bool `json:"seeking_venue"`
}

// ParseArtist reads an artist form from posted values.
func ParseArtist(values url.Values) *Artist {
	l := parseListing(values)
	return &Artist{listing: l, SeekingVenue: l.posted.boolean("seeking_venue")}
}

// ArtistFrom pre-populates the form with a stored artist.
func ArtistFrom(a *model.Artist) *Artist {
	return &Artist{
		listing: listing{
			Name: a.Name, City: a.City, State: a.State, Phone: a.Phone,
			Genres: a.Genres, ImageLink: a.ImageLink, FacebookLink: a.FacebookLink,
			WebsiteLink: a.WebsiteLink, SeekingDescription: a.SeekingDescription,
		},
		SeekingVenue: a.SeekingVenue,
	}
}

func (f *Artist) Validate() error {
	return validation.ValidateStruct(f, f.rules(false)...)
}

func (f *Artist) ValidatePatch() error {
	return validation.ValidateStruct(f, f.rules(true)...)
}

func (f *Artist) Model() *model.Artist {
	return &model.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             model.Genres(f.Genres),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

func (f *Artist) Patch() model.ArtistPatch {
	return model.ArtistPatch{
		Name:               f.str("name", f.Name),
		City:               f.str("city", f.City),
		State:              f.str("state", f.State),
		Phone:              f.str("phone", f.Phone),
		Genres:             f.genres(),
		ImageLink:          f.str("image_link", f.ImageLink),
		FacebookLink:       f.str("facebook_link", f.FacebookLink),
		WebsiteLink:        f.str("website_link", f.WebsiteLink),
		SeekingVenue:       f.flag("seeking_venue"),
		SeekingDescription: f.str("seeking_description", f.SeekingDescription),
	}
}
