package form

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/iliyamo/fyyur/internal/model"
)

// Venue is the posted venue form.
type Venue struct {
	listing
	Address       string `json:"address"`
	SeekingTalent bool   `json:"seeking_talent"`
}

// ParseVenue reads a venue form from posted values.
func ParseVenue(values url.Values) *Venue {
	l := parseListing(values)
	return &Venue{
		listing:       l,
		Address:       l.posted.str("address"),
		SeekingTalent: l.posted.boolean("seeking_talent"),
	}
}

// VenueFrom pre-populates the form with a stored venue.
func VenueFrom(v *model.Venue) *Venue {
	return &Venue{
		listing: listing{
			Name: v.Name, City: v.City, State: v.State, Phone: v.Phone,
			Genres: v.Genres, ImageLink: v.ImageLink, FacebookLink: v.FacebookLink,
			WebsiteLink: v.WebsiteLink, SeekingDescription: v.SeekingDescription,
		},
		Address:       v.Address,
		SeekingTalent: v.SeekingTalent,
	}
}

// Validate checks a create submission.
func (f *Venue) Validate() error { return f.validate(false) }

// ValidatePatch checks an edit submission; absent fields are skipped.
func (f *Venue) ValidatePatch() error { return f.validate(true) }

func (f *Venue) validate(partial bool) error {
	rules := f.rules(partial)
	rules = append(rules, validation.Field(&f.Address,
		when(!partial || f.posted.has("address"), validation.Required),
		validation.Length(0, maxText)))
	return validation.ValidateStruct(f, rules...)
}

// Model converts the form into a new venue.
func (f *Venue) Model() *model.Venue {
	return &model.Venue{
		Name:               f.Name,
		Address:            f.Address,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             model.Genres(f.Genres),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

// Patch converts the posted fields into a partial update.
func (f *Venue) Patch() model.VenuePatch {
	return model.VenuePatch{
		Name:               f.str("name", f.Name),
		Address:            f.str("address", f.Address),
		City:               f.str("city", f.City),
		State:              f.str("state", f.State),
		Phone:              f.str("phone", f.Phone),
		Genres:             f.genres(),
		ImageLink:          f.str("image_link", f.ImageLink),
		FacebookLink:       f.str("facebook_link", f.FacebookLink),
		WebsiteLink:        f.str("website_link", f.WebsiteLink),
		SeekingTalent:      f.flag("seeking_talent"),
		SeekingDescription: f.str("seeking_description", f.SeekingDescription),
	}
}
