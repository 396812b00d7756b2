package form

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/iliyamo/fyyur/internal/model"
)

// listing holds the fields venues and artists share.
type listing struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingDescription string   `json:"seeking_description"`

	posted fields
}

func parseListing(values url.Values) listing {
	f := fields(values)
	return listing{
		Name:               f.str("name"),
		City:               f.str("city"),
		State:              f.str("state"),
		Phone:              f.str("phone"),
		Genres:             model.Genres(f.list("genres")).Normalize(),
		ImageLink:          f.str("image_link"),
		FacebookLink:       f.str("facebook_link"),
		WebsiteLink:        f.str("website_link"),
		SeekingDescription: f.str("seeking_description"),
		posted:             f,
	}
}

// rules validates every field on create and only posted fields on edit.
func (l *listing) rules(partial bool) []*validation.FieldRules {
	req := func(key string) validation.Rule {
		return when(!partial || l.posted.has(key), validation.Required)
	}
	return []*validation.FieldRules{
		validation.Field(&l.Name, req("name"), validation.Length(0, maxText)),
		validation.Field(&l.City, req("city"), validation.Length(0, maxText)),
		validation.Field(&l.State, req("state"), validation.Length(0, maxText)),
		validation.Field(&l.Phone, validation.Length(0, maxText)),
		validation.Field(&l.Genres, req("genres")),
		validation.Field(&l.ImageLink, is.URL, validation.Length(0, 500)),
		validation.Field(&l.FacebookLink, is.URL, validation.Length(0, maxText)),
		validation.Field(&l.WebsiteLink, is.URL, validation.Length(0, maxText)),
		validation.Field(&l.SeekingDescription, validation.Length(0, 500)),
	}
}

// str returns a pointer to v when key was posted.
func (l *listing) str(key, v string) *string {
	if !l.posted.has(key) {
		return nil
	}
	return &v
}

func (l *listing) genres() *model.Genres {
	if !l.posted.has("genres") {
		return nil
	}
	g := model.Genres(l.Genres)
	return &g
}

func (l *listing) flag(key string) *bool {
	if !l.posted.has(key) {
		return nil
	}
	v := l.posted.boolean(key)
	return &v
}
