package model

// Artist is a performer that can be booked at venues.  It mirrors Venue
// without the street address and with SeekingVenue instead of SeekingTalent.
type Artist struct {
	ID                 int64  `db:"id" json:"id"`
	Name               string `db:"name" json:"name"`
	City               string `db:"city" json:"city"`
	State              string `db:"state" json:"state"`
	Phone              string `db:"phone" json:"phone"`
	Genres             Genres `db:"genres" json:"genres"`
	ImageLink          string `db:"image_link" json:"image_link"`
	FacebookLink       string `db:"facebook_link" json:"facebook_link"`
	WebsiteLink        string `db:"website_link" json:"website_link"`
	SeekingVenue       bool   `db:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string `db:"seeking_description" json:"seeking_description"`
}

// ArtistPatch is a partial update.  A nil field keeps the stored value.
type ArtistPatch struct {
	Name               *string
	City               *string
	State              *string
	Phone              *string
	Genres             *Genres
	ImageLink          *string
	FacebookLink       *string
	WebsiteLink        *string
	SeekingVenue       *bool
	SeekingDescription *string
}

// Apply copies every non-nil field of p onto a.
func (p ArtistPatch) Apply(a *Artist) {
	setString(&a.Name, p.Name)
	setString(&a.City, p.City)
	setString(&a.State, p.State)
	setString(&a.Phone, p.Phone)
	if p.Genres != nil {
		a.Genres = *p.Genres
	}
	setString(&a.ImageLink, p.ImageLink)
	setString(&a.FacebookLink, p.FacebookLink)
	setString(&a.WebsiteLink, p.WebsiteLink)
	if p.SeekingVenue != nil {
		a.SeekingVenue = *p.SeekingVenue
	}
	setString(&a.SeekingDescription, p.SeekingDescription)
}
