package model

// Venue is a place that hosts shows.  This struct corresponds to a row in the
// `venues` table.
//
// Fields:
//
//	ID                 primary key identifier
//	Name, City, State  required
//	Address            required street address
//	Phone              free text, not format-validated
//	Genres             required list of genre labels
//	*Link              optional image, facebook and website links
//	SeekingTalent      whether the venue is looking for artists
//	SeekingDescription free text shown when SeekingTalent is set
type Venue struct {
	ID                 int64  `db:"id" json:"id"`
	Name               string `db:"name" json:"name"`
	Address            string `db:"address" json:"address"`
	City               string `db:"city" json:"city"`
	State              string `db:"state" json:"state"`
	Phone              string `db:"phone" json:"phone"`
	Genres             Genres `db:"genres" json:"genres"`
	ImageLink          string `db:"image_link" json:"image_link"`
	FacebookLink       string `db:"facebook_link" json:"facebook_link"`
	WebsiteLink        string `db:"website_link" json:"website_link"`
	SeekingTalent      bool   `db:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string `db:"seeking_description" json:"seeking_description"`
}

// VenuePatch is a partial update.  A nil field keeps the stored value.
type VenuePatch struct {
	Name               *string
	Address            *string
	City               *string
	State              *string
	Phone              *string
	Genres             *Genres
	ImageLink          *string
	FacebookLink       *string
	WebsiteLink        *string
	SeekingTalent      *bool
	SeekingDescription *string
}

// Apply copies every non-nil field of p onto v.
func (p VenuePatch) Apply(v *Venue) {
	setString(&v.Name, p.Name)
	setString(&v.Address, p.Address)
	setString(&v.City, p.City)
	setString(&v.State, p.State)
	setString(&v.Phone, p.Phone)
	if p.Genres != nil {
		v.Genres = *p.Genres
	}
	setString(&v.ImageLink, p.ImageLink)
	setString(&v.FacebookLink, p.FacebookLink)
	setString(&v.WebsiteLink, p.WebsiteLink)
	if p.SeekingTalent != nil {
		v.SeekingTalent = *p.SeekingTalent
	}
	setString(&v.SeekingDescription, p.SeekingDescription)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
