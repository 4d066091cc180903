package model

import (
	"strings"
	"time"
)

// ListingSite - Public-facing microsite bound 1:1 to a MasterProperty via
// a generated unique slug.
type ListingSite struct {
	ID           string    `gorm:"primary_key" json:"id"`
	ProjectID    int64     `json:"project_id"`
	PropertyID   string    `json:"property_id"`
	Slug         string    `json:"slug"`
	Headline     string    `json:"headline"`
	Description  string    `json:"description"`
	AskingPrice  float64   `json:"asking_price"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	IsPublished  bool      `json:"is_published"`
	IsDeleted    bool      `json:"is_deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ListingSite) TableName() string {
	return "listing_sites"
}

// ListingLead - Inbound lead captured on a public listing page.
type ListingLead struct {
	ID        string    `gorm:"primary_key" json:"id"`
	ProjectID int64     `json:"project_id"`
	SiteID    string    `json:"site_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	SourceIP  string    `json:"source_ip"`
	CreatedAt time.Time `json:"created_at"`
}

func (ListingLead) TableName() string {
	return "listing_leads"
}

// PublicListing - The unauthenticated view of a published listing site.
type PublicListing struct {
	Slug           string  `json:"slug"`
	Headline       string  `json:"headline"`
	Description    string  `json:"description"`
	AskingPrice    float64 `json:"asking_price"`
	ContactName    string  `json:"contact_name"`
	ContactEmail   string  `json:"contact_email"`
	ContactPhone   string  `json:"contact_phone"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Zip            string  `json:"zip"`
	PropertyType   string  `json:"property_type"`
	BuildingSizeSF int64   `json:"building_size_sf"`
	LotSizeAcres   float64 `json:"lot_size_acres"`
	YearBuilt      int64   `json:"year_built"`
}

type UpdatableListingSite struct {
	Headline     *string  `json:"headline"`
	Description  *string  `json:"description"`
	AskingPrice  *float64 `json:"asking_price"`
	ContactName  *string  `json:"contact_name"`
	ContactEmail *string  `json:"contact_email"`
	ContactPhone *string  `json:"contact_phone"`
}

func (u *UpdatableListingSite) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Headline != nil {
		fields["headline"] = *u.Headline
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.AskingPrice != nil {
		fields["asking_price"] = *u.AskingPrice
	}
	if u.ContactName != nil {
		fields["contact_name"] = *u.ContactName
	}
	if u.ContactEmail != nil {
		fields["contact_email"] = *u.ContactEmail
	}
	if u.ContactPhone != nil {
		fields["contact_phone"] = *u.ContactPhone
	}
	return fields
}

const listingSlugMaxLen = 80

// BuildListingSlug derives a URL-safe slug from address, city and state.
// Uniqueness is the store's responsibility (collision check with numbered
// suffixes); this function is deterministic.
func BuildListingSlug(address, city, state string) string {
	joined := strings.ToLower(strings.Join([]string{address, city, state}, " "))

	var b strings.Builder
	b.Grow(len(joined))
	lastHyphen := true // suppress leading hyphen
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > listingSlugMaxLen {
		slug = strings.Trim(slug[:listingSlugMaxLen], "-")
	}
	return slug
}
