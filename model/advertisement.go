package model

import "time"

// Advertisement ...
type Advertisement struct {
	ID           string `db:"id" json:"id"`
	VenueID      string `db:"venue_id" json:"venue_id"`
	CampaignName string `db:"campaign_name" json:"campaign_name"`
	MediaURL     string `db:"media_url" json:"media_url"`

	AdsSize    AdsSize `db:"ads_size" json:"ads_size"`
	StartDate  string  `db:"start_date" json:"start_date"`
	ExpiryDate string  `db:"expiry_date" json:"expiry_date,omitempty"`

	ExternalURL string `db:"external_url" json:"external_url,omitempty"`
	RedirectURL string `db:"redirect_url" json:"redirect_url,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ClickURL returns the click-through destination, external url first
func (a Advertisement) ClickURL() (string, bool) {
	if a.ExternalURL != "" {
		return a.ExternalURL, true
	}
	if a.RedirectURL != "" {
		return a.RedirectURL, true
	}
	return "", false
}

// AdsSize is the display slot of an advertisement
type AdsSize string

const (
	// AdsSizeBanner wide strip in the gallery header
	AdsSizeBanner AdsSize = "BANNER"

	// AdsSizeFullscreen blocking takeover modal
	AdsSizeFullscreen AdsSize = "FULLSCREEN"
)

// Valid ...
func (s AdsSize) Valid() bool {
	return s == AdsSizeBanner || s == AdsSizeFullscreen
}

// EligibilityStatus ...
type EligibilityStatus string

const (
	// StatusInvalid for records that can not be classified (missing or malformed dates, unknown slot)
	StatusInvalid EligibilityStatus = "INVALID"

	// StatusScheduled ...
	StatusScheduled EligibilityStatus = "SCHEDULED"

	// StatusActive ...
	StatusActive EligibilityStatus = "ACTIVE"

	// StatusExpired ...
	StatusExpired EligibilityStatus = "EXPIRED"
)

// NullAdvertisement ...
type NullAdvertisement struct {
	Valid         bool
	Advertisement Advertisement
}
