package adpolicy

import (
	"errors"
	"fmt"
	"github.com/QuangTung97/booth-ads/model"
	"time"
)

// ErrUnknownAdsSize ...
var ErrUnknownAdsSize = errors.New("unknown ads size")

// AdStatus is the eligibility of one advertisement
type AdStatus struct {
	AdID   string
	Status model.EligibilityStatus
}

// ExcludedAd is a record left out of classification
type ExcludedAd struct {
	AdID string
	Err  error
}

// Result of Evaluate
type Result struct {
	// Statuses has one entry per input ad, in input order
	Statuses []AdStatus
	Excluded []ExcludedAd

	Banner     *model.Advertisement
	Fullscreen *model.Advertisement
}

// ActiveBanner ...
func (r Result) ActiveBanner() *model.Advertisement {
	return r.Banner
}

// ActiveFullscreen ...
func (r Result) ActiveFullscreen() *model.Advertisement {
	return r.Fullscreen
}

// StatusOf returns the status of the ad with id, StatusInvalid if not found
func (r Result) StatusOf(id string) model.EligibilityStatus {
	for _, s := range r.Statuses {
		if s.AdID == id {
			return s.Status
		}
	}
	return model.StatusInvalid
}

// Classify computes the eligibility of ad on the calendar day of now
func Classify(now time.Time, ad model.Advertisement) (model.EligibilityStatus, error) {
	if !ad.AdsSize.Valid() {
		return model.StatusInvalid, fmt.Errorf("%w: %q", ErrUnknownAdsSize, ad.AdsSize)
	}
	w, err := NewWindow(ad.StartDate, ad.ExpiryDate, now.Location())
	if err != nil {
		return model.StatusInvalid, err
	}
	return w.StatusAt(now), nil
}

// IsActive reports whether a window of the slot is active on the calendar day of now
func IsActive(now time.Time, startDate string, expiryDate string, size model.AdsSize) bool {
	status, err := Classify(now, model.Advertisement{
		AdsSize:    size,
		StartDate:  startDate,
		ExpiryDate: expiryDate,
	})
	return err == nil && status == model.StatusActive
}

// Evaluate classifies every ad and selects the first active banner and fullscreen ad in input order
func Evaluate(now time.Time, ads []model.Advertisement) Result {
	result := Result{
		Statuses: make([]AdStatus, 0, len(ads)),
	}

	for i := range ads {
		ad := &ads[i]

		status, err := Classify(now, *ad)
		result.Statuses = append(result.Statuses, AdStatus{
			AdID:   ad.ID,
			Status: status,
		})
		if err != nil {
			result.Excluded = append(result.Excluded, ExcludedAd{
				AdID: ad.ID,
				Err:  err,
			})
			continue
		}

		if status != model.StatusActive {
			continue
		}

		switch ad.AdsSize {
		case model.AdsSizeBanner:
			if result.Banner == nil {
				result.Banner = ad
			}
		case model.AdsSizeFullscreen:
			if result.Fullscreen == nil {
				result.Fullscreen = ad
			}
		}
	}
	return result
}
