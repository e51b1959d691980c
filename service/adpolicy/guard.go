package adpolicy

import (
	"errors"
	"fmt"
	"github.com/QuangTung97/booth-ads/model"
	"time"
)

// ErrActiveConflict when another ad of the same slot is already active today
var ErrActiveConflict = errors.New("another advertisement of the same size is already active")

// Candidate is the new or edited advertisement being submitted
type Candidate struct {
	StartDate  string
	ExpiryDate string
	AdsSize    model.AdsSize
}

// CheckConflict rejects a candidate that would be active today while another ad
// of the same size (other than editingID) is active today.
// Overlapping future windows are not checked.
func CheckConflict(
	now time.Time, candidate Candidate, existing []model.Advertisement, editingID string,
) error {
	if !IsActive(now, candidate.StartDate, candidate.ExpiryDate, candidate.AdsSize) {
		return nil
	}

	for _, ad := range existing {
		if editingID != "" && ad.ID == editingID {
			continue
		}
		if ad.AdsSize != candidate.AdsSize {
			continue
		}
		if IsActive(now, ad.StartDate, ad.ExpiryDate, ad.AdsSize) {
			return fmt.Errorf("%w: %s", ErrActiveConflict, ad.ID)
		}
	}
	return nil
}

// Accept ...
func Accept(now time.Time, candidate Candidate, existing []model.Advertisement, editingID string) bool {
	return CheckConflict(now, candidate, existing, editingID) == nil
}
