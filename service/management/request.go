package management

import (
	"errors"
	"fmt"
	"github.com/QuangTung97/booth-ads/model"
	"github.com/QuangTung97/booth-ads/service/adpolicy"
	"github.com/go-playground/validator/v10"
	"reflect"
	"sort"
	"strings"
	"time"
)

// ErrValidation when the request has missing or malformed fields
var ErrValidation = errors.New("invalid advertisement request")

// ErrInvalidDateRange when the start date is after the expiry date
var ErrInvalidDateRange = errors.New("start date is after expiry date")

// AdRequest is the create and update payload
type AdRequest struct {
	VenueID      string        `json:"venue_id" validate:"required,max=64"`
	CampaignName string        `json:"campaign_name" validate:"required,max=255"`
	MediaURL     string        `json:"media_url" validate:"required,url,max=1024"`
	AdsSize      model.AdsSize `json:"ads_size" validate:"required,oneof=BANNER FULLSCREEN"`

	StartDate  string `json:"start_date" validate:"required"`
	ExpiryDate string `json:"expiry_date"`

	ExternalURL string `json:"external_url" validate:"omitempty,url,max=1024"`
	RedirectURL string `json:"redirect_url" validate:"omitempty,url,max=1024"`
}

const dateLayout = "2006-01-02"

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" "+fe.Tag())
	}
	sort.Strings(fields)
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
}

func normalizeDate(field string, s string, loc *time.Location) (time.Time, string, error) {
	t, err := adpolicy.ParseDate(s, loc)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %s %v", ErrValidation, field, err)
	}
	return t, t.Format(dateLayout), nil
}

// toAdvertisement validates req and normalizes its dates to calendar days
func toAdvertisement(v *validator.Validate, req AdRequest, loc *time.Location) (model.Advertisement, error) {
	if err := v.Struct(req); err != nil {
		return model.Advertisement{}, validationError(err)
	}

	start, startDate, err := normalizeDate("start_date", req.StartDate, loc)
	if err != nil {
		return model.Advertisement{}, err
	}

	expiryDate := ""
	if req.ExpiryDate != "" {
		var expiry time.Time
		expiry, expiryDate, err = normalizeDate("expiry_date", req.ExpiryDate, loc)
		if err != nil {
			return model.Advertisement{}, err
		}
		if adpolicy.StartOfDay(start).After(adpolicy.StartOfDay(expiry)) {
			return model.Advertisement{}, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, startDate, expiryDate)
		}
	}

	return model.Advertisement{
		VenueID:      req.VenueID,
		CampaignName: req.CampaignName,
		MediaURL:     req.MediaURL,
		AdsSize:      req.AdsSize,

		StartDate:  startDate,
		ExpiryDate: expiryDate,

		ExternalURL: req.ExternalURL,
		RedirectURL: req.RedirectURL,
	}, nil
}

func toCandidate(ad model.Advertisement) adpolicy.Candidate {
	return adpolicy.Candidate{
		StartDate:  ad.StartDate,
		ExpiryDate: ad.ExpiryDate,
		AdsSize:    ad.AdsSize,
	}
}
