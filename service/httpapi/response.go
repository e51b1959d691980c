package httpapi

import (
	"github.com/QuangTung97/booth-ads/model"
	"github.com/QuangTung97/booth-ads/service/gallery"
	"github.com/QuangTung97/booth-ads/service/management"
)

// VenueAdsResponse ...
type VenueAdsResponse struct {
	Ads []model.Advertisement `json:"ads"`
}

// AdStatusResponse ...
type AdStatusResponse struct {
	AdID   string                  `json:"ad_id"`
	Status model.EligibilityStatus `json:"status"`
}

// GalleryAdsResponse ...
type GalleryAdsResponse struct {
	Banner     *model.Advertisement `json:"banner"`
	Fullscreen *model.Advertisement `json:"fullscreen"`

	Statuses []AdStatusResponse `json:"statuses"`

	TakeoverCountdown int `json:"takeover_countdown"`
}

// ManageAdsResponse ...
type ManageAdsResponse struct {
	Ads []management.AdView `json:"ads"`
}

// ErrorResponse ...
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newGalleryAdsResponse(output gallery.Output) GalleryAdsResponse {
	statuses := make([]AdStatusResponse, 0, len(output.Statuses))
	for _, s := range output.Statuses {
		statuses = append(statuses, AdStatusResponse{
			AdID:   s.AdID,
			Status: s.Status,
		})
	}
	return GalleryAdsResponse{
		Banner:            output.Banner,
		Fullscreen:        output.Fullscreen,
		Statuses:          statuses,
		TakeoverCountdown: output.TakeoverCountdown,
	}
}
