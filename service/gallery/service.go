package gallery

import (
	"context"
	"encoding/json"
	"github.com/QuangTung97/booth-ads/model"
	"github.com/QuangTung97/booth-ads/pkg/adcache"
	"github.com/QuangTung97/booth-ads/pkg/otellib"
	"github.com/QuangTung97/booth-ads/repository"
	"github.com/QuangTung97/booth-ads/service/adpolicy"
	"github.com/QuangTung97/booth-ads/service/takeover"
	"go.uber.org/zap"
	"time"
)

//go:generate otelwrap --out service_wrappers.go . IService

// IService ...
type IService interface {
	GetVenueAds(ctx context.Context, venueID string) ([]model.Advertisement, error)
	GetActiveAds(ctx context.Context, venueID string) Output
}

// Output is what the gallery page renders
type Output struct {
	Banner     *model.Advertisement
	Fullscreen *model.Advertisement

	Statuses []adpolicy.AdStatus
	Excluded []adpolicy.ExcludedAd

	// TakeoverCountdown seconds before the fullscreen ad can be dismissed, zero without a fullscreen ad
	TakeoverCountdown int
}

// Service ...
type Service struct {
	provider repository.Provider
	adRepo   repository.Advertisement
	store    adcache.Store
	metrics  *Metrics

	now func() time.Time
	loc *time.Location
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider, adRepo repository.Advertisement,
	store adcache.Store, metrics *Metrics, loc *time.Location,
) *Service {
	return &Service{
		provider: provider,
		adRepo:   adRepo,
		store:    store,
		metrics:  metrics,

		now: time.Now,
		loc: loc,
	}
}

// VenueCacheKey is the cache key of the ad list of a venue
func VenueCacheKey(venueID string) string {
	return "ads:venue:" + venueID
}

// GetVenueAds returns the ad records of a venue, oldest first
func (s *Service) GetVenueAds(ctx context.Context, venueID string) ([]model.Advertisement, error) {
	data, err := s.store.Get(ctx, VenueCacheKey(venueID), func(ctx context.Context) ([]byte, error) {
		ads, err := s.adRepo.ListByVenue(s.provider.Readonly(ctx), venueID)
		if err != nil {
			return nil, err
		}
		if ads == nil {
			ads = []model.Advertisement{}
		}
		return json.Marshal(ads)
	})
	if err != nil {
		return nil, err
	}

	var ads []model.Advertisement
	if err := json.Unmarshal(data, &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

// GetActiveAds selects the banner and fullscreen ad to show on the current day.
// A failed fetch is logged and treated as no ads available.
func (s *Service) GetActiveAds(ctx context.Context, venueID string) Output {
	ads, err := s.GetVenueAds(ctx, venueID)
	if err != nil {
		otellib.Extract(ctx).Error("Get venue ads", zap.String("venue_id", venueID), zap.Error(err))
		s.metrics.observeRequest(requestResultFetchError)
		return Output{
			Statuses: []adpolicy.AdStatus{},
		}
	}

	result := adpolicy.Evaluate(s.now().In(s.loc), ads)

	for _, ex := range result.Excluded {
		otellib.Extract(ctx).Warn("Excluded advertisement",
			zap.String("venue_id", venueID),
			zap.String("ad_id", ex.AdID),
			zap.Error(ex.Err),
		)
	}
	s.metrics.observeExcluded(len(result.Excluded))

	output := Output{
		Banner:     result.ActiveBanner(),
		Fullscreen: result.ActiveFullscreen(),
		Statuses:   result.Statuses,
		Excluded:   result.Excluded,
	}
	if output.Fullscreen != nil {
		output.TakeoverCountdown = takeover.CountdownSeconds
	}

	if output.Banner == nil && output.Fullscreen == nil {
		s.metrics.observeRequest(requestResultEmpty)
	} else {
		s.metrics.observeRequest(requestResultOK)
	}
	return output
}
