package management

import (
	"context"
	"errors"
	"github.com/QuangTung97/booth-ads/model"
	"github.com/QuangTung97/booth-ads/pkg/adcache"
	"github.com/QuangTung97/booth-ads/pkg/otellib"
	"github.com/QuangTung97/booth-ads/repository"
	"github.com/QuangTung97/booth-ads/service/adpolicy"
	"github.com/QuangTung97/booth-ads/service/gallery"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"time"
)

//go:generate otelwrap --out service_wrappers.go . IService

// ErrNotFound ...
var ErrNotFound = errors.New("advertisement not found")

// IService ...
type IService interface {
	Create(ctx context.Context, req AdRequest) (model.Advertisement, error)
	Update(ctx context.Context, id string, req AdRequest) (model.Advertisement, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, venueID string) ([]AdView, error)
}

// AdView is a record with its eligibility on the current day
type AdView struct {
	model.Advertisement
	Status model.EligibilityStatus `json:"status"`
}

// Service ...
type Service struct {
	provider repository.Provider
	adRepo   repository.Advertisement
	store    adcache.Store
	metrics  *Metrics
	validate *validator.Validate

	now   func() time.Time
	newID func() string
	loc   *time.Location
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
		validate: newValidate(),

		now:   time.Now,
		newID: uuid.NewString,
		loc:   loc,
	}
}

func (s *Service) today() time.Time {
	return s.now().In(s.loc)
}

// checkVenue locks the venue rows and runs the active conflict guard against them
func (s *Service) checkVenue(ctx context.Context, ad model.Advertisement, editingID string) error {
	if err := s.adRepo.LockVenue(ctx, ad.VenueID); err != nil {
		return err
	}
	existing, err := s.adRepo.ListByVenue(ctx, ad.VenueID)
	if err != nil {
		return err
	}
	return adpolicy.CheckConflict(s.today(), toCandidate(ad), existing, editingID)
}

func (s *Service) getInTx(ctx context.Context, id string) (model.Advertisement, error) {
	nullAd, err := s.adRepo.Get(ctx, id)
	if err != nil {
		return model.Advertisement{}, err
	}
	if !nullAd.Valid {
		return model.Advertisement{}, ErrNotFound
	}
	return nullAd.Advertisement, nil
}

// Create ...
func (s *Service) Create(ctx context.Context, req AdRequest) (model.Advertisement, error) {
	ad, err := toAdvertisement(s.validate, req, s.loc)
	if err != nil {
		s.metrics.observeRejection(err)
		return model.Advertisement{}, err
	}
	ad.ID = s.newID()

	var result model.Advertisement
	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		if err := s.checkVenue(ctx, ad, ""); err != nil {
			return err
		}
		if err := s.adRepo.Insert(ctx, ad); err != nil {
			return err
		}

		var err error
		result, err = s.getInTx(ctx, ad.ID)
		return err
	})
	if err != nil {
		s.metrics.observeRejection(err)
		return model.Advertisement{}, err
	}

	s.invalidate(ctx, ad.VenueID)
	return result, nil
}

// Update replaces an existing ad, the ad itself is not counted as a conflict
func (s *Service) Update(ctx context.Context, id string, req AdRequest) (model.Advertisement, error) {
	ad, err := toAdvertisement(s.validate, req, s.loc)
	if err != nil {
		s.metrics.observeRejection(err)
		return model.Advertisement{}, err
	}
	ad.ID = id

	var oldVenueID string
	var result model.Advertisement
	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		old, err := s.getInTx(ctx, id)
		if err != nil {
			return err
		}
		oldVenueID = old.VenueID

		if err := s.checkVenue(ctx, ad, id); err != nil {
			return err
		}
		if err := s.adRepo.Update(ctx, ad); err != nil {
			return err
		}

		result, err = s.getInTx(ctx, id)
		return err
	})
	if err != nil {
		s.metrics.observeRejection(err)
		return model.Advertisement{}, err
	}

	s.invalidate(ctx, ad.VenueID)
	if oldVenueID != ad.VenueID {
		s.invalidate(ctx, oldVenueID)
	}
	return result, nil
}

// Delete ...
func (s *Service) Delete(ctx context.Context, id string) error {
	var venueID string
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		ad, err := s.getInTx(ctx, id)
		if err != nil {
			return err
		}
		venueID = ad.VenueID
		return s.adRepo.Delete(ctx, id)
	})
	if err != nil {
		s.metrics.observeRejection(err)
		return err
	}

	s.invalidate(ctx, venueID)
	return nil
}

// List returns the venue's ads, oldest first, with their status today
func (s *Service) List(ctx context.Context, venueID string) ([]AdView, error) {
	ads, err := s.adRepo.ListByVenue(s.provider.Readonly(ctx), venueID)
	if err != nil {
		return nil, err
	}

	result := adpolicy.Evaluate(s.today(), ads)

	views := make([]AdView, 0, len(ads))
	for i, ad := range ads {
		views = append(views, AdView{
			Advertisement: ad,
			Status:        result.Statuses[i].Status,
		})
	}
	return views, nil
}

// invalidate is best effort, entries still expire after the cache ttl
func (s *Service) invalidate(ctx context.Context, venueID string) {
	err := s.store.Invalidate(ctx, gallery.VenueCacheKey(venueID))
	if err != nil {
		otellib.Extract(ctx).Error("Invalidate venue ads", zap.String("venue_id", venueID), zap.Error(err))
	}
}
