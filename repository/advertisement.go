package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/QuangTung97/booth-ads/model"
)

// Advertisement ...
type Advertisement interface {
	ListByVenue(ctx context.Context, venueID string) ([]model.Advertisement, error)
	Get(ctx context.Context, id string) (model.NullAdvertisement, error)

	// LockVenue must be called inside a transaction
	LockVenue(ctx context.Context, venueID string) error

	Insert(ctx context.Context, ad model.Advertisement) error
	Update(ctx context.Context, ad model.Advertisement) error
	Delete(ctx context.Context, id string) error
}

type advertisementImpl struct {
}

// NewAdvertisement ...
func NewAdvertisement() Advertisement {
	return &advertisementImpl{}
}

const selectAdvertisementColumns = `
SELECT id, venue_id, campaign_name, media_url, ads_size,
	DATE_FORMAT(start_date, '%Y-%m-%d') AS start_date,
	COALESCE(DATE_FORMAT(expiry_date, '%Y-%m-%d'), '') AS expiry_date,
	external_url, redirect_url,
	created_at, updated_at
FROM advertisement
`

// ListByVenue returns the ads of a venue, oldest first
func (r *advertisementImpl) ListByVenue(ctx context.Context, venueID string) ([]model.Advertisement, error) {
	query := selectAdvertisementColumns + `WHERE venue_id = ? ORDER BY created_at, id`

	var result []model.Advertisement
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, venueID)
	return result, err
}

// Get ...
func (r *advertisementImpl) Get(ctx context.Context, id string) (model.NullAdvertisement, error) {
	query := selectAdvertisementColumns + `WHERE id = ?`

	var ad model.Advertisement
	err := GetReadonly(ctx).GetContext(ctx, &ad, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullAdvertisement{}, nil
	}
	if err != nil {
		return model.NullAdvertisement{}, err
	}
	return model.NullAdvertisement{
		Valid:         true,
		Advertisement: ad,
	}, nil
}

// LockVenue ...
func (r *advertisementImpl) LockVenue(ctx context.Context, venueID string) error {
	query := `SELECT id FROM advertisement WHERE venue_id = ? FOR UPDATE`
	var ids []string
	return GetTx(ctx).SelectContext(ctx, &ids, query, venueID)
}

// Insert ...
func (r *advertisementImpl) Insert(ctx context.Context, ad model.Advertisement) error {
	query := `
INSERT INTO advertisement (
	id, venue_id, campaign_name, media_url, ads_size,
	start_date, expiry_date, external_url, redirect_url
) VALUES (
	:id, :venue_id, :campaign_name, :media_url, :ads_size,
	:start_date, NULLIF(:expiry_date, ''), :external_url, :redirect_url
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, ad)
	return err
}

// Update ...
func (r *advertisementImpl) Update(ctx context.Context, ad model.Advertisement) error {
	query := `
UPDATE advertisement SET
	venue_id = :venue_id,
	campaign_name = :campaign_name,
	media_url = :media_url,
	ads_size = :ads_size,
	start_date = :start_date,
	expiry_date = NULLIF(:expiry_date, ''),
	external_url = :external_url,
	redirect_url = :redirect_url
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, ad)
	return err
}

// Delete ...
func (r *advertisementImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM advertisement WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, id)
	return err
}
