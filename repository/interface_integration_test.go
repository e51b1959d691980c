//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"github.com/QuangTung97/booth-ads/pkg/integration"
	"github.com/stretchr/testify/assert"
	"testing"
)

func newContext() context.Context {
	return context.Background()
}

func TestProvider_Readonly__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	p := NewProvider(tc.DB)
	ctx := p.Readonly(newContext())

	db := GetReadonly(ctx)

	var version string
	err := db.GetContext(ctx, &version, "SELECT VERSION()")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetTransaction(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		tx := GetTx(ctx)

		err := tx.GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		db := GetReadonly(ctx)

		err := db.GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Multi_Calls_Multi_Levels(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		return p.Transact(ctx, func(ctx context.Context) error {
			tx := GetTx(ctx)

			err := tx.GetContext(ctx, &version, "SELECT VERSION()")
			assert.Equal(t, nil, err)

			return nil
		})
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Error__Rollback(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("advertisement")

	p := NewProvider(tc.DB)
	repo := NewAdvertisement()

	fnErr := errors.New("some error")
	err := p.Transact(newContext(), func(ctx context.Context) error {
		err := repo.Insert(ctx, newAdvertisement("ad01", "venue01"))
		assert.Equal(t, nil, err)
		return fnErr
	})
	assert.Equal(t, fnErr, err)

	ads, err := repo.ListByVenue(p.Readonly(newContext()), "venue01")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(ads))
}
