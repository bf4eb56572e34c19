package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromoCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPromoService(db)
	expiry := time.Now().AddDate(0, 1, 0)

	promo, err := svc.Create("save10", 10, expiry)
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", promo.Code) // stored uppercase
	assert.True(t, promo.IsActive)

	// duplicate, regardless of case
	_, err = svc.Create("Save10", 15, expiry)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Create("", 10, expiry)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create("ZERO", 0, expiry)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create("TOOBIG", 101, expiry)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create("LAPSED", 10, time.Now().AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPromoSetActiveAndDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPromoService(db)

	promo, err := svc.Create("SUMMER", 25, time.Now().AddDate(0, 2, 0))
	require.NoError(t, err)

	updated, err := svc.SetActive(promo.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.False(t, updated.UsableAt(time.Now()))

	_, err = svc.SetActive(9999, true)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(promo.ID))
	assert.ErrorIs(t, svc.Delete(promo.ID), ErrNotFound)

	promos, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, promos)
}
