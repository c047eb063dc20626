package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastly/ordering-app/models"
)

func TestLedgerCurrentUsageDefaultsToZero(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewRedemptionLedger(db)

	used, err := ledger.CurrentUsage(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, used)
}

func TestLedgerRecordUsageIncrements(t *testing.T) {
	db := setupTestDB(t)
	offer := models.Offer{Code: "X", DiscountType: models.DiscountFlat, DiscountValue: 5, IsActive: true, MaxUsesPerUser: intPtr(3)}
	require.NoError(t, db.Create(&offer).Error)

	ledger := NewRedemptionLedger(db)

	for want := 1; want <= 3; want++ {
		got, err := ledger.RecordUsage(nil, &offer, 5)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ledger.RecordUsage(nil, &offer, 5)
	assert.True(t, errors.Is(err, ErrUsageLimitReached))

	used, err := ledger.CurrentUsage(offer.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, used)
}

func TestLedgerUnboundedWhenNoLimit(t *testing.T) {
	db := setupTestDB(t)
	offer := models.Offer{Code: "Y", DiscountType: models.DiscountFlat, DiscountValue: 5, IsActive: true}
	require.NoError(t, db.Create(&offer).Error)

	ledger := NewRedemptionLedger(db)
	for i := 0; i < 10; i++ {
		_, err := ledger.RecordUsage(nil, &offer, 5)
		require.NoError(t, err)
	}

	used, err := ledger.CurrentUsage(offer.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, used)
}

func TestLedgerUsersAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	offer := models.Offer{Code: "Z", DiscountType: models.DiscountFlat, DiscountValue: 5, IsActive: true, MaxUsesPerUser: intPtr(1)}
	require.NoError(t, db.Create(&offer).Error)

	ledger := NewRedemptionLedger(db)

	_, err := ledger.RecordUsage(nil, &offer, 1)
	require.NoError(t, err)
	_, err = ledger.RecordUsage(nil, &offer, 2)
	require.NoError(t, err)

	_, err = ledger.RecordUsage(nil, &offer, 1)
	assert.True(t, errors.Is(err, ErrUsageLimitReached))
}

// Fifty concurrent confirmations for the same (offer, user) with a limit of
// one: exactly one may win.
func TestLedgerConcurrentSingleWinner(t *testing.T) {
	db := setupTestDB(t)
	offer := models.Offer{Code: "GOLDEN", DiscountType: models.DiscountFlat, DiscountValue: 5, IsActive: true, MaxUsesPerUser: intPtr(1)}
	require.NoError(t, db.Create(&offer).Error)

	ledger := NewRedemptionLedger(db)

	const attempts = 50
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := ledger.RecordUsage(nil, &offer, 77)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, limitHits int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrUsageLimitReached):
			limitHits++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, limitHits)

	used, err := ledger.CurrentUsage(offer.ID, 77)
	require.NoError(t, err)
	assert.Equal(t, 1, used)
}
