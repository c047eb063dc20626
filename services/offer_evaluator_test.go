package services

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
)

func newEvaluator(db *gorm.DB) *OfferEvaluator {
	return NewOfferEvaluator(db, NewRedemptionLedger(db))
}

func cartLine(itemID, categoryID uint, lineTotal float64) PricedLine {
	total := decimal.NewFromFloat(lineTotal)
	return PricedLine{
		ItemID:     itemID,
		CategoryID: categoryID,
		Quantity:   1,
		UnitPrice:  total,
		LineTotal:  total,
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func uintPtr(u uint) *uint        { return &u }

func TestEvaluatePercentageCappedAtMaxDiscount(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Offer{
		Code:              "SAVE20",
		DiscountType:      models.DiscountPercentage,
		DiscountValue:     20,
		MaxDiscountAmount: floatPtr(100),
		IsActive:          true,
	}).Error)

	// subtotal 1000 -> 20% = 200, capped at 100
	result, err := newEvaluator(db).Evaluate("SAVE20", []PricedLine{cartLine(1, 1, 1000)}, 1, openMonday)
	require.NoError(t, err)
	assert.Equal(t, "100", result.DiscountAmount.String())
	assert.False(t, result.WaiveDeliveryFee)
}

func TestEvaluatePercentageNeverExceedsEligibleSubtotal(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Offer{
		Code:          "ODD",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 100,
		IsActive:      true,
	}).Error)

	result, err := newEvaluator(db).Evaluate("ODD", []PricedLine{cartLine(1, 1, 250)}, 1, openMonday)
	require.NoError(t, err)
	assert.Equal(t, "250", result.DiscountAmount.String())
}

func TestEvaluateFlatCappedAtEligibleSubtotal(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Offer{
		Code:          "FLAT150",
		DiscountType:  models.DiscountFlat,
		DiscountValue: 150,
		IsActive:      true,
	}).Error)

	evaluator := newEvaluator(db)

	small, err := evaluator.Evaluate("FLAT150", []PricedLine{cartLine(1, 1, 90)}, 1, openMonday)
	require.NoError(t, err)
	assert.Equal(t, "90", small.DiscountAmount.String())

	big, err := evaluator.Evaluate("FLAT150", []PricedLine{cartLine(1, 1, 400)}, 1, openMonday)
	require.NoError(t, err)
	assert.Equal(t, "150", big.DiscountAmount.String())
}

func TestEvaluateFreeDelivery(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Offer{
		Code:         "FREESHIP",
		DiscountType: models.DiscountFreeDeliver,
		IsActive:     true,
	}).Error)

	result, err := newEvaluator(db).Evaluate("FREESHIP", []PricedLine{cartLine(1, 1, 300)}, 1, openMonday)
	require.NoError(t, err)
	assert.True(t, result.DiscountAmount.IsZero())
	assert.True(t, result.WaiveDeliveryFee)
}

func TestEvaluateCodeIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Offer{
		Code:          "SAVE20",
		DiscountType:  models.DiscountFlat,
		DiscountValue: 50,
		IsActive:      true,
	}).Error)

	result, err := newEvaluator(db).Evaluate("save20", []PricedLine{cartLine(1, 1, 500)}, 1, openMonday)
	require.NoError(t, err)
	assert.Equal(t, "SAVE20", result.Offer.Code)
}

func TestEvaluateRejectionReasons(t *testing.T) {
	db := setupTestDB(t)
	now := openMonday
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	require.NoError(t, db.Create(&models.Offer{
		Code: "INACTIVE", DiscountType: models.DiscountFlat, DiscountValue: 10, IsActive: false,
	}).Error)
	require.NoError(t, db.Create(&models.Offer{
		Code: "EXPIRED", DiscountType: models.DiscountFlat, DiscountValue: 10, IsActive: true, ValidTo: &past,
	}).Error)
	require.NoError(t, db.Create(&models.Offer{
		Code: "UPCOMING", DiscountType: models.DiscountFlat, DiscountValue: 10, IsActive: true, ValidFrom: &future,
	}).Error)
	require.NoError(t, db.Create(&models.Offer{
		Code: "MIN500", DiscountType: models.DiscountFlat, DiscountValue: 10, IsActive: true, MinOrderValue: floatPtr(500),
	}).Error)

	evaluator := newEvaluator(db)
	lines := []PricedLine{cartLine(1, 1, 200)}

	_, err := evaluator.Evaluate("NOPE", lines, 1, now)
	assert.True(t, errors.Is(err, ErrOfferNotFound))

	_, err = evaluator.Evaluate("INACTIVE", lines, 1, now)
	assert.True(t, errors.Is(err, ErrOfferInactive))

	_, err = evaluator.Evaluate("EXPIRED", lines, 1, now)
	assert.True(t, errors.Is(err, ErrOfferExpired))

	_, err = evaluator.Evaluate("UPCOMING", lines, 1, now)
	assert.True(t, errors.Is(err, ErrOfferNotYetValid))

	_, err = evaluator.Evaluate("MIN500", lines, 1, now)
	assert.True(t, errors.Is(err, ErrBelowMinimumOrder))
}

func TestEvaluateFirstOrderOnly(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Offer{
		Code: "WELCOME", DiscountType: models.DiscountFlat, DiscountValue: 50,
		IsActive: true, FirstOrderOnly: true,
	}).Error)

	evaluator := newEvaluator(db)
	lines := []PricedLine{cartLine(1, 1, 300)}

	_, err := evaluator.Evaluate("WELCOME", lines, 7, openMonday)
	require.NoError(t, err)

	// a cancelled order does not count as a prior order
	require.NoError(t, db.Create(&models.Order{UserID: 7, AddressID: 1, Status: OrderStatusCancelled}).Error)
	_, err = evaluator.Evaluate("WELCOME", lines, 7, openMonday)
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Order{UserID: 7, AddressID: 1, Status: OrderStatusConfirmed}).Error)
	_, err = evaluator.Evaluate("WELCOME", lines, 7, openMonday)
	assert.True(t, errors.Is(err, ErrNotFirstOrder))
}

func TestEvaluateUsageLimit(t *testing.T) {
	db := setupTestDB(t)
	offer := models.Offer{
		Code: "TWICE", DiscountType: models.DiscountFlat, DiscountValue: 25,
		IsActive: true, MaxUsesPerUser: intPtr(2),
	}
	require.NoError(t, db.Create(&offer).Error)

	ledger := NewRedemptionLedger(db)
	evaluator := NewOfferEvaluator(db, ledger)
	lines := []PricedLine{cartLine(1, 1, 300)}

	_, err := evaluator.Evaluate("TWICE", lines, 9, openMonday)
	require.NoError(t, err)

	_, err = ledger.RecordUsage(nil, &offer, 9)
	require.NoError(t, err)
	_, err = evaluator.Evaluate("TWICE", lines, 9, openMonday)
	require.NoError(t, err)

	_, err = ledger.RecordUsage(nil, &offer, 9)
	require.NoError(t, err)
	_, err = evaluator.Evaluate("TWICE", lines, 9, openMonday)
	assert.True(t, errors.Is(err, ErrUsageLimitReached))
}

func TestEvaluateIsDryRun(t *testing.T) {
	db := setupTestDB(t)
	offer := models.Offer{
		Code: "ONCE", DiscountType: models.DiscountFlat, DiscountValue: 25,
		IsActive: true, MaxUsesPerUser: intPtr(1),
	}
	require.NoError(t, db.Create(&offer).Error)

	ledger := NewRedemptionLedger(db)
	evaluator := NewOfferEvaluator(db, ledger)
	lines := []PricedLine{cartLine(1, 1, 300)}

	for i := 0; i < 5; i++ {
		_, err := evaluator.Evaluate("ONCE", lines, 3, openMonday)
		require.NoError(t, err)
	}

	used, err := ledger.CurrentUsage(offer.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, used)
}

func TestEvaluateCategoryScope(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Offer{
		Code: "PIZZA10", DiscountType: models.DiscountPercentage, DiscountValue: 10,
		IsActive: true, ScopeType: models.ScopeCategory, ScopeID: uintPtr(1),
		MinOrderValue: floatPtr(200),
	}).Error)

	evaluator := newEvaluator(db)

	// category 1 lines total 300, category 2 line does not count
	lines := []PricedLine{
		cartLine(1, 1, 200),
		cartLine(2, 1, 100),
		cartLine(3, 2, 900),
	}
	result, err := evaluator.Evaluate("PIZZA10", lines, 1, openMonday)
	require.NoError(t, err)
	assert.Equal(t, "300", result.EligibleSubtotal.String())
	assert.Equal(t, "30", result.DiscountAmount.String())

	// only the out-of-scope line -> eligible subtotal 0 < min order 200
	_, err = evaluator.Evaluate("PIZZA10", []PricedLine{cartLine(3, 2, 900)}, 1, openMonday)
	assert.True(t, errors.Is(err, ErrBelowMinimumOrder))
}

func TestEvaluateItemScope(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Offer{
		Code: "ITEM5", DiscountType: models.DiscountPercentage, DiscountValue: 50,
		IsActive: true, ScopeType: models.ScopeItem, ScopeID: uintPtr(42),
	}).Error)

	lines := []PricedLine{
		cartLine(42, 1, 100),
		cartLine(7, 1, 400),
	}
	result, err := newEvaluator(db).Evaluate("ITEM5", lines, 1, openMonday)
	require.NoError(t, err)
	assert.Equal(t, "50", result.DiscountAmount.String())
}
