package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastly/ordering-app/models"
)

func TestResolveOpenWithinHours(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, 0, 40)
	seedOpenSchedule(t, db)

	resolver := NewAvailabilityResolver(db)
	decision, err := resolver.Resolve(openMonday, "")
	require.NoError(t, err)

	assert.Equal(t, StoreOpen, decision.State)
	assert.True(t, decision.IsOpen())
	assert.Equal(t, 40.0, decision.DeliveryFee)
	assert.Equal(t, 45, decision.DeliveryTimeMinutes)
}

func TestResolveOutsideHours(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, 0, 40)
	seedOpenSchedule(t, db)

	resolver := NewAvailabilityResolver(db)

	// Monday 23:00, schedule closes 22:00
	lateMonday := time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)
	decision, err := resolver.Resolve(lateMonday, "")
	require.NoError(t, err)
	assert.Equal(t, StoreClosedHours, decision.State)

	// close_time itself is already outside the half-open window
	atClose, err := resolver.Resolve(time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	assert.Equal(t, StoreClosedHours, atClose.State)

	// open_time is inside
	atOpen, err := resolver.Resolve(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	assert.Equal(t, StoreOpen, atOpen.State)
}

func TestResolveClosedWeekday(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, 0, 40)
	seedOpenSchedule(t, db)
	require.NoError(t, db.Model(&models.ScheduleDay{}).
		Where("weekday = ?", 1).
		Update("is_closed", true).Error)

	resolver := NewAvailabilityResolver(db)
	decision, err := resolver.Resolve(openMonday, "")
	require.NoError(t, err)
	assert.Equal(t, StoreClosedHours, decision.State)
}

func TestResolveHolidayOverridesHours(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, 0, 40)
	seedOpenSchedule(t, db)
	require.NoError(t, db.Create(&models.Holiday{
		Name: "Founders Day",
		Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}).Error)

	resolver := NewAvailabilityResolver(db)
	decision, err := resolver.Resolve(openMonday, "")
	require.NoError(t, err)
	assert.Equal(t, StoreClosedHoliday, decision.State)
	assert.Equal(t, "Founders Day", decision.Reason)
}

func TestResolveManualClosureOverridesEverything(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, 0, 40)
	seedOpenSchedule(t, db)
	require.NoError(t, db.Create(&models.Holiday{
		Name: "Founders Day",
		Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, db.Create(&models.StoreClosure{
		IsClosed: true,
		Reason:   "kitchen flooding",
		ClosedBy: 1,
	}).Error)

	resolver := NewAvailabilityResolver(db)
	decision, err := resolver.Resolve(openMonday, "")
	require.NoError(t, err)
	assert.Equal(t, StoreClosedManual, decision.State)
	assert.Equal(t, "kitchen flooding", decision.Reason)
}

func TestResolveReopenedAfterClosure(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, 0, 40)
	seedOpenSchedule(t, db)
	require.NoError(t, db.Create(&models.StoreClosure{IsClosed: true, Reason: "short staffed", ClosedBy: 1}).Error)
	require.NoError(t, db.Create(&models.StoreClosure{IsClosed: false, ClosedBy: 1}).Error)

	resolver := NewAvailabilityResolver(db)
	decision, err := resolver.Resolve(openMonday, "")
	require.NoError(t, err)
	assert.Equal(t, StoreOpen, decision.State)
}

func TestResolveMissingScheduleDayIsAFault(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, 0, 40)
	// no schedule rows at all

	resolver := NewAvailabilityResolver(db)
	_, err := resolver.Resolve(openMonday, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScheduleNotConfigured))
}

func TestResolveLocationFeeWinsOverDefault(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, 0, 40)
	seedOpenSchedule(t, db)
	require.NoError(t, db.Create(&models.Location{
		Area:                "Riverside",
		DeliveryFee:         25,
		DeliveryTimeMinutes: 30,
	}).Error)

	resolver := NewAvailabilityResolver(db)

	matched, err := resolver.Resolve(openMonday, "riverside")
	require.NoError(t, err)
	assert.Equal(t, 25.0, matched.DeliveryFee)
	assert.Equal(t, 30, matched.DeliveryTimeMinutes)

	unmatched, err := resolver.Resolve(openMonday, "Hilltop")
	require.NoError(t, err)
	assert.Equal(t, 40.0, unmatched.DeliveryFee)
	assert.Equal(t, 45, unmatched.DeliveryTimeMinutes)
}
