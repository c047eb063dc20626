package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/feastly/ordering-app/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps the in-memory database alive and serializes
	// writes, which is what the concurrency tests rely on.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Item{},
		&models.ItemSize{},
		&models.AddOn{},
		&models.Offer{},
		&models.OfferRedemption{},
		&models.StoreClosure{},
		&models.ScheduleDay{},
		&models.Holiday{},
		&models.Location{},
		&models.Setting{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemAddOn{},
	))

	return db
}

// seedSetting creates the settings singleton with the given tax and fee.
func seedSetting(t *testing.T, db *gorm.DB, taxPercent, deliveryFee float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Setting{
		Name:                "Test Kitchen",
		DefaultDeliveryFee:  deliveryFee,
		DeliveryTimeMinutes: 45,
		TaxPercent:          taxPercent,
		Timezone:            "UTC",
	}).Error)
}

// seedOpenSchedule opens every weekday 09:00-22:00.
func seedOpenSchedule(t *testing.T, db *gorm.DB) {
	t.Helper()
	for weekday := 0; weekday <= 6; weekday++ {
		require.NoError(t, db.Create(&models.ScheduleDay{
			Weekday:   weekday,
			OpenTime:  "09:00",
			CloseTime: "22:00",
		}).Error)
	}
}

// seedMenu creates a category with one item that has two sizes and two
// add-ons. Returns the item.
func seedMenu(t *testing.T, db *gorm.DB, categoryName, itemName string, regularPrice, largePrice float64) models.Item {
	t.Helper()

	category := models.Category{Name: categoryName}
	require.NoError(t, db.Create(&category).Error)

	item := models.Item{
		CategoryID: category.ID,
		Name:       itemName,
		IsActive:   true,
		Sizes: []models.ItemSize{
			{Label: "regular", Price: regularPrice},
			{Label: "large", Price: largePrice},
		},
		AddOns: []models.AddOn{
			{Name: "extra cheese", Price: 20},
			{Name: "olives", Price: 15},
		},
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

// noon on an open weekday (Monday 2026-03-02)
var openMonday = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
