package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
)

// SeedDefaults makes sure the rows the pricing core cannot run without
// exist: the settings singleton and a schedule row for every weekday.
// Existing rows are left alone.
func SeedDefaults(db *gorm.DB) error {
	var setting models.Setting
	err := db.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.Setting{
			Name:                "Feastly",
			DefaultDeliveryFee:  0,
			DeliveryTimeMinutes: 45,
			TaxPercent:          0,
			Timezone:            "UTC",
		}
		if err := db.Create(&setting).Error; err != nil {
			return fmt.Errorf("failed to seed settings: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to check settings: %w", err)
	}

	for weekday := 0; weekday <= 6; weekday++ {
		var day models.ScheduleDay
		err := db.Where("weekday = ?", weekday).First(&day).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			day = models.ScheduleDay{
				Weekday:   weekday,
				OpenTime:  "09:00",
				CloseTime: "22:00",
			}
			if err := db.Create(&day).Error; err != nil {
				return fmt.Errorf("failed to seed schedule for weekday %d: %w", weekday, err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to check schedule for weekday %d: %w", weekday, err)
		}
	}

	return nil
}
