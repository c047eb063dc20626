package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
)

// AvailabilityDecision is the answer to "can the restaurant take this order
// right now, and on what delivery terms". It is recomputed fresh on every
// call from the closure/holiday/schedule rows, never cached.
type AvailabilityDecision struct {
	State               string  `json:"state"`
	Reason              string  `json:"reason,omitempty"`
	DeliveryFee         float64 `json:"delivery_fee"`
	DeliveryTimeMinutes int     `json:"delivery_time_minutes"`
}

func (d *AvailabilityDecision) IsOpen() bool {
	return d.State == StoreOpen
}

// AvailabilityResolver decides store availability from three independent
// sources, highest precedence first: manual closure, holiday calendar,
// weekly schedule.
type AvailabilityResolver struct {
	db *gorm.DB
}

func NewAvailabilityResolver(db *gorm.DB) *AvailabilityResolver {
	return &AvailabilityResolver{db: db}
}

// Resolve computes availability at the given instant for an order delivered
// to area. A zero at means "now". The instant is interpreted in the
// restaurant's configured timezone.
func (r *AvailabilityResolver) Resolve(at time.Time, area string) (*AvailabilityDecision, error) {
	var setting models.Setting
	if err := r.db.First(&setting).Error; err != nil {
		return nil, fmt.Errorf("failed to load restaurant settings: %w", err)
	}

	if at.IsZero() {
		at = time.Now()
	}
	loc, err := time.LoadLocation(setting.Timezone)
	if err != nil {
		loc = time.UTC
	}
	local := at.In(loc)

	decision := &AvailabilityDecision{
		State:               StoreOpen,
		DeliveryFee:         setting.DefaultDeliveryFee,
		DeliveryTimeMinutes: setting.DeliveryTimeMinutes,
	}

	// A matched location record wins over the restaurant-wide defaults.
	if area != "" {
		var location models.Location
		err := r.db.Where("LOWER(area) = LOWER(?)", strings.TrimSpace(area)).First(&location).Error
		if err == nil {
			decision.DeliveryFee = location.DeliveryFee
			decision.DeliveryTimeMinutes = location.DeliveryTimeMinutes
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up delivery location: %w", err)
		}
	}

	// 1. Manual override, latest row wins.
	var closure models.StoreClosure
	err = r.db.Order("id desc").First(&closure).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load store closure state: %w", err)
	}
	if err == nil && closure.IsClosed {
		decision.State = StoreClosedManual
		decision.Reason = closure.Reason
		return decision, nil
	}

	// 2. Holiday calendar, matched on the local civil date.
	year, month, day := local.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	var holiday models.Holiday
	err = r.db.Where("date >= ? AND date < ?", dayStart, dayStart.AddDate(0, 0, 1)).First(&holiday).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check holiday calendar: %w", err)
	}
	if err == nil {
		decision.State = StoreClosedHoliday
		decision.Reason = holiday.Name
		return decision, nil
	}

	// 3. Weekly schedule. Every weekday must have a row; a missing one is a
	// data fault the operator has to fix, not a closed day.
	var schedule models.ScheduleDay
	err = r.db.Where("weekday = ?", int(local.Weekday())).First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: weekday %d", ErrScheduleNotConfigured, int(local.Weekday()))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly schedule: %w", err)
	}

	if schedule.IsClosed {
		decision.State = StoreClosedHours
		decision.Reason = "closed on " + local.Weekday().String()
		return decision, nil
	}

	openMin, err := parseTimeOfDay(schedule.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: bad open_time %q", ErrScheduleNotConfigured, schedule.OpenTime)
	}
	closeMin, err := parseTimeOfDay(schedule.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: bad close_time %q", ErrScheduleNotConfigured, schedule.CloseTime)
	}

	nowMin := local.Hour()*60 + local.Minute()
	if nowMin < openMin || nowMin >= closeMin {
		decision.State = StoreClosedHours
		decision.Reason = fmt.Sprintf("open %s to %s", schedule.OpenTime, schedule.CloseTime)
		return decision, nil
	}

	return decision, nil
}

// parseTimeOfDay converts "HH:MM" to minutes since midnight.
func parseTimeOfDay(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour*60 + minute, nil
}
