package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
)

const recordUsageRetries = 3

// RedemptionLedger tracks per-(offer,user) usage counts and enforces the
// per-user redemption limit at write time. Reads are cheap and lock-free;
// the write path is a single conditional UPDATE so two concurrent
// confirmations can never both slip past the limit.
type RedemptionLedger struct {
	db *gorm.DB
}

func NewRedemptionLedger(db *gorm.DB) *RedemptionLedger {
	return &RedemptionLedger{db: db}
}

// CurrentUsage returns how many times the user has redeemed the offer.
// A missing row means zero redemptions.
func (l *RedemptionLedger) CurrentUsage(offerID, userID uint) (int, error) {
	var rec models.OfferRedemption
	err := l.db.Where("offer_id = ? AND user_id = ?", offerID, userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read redemption count: %w", err)
	}
	return rec.UsedCount, nil
}

// RecordUsage increments the usage counter for (offer, user) and returns the
// new count. The increment is conditional on the offer's MaxUsesPerUser, so
// under concurrent confirmations at most that many calls ever succeed; the
// losers get ErrUsageLimitReached. Pass the order-creation transaction as tx
// so the increment commits or rolls back with the order itself.
func (l *RedemptionLedger) RecordUsage(tx *gorm.DB, offer *models.Offer, userID uint) (int, error) {
	if tx == nil {
		tx = l.db
	}

	var lastErr error
	for attempt := 0; attempt < recordUsageRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 10 * time.Millisecond)
		}

		if err := l.ensureRow(tx, offer.ID, userID); err != nil {
			if isTransientConflict(err) {
				lastErr = err
				continue
			}
			return 0, err
		}

		q := tx.Model(&models.OfferRedemption{}).
			Where("offer_id = ? AND user_id = ?", offer.ID, userID)
		if offer.MaxUsesPerUser != nil {
			q = q.Where("used_count < ?", *offer.MaxUsesPerUser)
		}
		res := q.UpdateColumn("used_count", gorm.Expr("used_count + ?", 1))
		if res.Error != nil {
			if isTransientConflict(res.Error) {
				lastErr = res.Error
				continue
			}
			return 0, fmt.Errorf("failed to record offer usage: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return 0, ErrUsageLimitReached
		}

		var rec models.OfferRedemption
		if err := tx.Where("offer_id = ? AND user_id = ?", offer.ID, userID).First(&rec).Error; err != nil {
			return 0, fmt.Errorf("failed to read back redemption count: %w", err)
		}
		return rec.UsedCount, nil
	}

	return 0, fmt.Errorf("failed to record offer usage after %d attempts: %w", recordUsageRetries, lastErr)
}

// ensureRow creates the (offer, user) counter row with UsedCount 0 if it does
// not exist yet. A duplicate-key error from a concurrent creator is fine.
func (l *RedemptionLedger) ensureRow(tx *gorm.DB, offerID, userID uint) error {
	var count int64
	if err := tx.Model(&models.OfferRedemption{}).
		Where("offer_id = ? AND user_id = ?", offerID, userID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check redemption row: %w", err)
	}
	if count > 0 {
		return nil
	}

	rec := models.OfferRedemption{OfferID: offerID, UserID: userID, UsedCount: 0}
	if err := tx.Create(&rec).Error; err != nil {
		if isDuplicateKey(err) {
			return nil
		}
		return fmt.Errorf("failed to create redemption row: %w", err)
	}
	return nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}

// isTransientConflict matches lock contention errors worth a bounded retry
// (MySQL deadlocks, sqlite busy/locked).
func isTransientConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}
