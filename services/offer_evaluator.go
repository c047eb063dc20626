package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
)

var oneHundred = decimal.NewFromInt(100)

// EvaluatedOffer is the result of a successful dry-run evaluation. The
// discount is against the item subtotal only; free-delivery offers carry a
// zero discount and set WaiveDeliveryFee instead. Offer is the validated
// record the confirmation path hands to the ledger.
type EvaluatedOffer struct {
	Offer            models.Offer    `json:"offer"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	WaiveDeliveryFee bool            `json:"waive_delivery_fee"`
	EligibleSubtotal decimal.Decimal `json:"eligible_subtotal"`
}

// OfferEvaluator validates an offer code against a priced cart and the
// user's history. Evaluation is a pure read: the usage counter is only
// consulted here, never touched, so abandoned carts consume no quota.
type OfferEvaluator struct {
	db     *gorm.DB
	ledger *RedemptionLedger
}

func NewOfferEvaluator(db *gorm.DB, ledger *RedemptionLedger) *OfferEvaluator {
	return &OfferEvaluator{db: db, ledger: ledger}
}

// Evaluate runs the eligibility checks in a fixed order and stops at the
// first failure. Codes match case-insensitively.
func (e *OfferEvaluator) Evaluate(code string, lines []PricedLine, userID uint, at time.Time) (*EvaluatedOffer, error) {
	var offer models.Offer
	err := e.db.Where("LOWER(code) = LOWER(?)", strings.TrimSpace(code)).First(&offer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up offer: %w", err)
	}

	if !offer.IsActive {
		return nil, ErrOfferInactive
	}
	if offer.ValidFrom != nil && at.Before(*offer.ValidFrom) {
		return nil, ErrOfferNotYetValid
	}
	if offer.ValidTo != nil && at.After(*offer.ValidTo) {
		return nil, ErrOfferExpired
	}

	if offer.FirstOrderOnly {
		var prior int64
		err := e.db.Model(&models.Order{}).
			Where("user_id = ? AND status IN ?", userID, []string{OrderStatusConfirmed, OrderStatusCompleted}).
			Count(&prior).Error
		if err != nil {
			return nil, fmt.Errorf("failed to check order history: %w", err)
		}
		if prior > 0 {
			return nil, ErrNotFirstOrder
		}
	}

	if offer.MaxUsesPerUser != nil {
		used, err := e.ledger.CurrentUsage(offer.ID, userID)
		if err != nil {
			return nil, err
		}
		if used >= *offer.MaxUsesPerUser {
			return nil, ErrUsageLimitReached
		}
	}

	eligible := eligibleSubtotal(&offer, lines)
	if offer.MinOrderValue != nil {
		min := decimal.NewFromFloat(*offer.MinOrderValue)
		if eligible.LessThan(min) {
			return nil, ErrBelowMinimumOrder
		}
	}

	result := &EvaluatedOffer{
		Offer:            offer,
		DiscountAmount:   decimal.Zero,
		EligibleSubtotal: eligible,
	}

	switch offer.DiscountType {
	case models.DiscountPercentage:
		discount := eligible.Mul(decimal.NewFromFloat(offer.DiscountValue)).Div(oneHundred)
		if offer.MaxDiscountAmount != nil {
			cap := decimal.NewFromFloat(*offer.MaxDiscountAmount)
			if discount.GreaterThan(cap) {
				discount = cap
			}
		}
		if discount.GreaterThan(eligible) {
			discount = eligible
		}
		result.DiscountAmount = discount
	case models.DiscountFlat:
		discount := decimal.NewFromFloat(offer.DiscountValue)
		if discount.GreaterThan(eligible) {
			discount = eligible
		}
		result.DiscountAmount = discount
	case models.DiscountFreeDeliver:
		result.WaiveDeliveryFee = true
	default:
		return nil, fmt.Errorf("offer %s has unknown discount type %q", offer.Code, offer.DiscountType)
	}

	return result, nil
}

// eligibleSubtotal sums the cart lines the offer's scope allows to count.
// An unscoped offer sees the whole cart.
func eligibleSubtotal(offer *models.Offer, lines []PricedLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		if !lineInScope(offer, &line) {
			continue
		}
		total = total.Add(line.LineTotal)
	}
	return total
}

func lineInScope(offer *models.Offer, line *PricedLine) bool {
	switch offer.ScopeType {
	case models.ScopeCategory:
		return offer.ScopeID != nil && line.CategoryID == *offer.ScopeID
	case models.ScopeItem:
		return offer.ScopeID != nil && line.ItemID == *offer.ScopeID
	default:
		return true
	}
}
