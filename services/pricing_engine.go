package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
)

// Order lifecycle states
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

var (
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
)

// PriceRequest is one pricing call: a cart, an optional offer code, the
// ordering user and the delivery area. A zero At means "now".
type PriceRequest struct {
	Lines     []CartLine `json:"items" binding:"required"`
	OfferCode string     `json:"offer_code"`
	UserID    uint       `json:"-"`
	Area      string     `json:"area"`
	At        time.Time  `json:"-"`
}

// PricedOrder is the full breakdown for one cart. It is computed fresh per
// call and never persisted by the engine; the order-creation path copies it
// into an Order row.
type PricedOrder struct {
	Lines               []PricedLine    `json:"lines"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	DeliveryFee         decimal.Decimal `json:"delivery_fee"`
	TaxAmount           decimal.Decimal `json:"tax_amount"`
	GrandTotal          decimal.Decimal `json:"grand_total"`
	OfferCode           string          `json:"offer_code,omitempty"`
	DeliveryTimeMinutes int             `json:"delivery_time_minutes"`

	// AppliedOffer is the validated offer for the confirmation path to hand
	// to the ledger. Not part of the response body.
	AppliedOffer *models.Offer `json:"-"`
}

// PricingEngine combines cart prices, availability, offer discount, delivery
// fee and tax into one deterministic breakdown. All arithmetic is decimal;
// rounding to two places happens once per output figure, at the end.
type PricingEngine struct {
	db           *gorm.DB
	availability *AvailabilityResolver
	offers       *OfferEvaluator
}

func NewPricingEngine(db *gorm.DB, availability *AvailabilityResolver, offers *OfferEvaluator) *PricingEngine {
	return &PricingEngine{db: db, availability: availability, offers: offers}
}

// Price either fully succeeds or fails with one discriminated rejection;
// it never returns a partial breakdown. It performs no writes, so the same
// request prices identically until the underlying data changes.
func (p *PricingEngine) Price(req PriceRequest) (*PricedOrder, error) {
	if len(req.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	at := req.At
	if at.IsZero() {
		at = time.Now()
	}

	lines, subtotal, err := p.resolveLines(req.Lines)
	if err != nil {
		return nil, err
	}

	decision, err := p.availability.Resolve(at, req.Area)
	if err != nil {
		return nil, err
	}
	if !decision.IsOpen() {
		return nil, &StoreClosedError{State: decision.State, Reason: decision.Reason}
	}

	priced := &PricedOrder{
		Lines:               lines,
		Subtotal:            subtotal,
		DiscountAmount:      decimal.Zero,
		DeliveryFee:         decimal.NewFromFloat(decision.DeliveryFee),
		DeliveryTimeMinutes: decision.DeliveryTimeMinutes,
	}

	// A supplied code is honored or the whole call fails; customers who
	// typed a code expect it applied or explained.
	if req.OfferCode != "" {
		evaluated, err := p.offers.Evaluate(req.OfferCode, lines, req.UserID, at)
		if err != nil {
			return nil, err
		}
		priced.DiscountAmount = evaluated.DiscountAmount
		priced.OfferCode = evaluated.Offer.Code
		priced.AppliedOffer = &evaluated.Offer
		if evaluated.WaiveDeliveryFee {
			priced.DeliveryFee = decimal.Zero
		}
	}

	var setting models.Setting
	if err := p.db.First(&setting).Error; err != nil {
		return nil, fmt.Errorf("failed to load restaurant settings: %w", err)
	}

	taxable := subtotal.Sub(priced.DiscountAmount)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	taxRate := decimal.NewFromFloat(setting.TaxPercent).Div(oneHundred)

	priced.Subtotal = subtotal.Round(2)
	priced.DiscountAmount = priced.DiscountAmount.Round(2)
	priced.DeliveryFee = priced.DeliveryFee.Round(2)
	priced.TaxAmount = taxable.Mul(taxRate).Round(2)
	priced.GrandTotal = taxable.Add(priced.TaxAmount).Add(priced.DeliveryFee).Round(2)

	return priced, nil
}

// resolveLines looks up current menu prices for every cart line and returns
// the priced lines plus the cart subtotal.
func (p *PricingEngine) resolveLines(lines []CartLine) ([]PricedLine, decimal.Decimal, error) {
	priced := make([]PricedLine, 0, len(lines))
	subtotal := decimal.Zero

	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, decimal.Zero, fmt.Errorf("%w: quantity must be at least 1 for item %d", ErrMenuItemUnavailable, line.ItemID)
		}

		var item models.Item
		if err := p.db.First(&item, line.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, decimal.Zero, fmt.Errorf("%w: item %d", ErrMenuItemNotFound, line.ItemID)
			}
			return nil, decimal.Zero, fmt.Errorf("failed to load item %d: %w", line.ItemID, err)
		}
		if !item.IsActive {
			return nil, decimal.Zero, fmt.Errorf("%w: item %d", ErrMenuItemUnavailable, item.ID)
		}

		var size models.ItemSize
		if err := p.db.Where("id = ? AND item_id = ?", line.SizeID, line.ItemID).First(&size).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, decimal.Zero, fmt.Errorf("%w: size %d for item %d", ErrMenuItemNotFound, line.SizeID, line.ItemID)
			}
			return nil, decimal.Zero, fmt.Errorf("failed to load size %d: %w", line.SizeID, err)
		}

		unitPrice := decimal.NewFromFloat(size.Price)
		var addOns []PricedAddOn
		if len(line.AddOnIDs) > 0 {
			var rows []models.AddOn
			if err := p.db.Where("id IN ? AND item_id = ?", line.AddOnIDs, line.ItemID).Find(&rows).Error; err != nil {
				return nil, decimal.Zero, fmt.Errorf("failed to load add-ons for item %d: %w", line.ItemID, err)
			}
			if len(rows) != len(line.AddOnIDs) {
				return nil, decimal.Zero, fmt.Errorf("%w: add-on for item %d", ErrMenuItemNotFound, line.ItemID)
			}
			for _, row := range rows {
				price := decimal.NewFromFloat(row.Price)
				addOns = append(addOns, PricedAddOn{AddOnID: row.ID, Name: row.Name, UnitPrice: price})
				unitPrice = unitPrice.Add(price)
			}
		}

		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		priced = append(priced, PricedLine{
			ItemID:     item.ID,
			CategoryID: item.CategoryID,
			ItemName:   item.Name,
			SizeID:     size.ID,
			SizeLabel:  size.Label,
			Quantity:   line.Quantity,
			UnitPrice:  unitPrice,
			AddOns:     addOns,
			LineTotal:  lineTotal,
			Notes:      line.Notes,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	return priced, subtotal, nil
}
