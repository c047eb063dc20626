package services

import (
	"github.com/shopspring/decimal"
)

// CartLine is one submitted cart entry: an item in a chosen size with
// optional add-ons. Quantities and ids only; prices are always resolved
// from the menu at pricing time.
type CartLine struct {
	ItemID   uint   `json:"item_id" binding:"required"`
	SizeID   uint   `json:"size_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	AddOnIDs []uint `json:"add_on_ids"`
	Notes    string `json:"notes"`
}

// PricedAddOn is an add-on with its unit price fixed at pricing time.
type PricedAddOn struct {
	AddOnID   uint            `json:"add_on_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// PricedLine is a cart line after menu lookup: unit price is the size price
// plus all add-on prices, line total is unit price times quantity.
// CategoryID is carried for offer scope matching.
type PricedLine struct {
	ItemID     uint            `json:"item_id"`
	CategoryID uint            `json:"category_id"`
	ItemName   string          `json:"item_name"`
	SizeID     uint            `json:"size_id"`
	SizeLabel  string          `json:"size_label"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	AddOns     []PricedAddOn   `json:"add_ons,omitempty"`
	LineTotal  decimal.Decimal `json:"line_total"`
	Notes      string          `json:"notes,omitempty"`
}
