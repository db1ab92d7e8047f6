package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a quantity of one catalog entry attached to one work order.
// UnitPrice is a snapshot taken when the entry is attached or re-selected.
// Line items are soft-deleted only, so historical totals can be rebuilt.
// Version is 0 until the item is first stored and grows by one on every write.
//
// Storage model (DynamoDB):
//   - PK: work_order_id (HASH) + id (RANGE), so a work order's items are read with
//     a strongly consistent Query
//   - GSI (id-index): id
type LineItem struct {
	ID             string          `json:"id"`
	WorkOrderID    string          `json:"work_order_id"`
	CatalogEntryID string          `json:"catalog_entry_id"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int64           `json:"version"`
}

// LineItemPatch is a partial update. Active must be set to true to touch an
// inactive item.
type LineItemPatch struct {
	CatalogEntryID *string
	Quantity       *int
	UnitPrice      *decimal.Decimal
	Active         *bool
}

func (p LineItemPatch) IsEmpty() bool {
	return p.CatalogEntryID == nil && p.Quantity == nil && p.UnitPrice == nil && p.Active == nil
}

func (p LineItemPatch) Reactivates() bool {
	return p.Active != nil && *p.Active
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return NewValidation("quantity", "must be greater than zero")
	}
	return nil
}

func ValidateUnitPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return NewValidation("unit_price", "must be greater than zero")
	}
	return nil
}
