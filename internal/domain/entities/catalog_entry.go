package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CatalogEntry is a priced service the workshop offers. Line items copy its price
// when they are attached, so later price changes never touch existing orders.
//
// Storage model (DynamoDB):
//   - PK: id
//   - price is stored as a decimal string
type CatalogEntry struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type CatalogEntryPatch struct {
	Name   *string
	Price  *decimal.Decimal
	Active *bool
}

func (c CatalogEntry) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidation("name", "required")
	}
	if !c.Price.IsPositive() {
		return NewValidation("price", "must be greater than zero")
	}
	return nil
}

func (c *CatalogEntry) Apply(p CatalogEntryPatch) error {
	next := *c
	if p.Name != nil {
		next.Name = strings.TrimSpace(*p.Name)
	}
	if p.Price != nil {
		next.Price = *p.Price
	}
	if p.Active != nil {
		next.Active = *p.Active
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
