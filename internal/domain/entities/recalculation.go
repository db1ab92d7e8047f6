package entities

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RecalculateTotal derives a work order's total from its line items: the exact
// sum of unitPrice*quantity over the active items that belong to workOrderID.
// Items of other orders and inactive items are ignored, so passing an unchanged
// set twice yields the same value.
func RecalculateTotal(workOrderID string, items []LineItem) decimal.Decimal {
	counted := lo.Filter(items, func(it LineItem, _ int) bool {
		return it.Active && it.WorkOrderID == workOrderID
	})
	return lo.Reduce(counted, func(acc decimal.Decimal, it LineItem, _ int) decimal.Decimal {
		return acc.Add(it.LineTotal())
	}, decimal.Zero)
}

// MergeLineItem overlays a pending write on a list read from storage, replacing
// the stored version of the same item or appending it when new.
func MergeLineItem(items []LineItem, changed LineItem) []LineItem {
	out := make([]LineItem, 0, len(items)+1)
	replaced := false
	for _, it := range items {
		if it.ID == changed.ID {
			out = append(out, changed)
			replaced = true
			continue
		}
		out = append(out, it)
	}
	if !replaced {
		out = append(out, changed)
	}
	return out
}
