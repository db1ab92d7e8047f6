package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(id, order, price string, qty int, active bool) LineItem {
	return LineItem{ID: id, WorkOrderID: order, UnitPrice: decimal.RequireFromString(price), Quantity: qty, Active: active}
}

func TestRecalculateTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []LineItem
		want  string
	}{
		{name: "no items", items: nil, want: "0"},
		{name: "single item", items: []LineItem{item("a", "wo-1", "79.90", 2, true)}, want: "159.80"},
		{
			name: "inactive items ignored",
			items: []LineItem{
				item("a", "wo-1", "79.90", 2, true),
				item("b", "wo-1", "500", 1, false),
			},
			want: "159.80",
		},
		{
			name: "items of other orders ignored",
			items: []LineItem{
				item("a", "wo-1", "10.10", 3, true),
				item("b", "wo-2", "99.99", 1, true),
			},
			want: "30.30",
		},
		{
			name: "no floating point drift",
			items: []LineItem{
				item("a", "wo-1", "0.1", 1, true),
				item("b", "wo-1", "0.2", 1, true),
			},
			want: "0.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RecalculateTotal("wo-1", tt.items)
			assert.Truef(t, got.Equal(decimal.RequireFromString(tt.want)), "want %s got %s", tt.want, got)
		})
	}
}

func TestRecalculateTotal_Idempotent(t *testing.T) {
	items := []LineItem{item("a", "wo-1", "12.34", 7, true), item("b", "wo-1", "0.01", 3, true)}
	first := RecalculateTotal("wo-1", items)
	second := RecalculateTotal("wo-1", items)
	assert.True(t, first.Equal(second))
}

func TestMergeLineItem(t *testing.T) {
	stored := []LineItem{item("a", "wo-1", "10", 1, true), item("b", "wo-1", "20", 1, true)}

	replaced := MergeLineItem(stored, item("b", "wo-1", "20", 1, false))
	assert.Len(t, replaced, 2)
	assert.False(t, replaced[1].Active)
	assert.True(t, stored[1].Active, "input slice must not be modified")

	appended := MergeLineItem(stored, item("c", "wo-1", "5", 2, true))
	assert.Len(t, appended, 3)
	assert.True(t, RecalculateTotal("wo-1", appended).Equal(decimal.NewFromInt(40)))
}
