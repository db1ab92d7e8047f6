package entities

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() Customer {
	return Customer{
		ID:       gofakeit.UUID(),
		Name:     "Maria Souza",
		Phone:    "11987654321",
		Document: "12345678901",
		Email:    "maria@example.com",
		Active:   true,
	}
}

func TestCustomer_Apply(t *testing.T) {
	c := validCustomer()
	require.NoError(t, c.Validate())

	require.NoError(t, c.Apply(CustomerPatch{Name: ptr("  Maria S. Souza "), Active: ptr(false)}))
	assert.Equal(t, "Maria S. Souza", c.Name)
	assert.False(t, c.Active)
	assert.Equal(t, "12345678901", c.Document)

	err := c.Apply(CustomerPatch{Email: ptr("not-an-email")})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "maria@example.com", c.Email)
}

func TestCustomer_Validate(t *testing.T) {
	c := validCustomer()
	c.Name = "Al"
	assert.ErrorIs(t, c.Validate(), ErrValidation)

	c = validCustomer()
	c.Phone = "123"
	assert.ErrorIs(t, c.Validate(), ErrValidation)

	c = validCustomer()
	c.Document = "123"
	assert.ErrorIs(t, c.Validate(), ErrValidation)

	c = validCustomer()
	c.Email = ""
	assert.NoError(t, c.Validate())
}

func TestVehicle_Validate(t *testing.T) {
	v := Vehicle{Plate: NormalizePlate(" abc1d23 "), Model: "Onix", Brand: "Chevrolet", Year: 2020, Type: VehicleTypeCar, CustomerID: "c-1"}
	require.NoError(t, v.Validate())
	assert.Equal(t, "ABC1D23", v.Plate)

	assert.True(t, IsValidPlate("ABC1234"))
	assert.False(t, IsValidPlate("AB12345"))

	require.NoError(t, v.Apply(VehiclePatch{Year: ptr(2021), Type: ptr(VehicleTypeUtility)}))
	assert.Equal(t, 2021, v.Year)

	assert.ErrorIs(t, v.Apply(VehiclePatch{Year: ptr(1800)}), ErrValidation)
	assert.ErrorIs(t, v.Apply(VehiclePatch{Type: ptr(VehicleType("BOAT"))}), ErrValidation)
	assert.Equal(t, 2021, v.Year)
}

func TestCatalogEntry_Apply(t *testing.T) {
	c := CatalogEntry{Name: "Oil change", Price: decimal.RequireFromString("79.90"), Active: true}
	require.NoError(t, c.Validate())

	require.NoError(t, c.Apply(CatalogEntryPatch{Price: ptr(decimal.RequireFromString("89.90"))}))
	assert.Equal(t, "89.90", c.Price.StringFixed(2))

	assert.ErrorIs(t, c.Apply(CatalogEntryPatch{Price: ptr(decimal.Zero)}), ErrValidation)
	assert.ErrorIs(t, c.Apply(CatalogEntryPatch{Name: ptr(" ")}), ErrValidation)
}

func TestLineItem(t *testing.T) {
	li := LineItem{UnitPrice: decimal.RequireFromString("79.90"), Quantity: 2}
	assert.Equal(t, "159.80", li.LineTotal().StringFixed(2))

	assert.ErrorIs(t, ValidateQuantity(0), ErrValidation)
	assert.ErrorIs(t, ValidateQuantity(-3), ErrValidation)
	assert.NoError(t, ValidateQuantity(1))
	assert.ErrorIs(t, ValidateUnitPrice(decimal.Zero), ErrValidation)

	assert.True(t, LineItemPatch{}.IsEmpty())
	assert.False(t, LineItemPatch{Active: ptr(false)}.Reactivates())
	assert.True(t, LineItemPatch{Active: ptr(true)}.Reactivates())
}

func TestErrorKinds(t *testing.T) {
	nf := NewNotFound("work order", "wo-1")
	assert.ErrorIs(t, nf, ErrNotFound)
	assert.EqualError(t, nf, "work order not found")
	assert.NotErrorIs(t, nf, ErrBusinessRule)

	assert.ErrorIs(t, ErrDeleteCompletedOrder, ErrBusinessRule)
	assert.ErrorIs(t, NewValidation("x", "y"), ErrValidation)
}
