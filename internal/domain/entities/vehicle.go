package entities

import (
	"regexp"
	"strings"
	"time"
)

type VehicleType string

const (
	VehicleTypeCar        VehicleType = "CAR"
	VehicleTypeMotorcycle VehicleType = "MOTORCYCLE"
	VehicleTypeTruck      VehicleType = "TRUCK"
	VehicleTypeUtility    VehicleType = "UTILITY"
)

func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleTypeCar, VehicleTypeMotorcycle, VehicleTypeTruck, VehicleTypeUtility:
		return true
	}
	return false
}

// Mercosul plate: ABC1D23 (also accepts the legacy ABC1234).
var platePattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)

const (
	minVehicleYear = 1900
	maxVehicleYear = 2100
)

// Vehicle belongs to exactly one customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (customer_id-index): customer_id
//   - unique_keys item "vehicle#plate#<plate>" keeps the plate globally unique
type Vehicle struct {
	ID         string      `json:"id"`
	Plate      string      `json:"plate"`
	Model      string      `json:"model"`
	Brand      string      `json:"brand"`
	Year       int         `json:"year"`
	Type       VehicleType `json:"type"`
	CustomerID string      `json:"customer_id"`
	Active     bool        `json:"active"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type VehiclePatch struct {
	Model  *string
	Brand  *string
	Year   *int
	Type   *VehicleType
	Active *bool
}

func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

func IsValidPlate(plate string) bool {
	return platePattern.MatchString(plate)
}

func (v Vehicle) Validate() error {
	if !IsValidPlate(v.Plate) {
		return NewValidation("plate", "must follow the Mercosul pattern")
	}
	if strings.TrimSpace(v.Model) == "" {
		return NewValidation("model", "required")
	}
	if strings.TrimSpace(v.Brand) == "" {
		return NewValidation("brand", "required")
	}
	if v.Year < minVehicleYear || v.Year > maxVehicleYear {
		return NewValidation("year", "must be between 1900 and 2100")
	}
	if !v.Type.IsValid() {
		return NewValidation("type", "unknown vehicle type")
	}
	if strings.TrimSpace(v.CustomerID) == "" {
		return NewValidation("customer_id", "required")
	}
	return nil
}

func (v *Vehicle) Apply(p VehiclePatch) error {
	next := *v
	if p.Model != nil {
		next.Model = strings.TrimSpace(*p.Model)
	}
	if p.Brand != nil {
		next.Brand = strings.TrimSpace(*p.Brand)
	}
	if p.Year != nil {
		next.Year = *p.Year
	}
	if p.Type != nil {
		next.Type = *p.Type
	}
	if p.Active != nil {
		next.Active = *p.Active
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*v = next
	return nil
}
