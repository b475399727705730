package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type VehicleCategory string

const (
	VehicleCategoryCar  VehicleCategory = "CAR"
	VehicleCategoryVan  VehicleCategory = "VAN"
	VehicleCategoryBike VehicleCategory = "BIKE"
)

// firstAutomobileYear is the earliest acceptable model year.
const firstAutomobileYear = 1886

// Vehicle is a rentable catalog entry with an aggregate quantity.
// Individual units are not serialized; quantity tracks how many are on hand.
type Vehicle struct {
	ID          string          `json:"id"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	Year        int             `json:"year"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
	Quantity    int             `json:"quantity"`
	Category    VehicleCategory `json:"category"`
	Subtype     string          `json:"subtype"` // e.g. Sedan, Cargo Van, Mountain
}

// NewVehicle validates every field up front. No vehicle exists on failure.
func NewVehicle(id, brand, model string, year int, pricePerDay decimal.Decimal, quantity int, category VehicleCategory, subtype string) (*Vehicle, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("vehicle id cannot be empty")
	}
	if strings.TrimSpace(brand) == "" {
		return nil, NewValidationError("brand cannot be empty")
	}
	if strings.TrimSpace(model) == "" {
		return nil, NewValidationError("model cannot be empty")
	}
	if year < firstAutomobileYear {
		return nil, NewValidationError("year %d is not valid", year)
	}
	if !pricePerDay.IsPositive() {
		return nil, NewValidationError("price per day must be greater than 0")
	}
	if quantity < 0 {
		return nil, NewValidationError("quantity cannot be negative")
	}
	switch category {
	case VehicleCategoryCar, VehicleCategoryVan, VehicleCategoryBike:
	default:
		return nil, NewValidationError("unknown vehicle category: %s", category)
	}

	return &Vehicle{
		ID:          id,
		Brand:       brand,
		Model:       model,
		Year:        year,
		PricePerDay: pricePerDay,
		Quantity:    quantity,
		Category:    category,
		Subtype:     subtype,
	}, nil
}

// Available reports whether at least one unit is on hand.
func (v *Vehicle) Available() bool {
	return v.Quantity > 0
}

// RentOne takes one unit out of stock. Returns false when nothing is
// available; that is a normal business outcome, not an error.
func (v *Vehicle) RentOne() bool {
	if v.Quantity == 0 {
		return false
	}
	v.Quantity--
	return true
}

// ReturnOne puts one unit back into stock.
func (v *Vehicle) ReturnOne() {
	v.Quantity++
}

// AddQuantity adjusts stock by delta. Only an admin may do this, and the
// resulting quantity must not go negative.
func (v *Vehicle) AddQuantity(delta int, actor *User) error {
	if err := RequireRole(actor, RoleAdmin); err != nil {
		return err
	}
	if v.Quantity+delta < 0 {
		return NewValidationError("quantity cannot be negative after update")
	}
	v.Quantity += delta
	return nil
}

// RentalPrice returns the cost for the given number of days. Zero days is
// a zero-cost rental; the booking date invariant keeps days non-negative.
func (v *Vehicle) RentalPrice(days int) decimal.Decimal {
	return v.PricePerDay.Mul(decimal.NewFromInt(int64(days)))
}

// Description is the human-readable label shown in listings and emails.
func (v *Vehicle) Description() string {
	var label string
	switch v.Category {
	case VehicleCategoryCar:
		label = "Car"
	case VehicleCategoryVan:
		label = "Van"
	case VehicleCategoryBike:
		label = "Bike"
	}
	return fmt.Sprintf("%s: %s %s (%d), %s", label, v.Brand, v.Model, v.Year, v.Subtype)
}
