package simulation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Simulation is a saved landing-arrangement cost projection: the five
// cost buckets, the derived per-pilgrim cost and the selling price at
// the chosen margin.
type Simulation struct {
	ID                     int64           `json:"id"`
	SimulationName         string          `json:"simulation_name"`
	PackageType            string          `json:"package_type"`
	DurationDays           int             `json:"duration_days"`
	NumberOfPilgrims       int             `json:"number_of_pilgrims"`
	AccommodationCost      decimal.Decimal `json:"accommodation_cost"`
	TransportationCost     decimal.Decimal `json:"transportation_cost"`
	MealCost               decimal.Decimal `json:"meal_cost"`
	GuideCost              decimal.Decimal `json:"guide_cost"`
	MiscellaneousCost      decimal.Decimal `json:"miscellaneous_cost"`
	TotalCost              decimal.Decimal `json:"total_cost"`
	CostPerPilgrim         decimal.Decimal `json:"cost_per_pilgrim"`
	ProfitMargin           decimal.Decimal `json:"profit_margin"`
	SellingPricePerPilgrim decimal.Decimal `json:"selling_price_per_pilgrim"`
	CreatedBy              int64           `json:"created_by"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

type CreateSimulationInput struct {
	SimulationName     string          `json:"simulation_name" validate:"required"`
	PackageType        string          `json:"package_type" validate:"required,oneof=umrah haji"`
	DurationDays       int             `json:"duration_days" validate:"min=1"`
	NumberOfPilgrims   int             `json:"number_of_pilgrims" validate:"min=1"`
	AccommodationCost  decimal.Decimal `json:"accommodation_cost"`
	TransportationCost decimal.Decimal `json:"transportation_cost"`
	MealCost           decimal.Decimal `json:"meal_cost"`
	GuideCost          decimal.Decimal `json:"guide_cost"`
	MiscellaneousCost  decimal.Decimal `json:"miscellaneous_cost"`
	ProfitMargin       decimal.Decimal `json:"profit_margin"`
}
