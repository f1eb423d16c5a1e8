package facilities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Facility is a bookable resource (hotel, tent camp, transport fleet)
// with a per-person cost used by the cost simulations.
type Facility struct {
	ID            int64           `json:"id"`
	FacilityName  string          `json:"facility_name"`
	FacilityType  string          `json:"facility_type"`
	Location      string          `json:"location"`
	Capacity      int             `json:"capacity"`
	CostPerPerson decimal.Decimal `json:"cost_per_person"`
	Description   *string         `json:"description"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type FacilityInput struct {
	FacilityName  string          `json:"facility_name" validate:"required"`
	FacilityType  string          `json:"facility_type" validate:"required"`
	Location      string          `json:"location" validate:"required"`
	Capacity      int             `json:"capacity" validate:"min=0"`
	CostPerPerson decimal.Decimal `json:"cost_per_person"`
	Description   *string         `json:"description"`
}
