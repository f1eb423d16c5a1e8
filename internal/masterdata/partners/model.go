package partners

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketingPartner earns a commission on bookings it refers.
type MarketingPartner struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	ContactPerson  string          `json:"contact_person"`
	Email          *string         `json:"email"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PartnerInput carries create fields.
type PartnerInput struct {
	Name           string          `json:"name" validate:"required"`
	ContactPerson  string          `json:"contact_person"`
	Email          *string         `json:"email" validate:"omitempty,email"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// PartnerPatch carries optional update fields; nil means leave as is.
type PartnerPatch struct {
	Name           *string          `json:"name"`
	ContactPerson  *string          `json:"contact_person"`
	Email          *string          `json:"email"`
	Phone          *string          `json:"phone"`
	Address        *string          `json:"address"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	IsActive       *bool            `json:"is_active"`
}
