package packages

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category distinguishes the two pilgrimage programs.
type Category string

const (
	CategoryUmrah Category = "umrah"
	CategoryHaji  Category = "haji"
)

// Package is a sellable pilgrimage program with fixed dates and pricing.
type Package struct {
	ID              int64           `json:"id"`
	PackageName     string          `json:"package_name"`
	PackageType     Category        `json:"package_type"`
	PackageTypeID   int64           `json:"package_type_id"`
	Description     *string         `json:"description"`
	DurationDays    int             `json:"duration_days"`
	BasePrice       decimal.Decimal `json:"base_price"`
	MaxParticipants int             `json:"max_participants"`
	DepartureDate   time.Time       `json:"departure_date"`
	ReturnDate      time.Time       `json:"return_date"`
	Itinerary       *string         `json:"itinerary"`
	Inclusions      *string         `json:"inclusions"`
	Exclusions      *string         `json:"exclusions"`
	TermsConditions *string         `json:"terms_conditions"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type CreatePackageInput struct {
	PackageName     string          `json:"package_name" validate:"required"`
	PackageType     Category        `json:"package_type" validate:"required,oneof=umrah haji"`
	PackageTypeID   int64           `json:"package_type_id" validate:"required"`
	Description     *string         `json:"description"`
	DurationDays    int             `json:"duration_days" validate:"min=1"`
	BasePrice       decimal.Decimal `json:"base_price"`
	MaxParticipants int             `json:"max_participants" validate:"min=1"`
	DepartureDate   time.Time       `json:"departure_date" validate:"required"`
	ReturnDate      time.Time       `json:"return_date" validate:"required"`
	Itinerary       *string         `json:"itinerary"`
	Inclusions      *string         `json:"inclusions"`
	Exclusions      *string         `json:"exclusions"`
	TermsConditions *string         `json:"terms_conditions"`
}
