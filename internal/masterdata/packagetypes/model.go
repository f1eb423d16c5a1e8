package packagetypes

import "time"

// PackageType classifies packages (e.g. Umrah Reguler, Haji Plus).
// Type names are unique.
type PackageType struct {
	ID          int64     `json:"id"`
	TypeName    string    `json:"type_name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PackageTypeInput struct {
	TypeName    string  `json:"type_name" validate:"required"`
	Description *string `json:"description"`
}
