package identity

import "time"

// TravelIdentity is the agency profile. The table holds a single row;
// saving replaces whatever is there.
type TravelIdentity struct {
	ID         int64     `json:"id"`
	TravelName string    `json:"travel_name"`
	LogoURL    *string   `json:"logo_url"`
	Address    string    `json:"address"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Theme      string    `json:"theme"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type IdentityInput struct {
	TravelName string  `json:"travel_name" validate:"required"`
	LogoURL    *string `json:"logo_url"`
	Address    string  `json:"address" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      string  `json:"phone" validate:"required"`
	Theme      string  `json:"theme" validate:"omitempty,oneof=purple green blue"`
}
