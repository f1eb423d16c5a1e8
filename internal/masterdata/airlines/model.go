package airlines

import "time"

// Airline carries pilgrims on departures. Codes are unique (IATA style).
type Airline struct {
	ID          int64     `json:"id"`
	AirlineName string    `json:"airline_name"`
	AirlineCode string    `json:"airline_code"`
	ContactInfo *string   `json:"contact_info"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AirlineInput struct {
	AirlineName string  `json:"airline_name" validate:"required"`
	AirlineCode string  `json:"airline_code" validate:"required"`
	ContactInfo *string `json:"contact_info"`
}
