package visitcities

import "time"

// VisitCity is a city that can appear on a package itinerary.
type VisitCity struct {
	ID          int64     `json:"id"`
	CityName    string    `json:"city_name"`
	Country     string    `json:"country"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VisitCityInput struct {
	CityName    string  `json:"city_name" validate:"required"`
	Country     string  `json:"country" validate:"required"`
	Description *string `json:"description"`
}
