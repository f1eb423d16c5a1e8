package pilgrims

import "time"

// PilgrimInput is shared by create and update.
type PilgrimInput struct {
	FullName              string    `json:"full_name" validate:"required"`
	Email                 *string   `json:"email" validate:"omitempty,email"`
	Phone                 string    `json:"phone" validate:"required"`
	PassportNumber        string    `json:"passport_number" validate:"required"`
	PassportExpiry        time.Time `json:"passport_expiry" validate:"required"`
	DateOfBirth           time.Time `json:"date_of_birth" validate:"required"`
	Address               string    `json:"address"`
	EmergencyContactName  string    `json:"emergency_contact_name"`
	EmergencyContactPhone string    `json:"emergency_contact_phone"`
	Status                Status    `json:"status"`
}
