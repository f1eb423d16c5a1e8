package pilgrims

import "time"

// Status follows the pilgrim lifecycle.
type Status string

const (
	StatusRegistered Status = "registered"
	StatusConfirmed  Status = "confirmed"
	StatusDeparted   Status = "departed"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Pilgrim represents a registered pilgrim. Passport numbers are unique.
type Pilgrim struct {
	ID                    int64     `json:"id"`
	FullName              string    `json:"full_name"`
	Email                 *string   `json:"email"`
	Phone                 string    `json:"phone"`
	PassportNumber        string    `json:"passport_number"`
	PassportExpiry        time.Time `json:"passport_expiry"`
	DateOfBirth           time.Time `json:"date_of_birth"`
	Address               string    `json:"address"`
	EmergencyContactName  string    `json:"emergency_contact_name"`
	EmergencyContactPhone string    `json:"emergency_contact_phone"`
	Status                Status    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
