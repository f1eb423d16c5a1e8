package banks

import "time"

// Bank is a payout or collection account the agency operates.
type Bank struct {
	ID                int64     `json:"id"`
	BankName          string    `json:"bank_name"`
	AccountNumber     string    `json:"account_number"`
	AccountHolderName string    `json:"account_holder_name"`
	Branch            string    `json:"branch"`
	SwiftCode         *string   `json:"swift_code"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type BankInput struct {
	BankName          string  `json:"bank_name" validate:"required"`
	AccountNumber     string  `json:"account_number" validate:"required"`
	AccountHolderName string  `json:"account_holder_name" validate:"required"`
	Branch            string  `json:"branch" validate:"required"`
	SwiftCode         *string `json:"swift_code"`
}
