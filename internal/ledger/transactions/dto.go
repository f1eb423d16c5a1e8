package transactions

import "github.com/shopspring/decimal"

// EntryInput describes one requested debit/credit line.
type EntryInput struct {
	AccountID    int64           `json:"account_id" validate:"required"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	Description  *string         `json:"description"`
}

// CreateTransactionInput groups the fields required to post a
// financial transaction with its entries. The total amount is derived,
// never caller-supplied.
type CreateTransactionInput struct {
	Reference   string       `json:"transaction_reference" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Entries     []EntryInput `json:"entries"`
	CreatedBy   int64        `json:"created_by" validate:"required"`
	BookingID   *int64       `json:"package_booking_id"`
}
