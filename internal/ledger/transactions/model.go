package transactions

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialTransaction is a posted set of ledger entries. Transactions
// are immutable once created; there is no update or delete path.
type FinancialTransaction struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"transaction_date"`
	Reference   string          `json:"transaction_reference"`
	Description string          `json:"description"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedBy   int64           `json:"created_by"`
	BookingID   *int64          `json:"package_booking_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TransactionEntry is a single debit/credit line. The engine does not
// force debit and credit to be mutually exclusive.
type TransactionEntry struct {
	ID            int64           `json:"id"`
	TransactionID int64           `json:"transaction_id"`
	AccountID     int64           `json:"account_id"`
	DebitAmount   decimal.Decimal `json:"debit_amount"`
	CreditAmount  decimal.Decimal `json:"credit_amount"`
	Description   *string         `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}

// JournalRow is one line of the chronological journal report: an entry
// joined to its parent transaction and account. A null entry description
// is surfaced as an empty string, never as null.
type JournalRow struct {
	TransactionID int64           `json:"transaction_id"`
	Date          time.Time       `json:"transaction_date"`
	Reference     string          `json:"transaction_reference"`
	AccountName   string          `json:"account_name"`
	AccountCode   string          `json:"account_code"`
	DebitAmount   decimal.Decimal `json:"debit_amount"`
	CreditAmount  decimal.Decimal `json:"credit_amount"`
	Description   string          `json:"description"`
}

// JournalFilter bounds the report by transaction date, both sides
// inclusive and optional.
type JournalFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}
