package accounts

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account models a chart of accounts node. The tree is formed through
// ParentID; balance is an administrative running total, not derived
// from posted entries.
type Account struct {
	ID        int64           `json:"id"`
	Code      string          `json:"account_code"`
	Name      string          `json:"account_name"`
	Type      string          `json:"account_type"`
	ParentID  *int64          `json:"parent_account_id"`
	Balance   decimal.Decimal `json:"balance"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
