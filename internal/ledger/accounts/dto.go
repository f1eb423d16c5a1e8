package accounts

import "github.com/shopspring/decimal"

// CreateAccountInput carries the fields accepted when opening a new
// chart of accounts node.
type CreateAccountInput struct {
	Code     string `json:"account_code" validate:"required"`
	Name     string `json:"account_name" validate:"required"`
	Type     string `json:"account_type" validate:"required"`
	ParentID *int64 `json:"parent_account_id"`
}

// SetBalanceInput wraps the administrative balance override. Negative
// values are accepted.
type SetBalanceInput struct {
	Balance decimal.Decimal `json:"balance"`
}
