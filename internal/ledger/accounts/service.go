package accounts

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/money"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Account, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Account, error) {
	return s.repo.Get(ctx, id)
}

// Create opens a new chart of accounts node with a zero balance. When a
// parent is supplied it must already exist; the check happens before any
// write so a failure leaves no row behind.
func (s *Service) Create(ctx context.Context, input CreateAccountInput) (Account, error) {
	if input.ParentID != nil {
		if _, err := s.repo.Get(ctx, *input.ParentID); err != nil {
			return Account{}, fmt.Errorf("parent account: %w", err)
		}
	}
	return s.repo.Create(ctx, Account{
		Code:     input.Code,
		Name:     input.Name,
		Type:     input.Type,
		ParentID: input.ParentID,
		Balance:  decimal.Zero,
		IsActive: true,
	})
}

// SetBalance overwrites the running balance unconditionally. This is an
// administrative override, not a recomputation from posted entries, and
// it accepts negative values.
func (s *Service) SetBalance(ctx context.Context, id int64, balance decimal.Decimal) (Account, error) {
	return s.repo.UpdateBalance(ctx, id, money.Round(balance))
}
