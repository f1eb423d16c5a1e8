package transactions

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
	"github.com/mabrur-erp/mabrur-erp/internal/platform/money"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *Service) List(ctx context.Context) ([]FinancialTransaction, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (FinancialTransaction, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Entries(ctx context.Context, transactionID int64) ([]TransactionEntry, error) {
	if _, err := s.repo.Get(ctx, transactionID); err != nil {
		return nil, err
	}
	return s.repo.ListEntries(ctx, transactionID)
}

// Create posts a financial transaction with its entries. Every account
// referenced by an entry must exist; the check is a single
// set-membership query, so the error does not name the missing id.
// The total is derived as max(sum of debits, sum of credits) — debits
// and credits are deliberately not required to balance, matching the
// ledger this system replaced.
func (s *Service) Create(ctx context.Context, input CreateTransactionInput) (FinancialTransaction, error) {
	if len(input.Entries) > 0 {
		seen := make(map[int64]struct{}, len(input.Entries))
		ids := make([]int64, 0, len(input.Entries))
		for _, entry := range input.Entries {
			if _, ok := seen[entry.AccountID]; ok {
				continue
			}
			seen[entry.AccountID] = struct{}{}
			ids = append(ids, entry.AccountID)
		}
		count, err := s.repo.CountAccounts(ctx, ids)
		if err != nil {
			return FinancialTransaction{}, err
		}
		if count != len(ids) {
			return FinancialTransaction{}, fmt.Errorf("one or more accounts: %w", httpx.ErrNotFound)
		}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	entries := make([]TransactionEntry, 0, len(input.Entries))
	for _, in := range input.Entries {
		debit := money.Round(in.DebitAmount)
		credit := money.Round(in.CreditAmount)
		totalDebit = totalDebit.Add(debit)
		totalCredit = totalCredit.Add(credit)
		entries = append(entries, TransactionEntry{
			AccountID:    in.AccountID,
			DebitAmount:  debit,
			CreditAmount: credit,
			Description:  in.Description,
		})
	}

	txn := FinancialTransaction{
		Date:        s.now(),
		Reference:   input.Reference,
		Description: input.Description,
		TotalAmount: money.Max(totalDebit, totalCredit),
		CreatedBy:   input.CreatedBy,
		BookingID:   input.BookingID,
	}
	return s.repo.CreateWithEntries(ctx, txn, entries)
}

// Journal returns the chronological journal view, newest transaction
// date first with the reference as tie-break.
func (s *Service) Journal(ctx context.Context, filter JournalFilter) ([]JournalRow, error) {
	return s.repo.Journal(ctx, filter)
}
