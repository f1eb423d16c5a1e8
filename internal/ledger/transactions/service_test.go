package transactions

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type journalAccount struct {
	code string
	name string
}

type memoryLedgerRepo struct {
	accounts map[int64]journalAccount
	txns     map[int64]FinancialTransaction
	entries  map[int64][]TransactionEntry
	nextTxn  int64
	nextRow  int64
}

func newMemoryLedgerRepo() *memoryLedgerRepo {
	return &memoryLedgerRepo{
		accounts: make(map[int64]journalAccount),
		txns:     make(map[int64]FinancialTransaction),
		entries:  make(map[int64][]TransactionEntry),
	}
}

func (r *memoryLedgerRepo) addAccount(id int64, code, name string) {
	r.accounts[id] = journalAccount{code: code, name: name}
}

func (r *memoryLedgerRepo) List(ctx context.Context) ([]FinancialTransaction, error) {
	var out []FinancialTransaction
	for _, t := range r.txns {
		out = append(out, t)
	}
	return out, nil
}

func (r *memoryLedgerRepo) Get(ctx context.Context, id int64) (FinancialTransaction, error) {
	t, ok := r.txns[id]
	if !ok {
		return FinancialTransaction{}, fmt.Errorf("transaction %d: %w", id, httpx.ErrNotFound)
	}
	return t, nil
}

func (r *memoryLedgerRepo) ListEntries(ctx context.Context, transactionID int64) ([]TransactionEntry, error) {
	return r.entries[transactionID], nil
}

func (r *memoryLedgerRepo) CountAccounts(ctx context.Context, ids []int64) (int, error) {
	count := 0
	for _, id := range ids {
		if _, ok := r.accounts[id]; ok {
			count++
		}
	}
	return count, nil
}

func (r *memoryLedgerRepo) CreateWithEntries(ctx context.Context, txn FinancialTransaction, entries []TransactionEntry) (FinancialTransaction, error) {
	for _, existing := range r.txns {
		if existing.Reference == txn.Reference {
			return FinancialTransaction{}, fmt.Errorf("transaction reference %s: %w", txn.Reference, httpx.ErrDuplicate)
		}
	}
	r.nextTxn++
	txn.ID = r.nextTxn
	r.txns[txn.ID] = txn
	for i := range entries {
		r.nextRow++
		entries[i].ID = r.nextRow
		entries[i].TransactionID = txn.ID
	}
	r.entries[txn.ID] = entries
	return txn, nil
}

func (r *memoryLedgerRepo) Journal(ctx context.Context, filter JournalFilter) ([]JournalRow, error) {
	var report []JournalRow
	for id, txn := range r.txns {
		if filter.StartDate != nil && txn.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && txn.Date.After(*filter.EndDate) {
			continue
		}
		for _, e := range r.entries[id] {
			desc := ""
			if e.Description != nil {
				desc = *e.Description
			}
			acct := r.accounts[e.AccountID]
			report = append(report, JournalRow{
				TransactionID: txn.ID,
				Date:          txn.Date,
				Reference:     txn.Reference,
				AccountName:   acct.name,
				AccountCode:   acct.code,
				DebitAmount:   e.DebitAmount,
				CreditAmount:  e.CreditAmount,
				Description:   desc,
			})
		}
	}
	sort.SliceStable(report, func(i, j int) bool {
		if !report[i].Date.Equal(report[j].Date) {
			return report[i].Date.After(report[j].Date)
		}
		return report[i].Reference < report[j].Reference
	})
	return report, nil
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestCreateTransactionTotalDerivation(t *testing.T) {
	repo := newMemoryLedgerRepo()
	repo.addAccount(1, "1000", "Kas")
	repo.addAccount(2, "4000", "Pendapatan Paket")
	svc := NewService(repo)

	txn, err := svc.Create(context.Background(), CreateTransactionInput{
		Reference:   "TRX-001",
		Description: "Pembayaran paket umrah",
		CreatedBy:   1,
		Entries: []EntryInput{
			{AccountID: 1, DebitAmount: dec(1000)},
			{AccountID: 2, CreditAmount: dec(1000)},
		},
	})
	require.NoError(t, err)
	require.True(t, txn.TotalAmount.Equal(dec(1000)), "total %s", txn.TotalAmount)

	// Unbalanced entries are accepted; the total is the larger side.
	txn, err = svc.Create(context.Background(), CreateTransactionInput{
		Reference:   "TRX-002",
		Description: "Penyesuaian satu sisi",
		CreatedBy:   1,
		Entries: []EntryInput{
			{AccountID: 1, DebitAmount: dec(600)},
			{AccountID: 2, CreditAmount: dec(400)},
		},
	})
	require.NoError(t, err)
	require.True(t, txn.TotalAmount.Equal(dec(600)), "total %s", txn.TotalAmount)
}

func TestCreateTransactionEmptyEntries(t *testing.T) {
	repo := newMemoryLedgerRepo()
	svc := NewService(repo)

	txn, err := svc.Create(context.Background(), CreateTransactionInput{
		Reference:   "TRX-003",
		Description: "Tanpa entri",
		CreatedBy:   1,
	})
	require.NoError(t, err)
	require.True(t, txn.TotalAmount.IsZero())
	require.Empty(t, repo.entries[txn.ID])
}

func TestCreateTransactionUnknownAccount(t *testing.T) {
	repo := newMemoryLedgerRepo()
	repo.addAccount(1, "1000", "Kas")
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateTransactionInput{
		Reference:   "TRX-004",
		Description: "Akun tidak ada",
		CreatedBy:   1,
		Entries: []EntryInput{
			{AccountID: 1, DebitAmount: dec(100)},
			{AccountID: 99, CreditAmount: dec(100)},
		},
	})
	require.ErrorIs(t, err, httpx.ErrNotFound)
	require.Empty(t, repo.txns, "failed membership check must not insert")
}

func TestCreateTransactionDuplicateReference(t *testing.T) {
	repo := newMemoryLedgerRepo()
	repo.addAccount(1, "1000", "Kas")
	svc := NewService(repo)

	input := CreateTransactionInput{
		Reference:   "TRX-005",
		Description: "Pertama",
		CreatedBy:   1,
		Entries:     []EntryInput{{AccountID: 1, DebitAmount: dec(50)}},
	}
	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), input)
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}

func TestJournalRoundTrip(t *testing.T) {
	repo := newMemoryLedgerRepo()
	repo.addAccount(1, "1000", "Kas")
	repo.addAccount(2, "4000", "Pendapatan Paket")
	svc := NewService(repo)
	svc.WithNow(fixedClock(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)))

	memo := "setoran awal"
	entries := []EntryInput{
		{AccountID: 1, DebitAmount: dec(750), Description: &memo},
		{AccountID: 2, CreditAmount: dec(750)},
	}
	_, err := svc.Create(context.Background(), CreateTransactionInput{
		Reference:   "TRX-010",
		Description: "Setoran",
		CreatedBy:   1,
		Entries:     entries,
	})
	require.NoError(t, err)

	report, err := svc.Journal(context.Background(), JournalFilter{})
	require.NoError(t, err)
	require.Len(t, report, len(entries))

	require.True(t, report[0].DebitAmount.Equal(dec(750)))
	require.True(t, report[0].CreditAmount.IsZero())
	require.Equal(t, "setoran awal", report[0].Description)
	require.Equal(t, "1000", report[0].AccountCode)
	require.Equal(t, "Kas", report[0].AccountName)

	require.True(t, report[1].DebitAmount.IsZero())
	require.True(t, report[1].CreditAmount.Equal(dec(750)))
	require.Equal(t, "", report[1].Description, "null entry description surfaces as empty string")
}

func TestJournalDateFilter(t *testing.T) {
	repo := newMemoryLedgerRepo()
	repo.addAccount(1, "1000", "Kas")
	svc := NewService(repo)

	svc.WithNow(fixedClock(time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC)))
	_, err := svc.Create(context.Background(), CreateTransactionInput{
		Reference: "TRX-2023", Description: "Desember", CreatedBy: 1,
		Entries: []EntryInput{{AccountID: 1, DebitAmount: dec(100)}},
	})
	require.NoError(t, err)

	svc.WithNow(fixedClock(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	_, err = svc.Create(context.Background(), CreateTransactionInput{
		Reference: "TRX-2024", Description: "Januari", CreatedBy: 1,
		Entries: []EntryInput{{AccountID: 1, DebitAmount: dec(200)}},
	})
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	report, err := svc.Journal(context.Background(), JournalFilter{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, report, 1)
	require.Equal(t, "TRX-2024", report[0].Reference)
}

func TestJournalOrdering(t *testing.T) {
	repo := newMemoryLedgerRepo()
	repo.addAccount(1, "1000", "Kas")
	svc := NewService(repo)

	post := func(ref string, ts time.Time) {
		svc.WithNow(fixedClock(ts))
		_, err := svc.Create(context.Background(), CreateTransactionInput{
			Reference: ref, Description: ref, CreatedBy: 1,
			Entries: []EntryInput{{AccountID: 1, DebitAmount: dec(10)}},
		})
		require.NoError(t, err)
	}

	day1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)
	post("TRX-B", day2)
	post("TRX-A", day2)
	post("TRX-C", day1)

	report, err := svc.Journal(context.Background(), JournalFilter{})
	require.NoError(t, err)
	require.Len(t, report, 3)
	// Newest date first; references ascending within the same date.
	require.Equal(t, "TRX-A", report[0].Reference)
	require.Equal(t, "TRX-B", report[1].Reference)
	require.Equal(t, "TRX-C", report[2].Reference)
}
