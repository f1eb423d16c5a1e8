package accounts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type memoryAccountRepo struct {
	accounts map[int64]Account
	nextID   int64
}

func newMemoryAccountRepo() *memoryAccountRepo {
	return &memoryAccountRepo{accounts: make(map[int64]Account)}
}

func (r *memoryAccountRepo) List(ctx context.Context) ([]Account, error) {
	var out []Account
	for _, a := range r.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (r *memoryAccountRepo) Get(ctx context.Context, id int64) (Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return Account{}, fmt.Errorf("account %d: %w", id, httpx.ErrNotFound)
	}
	return a, nil
}

func (r *memoryAccountRepo) Create(ctx context.Context, account Account) (Account, error) {
	for _, existing := range r.accounts {
		if existing.Code == account.Code {
			return Account{}, fmt.Errorf("account code %s: %w", account.Code, httpx.ErrDuplicate)
		}
	}
	r.nextID++
	account.ID = r.nextID
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	r.accounts[account.ID] = account
	return account, nil
}

func (r *memoryAccountRepo) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return Account{}, fmt.Errorf("account %d: %w", id, httpx.ErrNotFound)
	}
	a.Balance = balance
	a.UpdatedAt = time.Now()
	r.accounts[id] = a
	return a, nil
}

func TestCreateAccount(t *testing.T) {
	repo := newMemoryAccountRepo()
	svc := NewService(repo)

	account, err := svc.Create(context.Background(), CreateAccountInput{
		Code: "1000",
		Name: "Kas",
		Type: "Asset",
	})
	require.NoError(t, err)
	require.True(t, account.Balance.IsZero())
	require.True(t, account.IsActive)
	require.Nil(t, account.ParentID)

	parentID := account.ID
	child, err := svc.Create(context.Background(), CreateAccountInput{
		Code:     "1001",
		Name:     "Kas Kecil",
		Type:     "Asset",
		ParentID: &parentID,
	})
	require.NoError(t, err)
	require.Equal(t, parentID, *child.ParentID)
}

func TestCreateAccountParentMissing(t *testing.T) {
	repo := newMemoryAccountRepo()
	svc := NewService(repo)

	missing := int64(999)
	_, err := svc.Create(context.Background(), CreateAccountInput{
		Code:     "2000",
		Name:     "Hutang Usaha",
		Type:     "Liability",
		ParentID: &missing,
	})
	require.ErrorIs(t, err, httpx.ErrNotFound)
	require.Empty(t, repo.accounts, "failed precondition must not insert")
}

func TestCreateAccountDuplicateCode(t *testing.T) {
	repo := newMemoryAccountRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateAccountInput{Code: "1000", Name: "Kas", Type: "Asset"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateAccountInput{Code: "1000", Name: "Kas Lagi", Type: "Asset"})
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}

func TestSetBalanceOverride(t *testing.T) {
	repo := newMemoryAccountRepo()
	svc := NewService(repo)

	account, err := svc.Create(context.Background(), CreateAccountInput{Code: "1000", Name: "Kas", Type: "Asset"})
	require.NoError(t, err)

	updated, err := svc.SetBalance(context.Background(), account.ID, decimal.NewFromFloat(1234.567))
	require.NoError(t, err)
	require.True(t, updated.Balance.Equal(decimal.NewFromFloat(1234.57)), "balance rounded to 2dp, got %s", updated.Balance)

	// Negative overrides are allowed; this is administrative, not derived.
	updated, err = svc.SetBalance(context.Background(), account.ID, decimal.NewFromInt(-500))
	require.NoError(t, err)
	require.True(t, updated.Balance.Equal(decimal.NewFromInt(-500)))
}

func TestSetBalanceMissingAccount(t *testing.T) {
	repo := newMemoryAccountRepo()
	svc := NewService(repo)

	_, err := svc.SetBalance(context.Background(), 42, decimal.NewFromInt(100))
	require.ErrorIs(t, err, httpx.ErrNotFound)
}
