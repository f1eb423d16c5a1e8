package inventory

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type memoryItemRepo struct {
	items     map[int64]Item
	suppliers map[int64]struct{}
	nextID    int64
}

func newMemoryItemRepo() *memoryItemRepo {
	return &memoryItemRepo{items: make(map[int64]Item), suppliers: make(map[int64]struct{})}
}

func (r *memoryItemRepo) List(ctx context.Context) ([]Item, error) {
	var out []Item
	for _, it := range r.items {
		if it.IsActive {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memoryItemRepo) ListLowStock(ctx context.Context) ([]Item, error) {
	var out []Item
	for _, it := range r.items {
		if it.IsActive && it.LowOnStock() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memoryItemRepo) Get(ctx context.Context, id int64) (Item, error) {
	it, ok := r.items[id]
	if !ok {
		return Item{}, fmt.Errorf("inventory item %d: %w", id, httpx.ErrNotFound)
	}
	return it, nil
}

func (r *memoryItemRepo) Create(ctx context.Context, item Item) (Item, error) {
	for _, existing := range r.items {
		if existing.ItemCode == item.ItemCode {
			return Item{}, fmt.Errorf("item code %s: %w", item.ItemCode, httpx.ErrDuplicate)
		}
	}
	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return item, nil
}

func (r *memoryItemRepo) AdjustStock(ctx context.Context, id int64, delta int) (Item, error) {
	it, ok := r.items[id]
	if !ok {
		return Item{}, fmt.Errorf("inventory item %d: %w", id, httpx.ErrNotFound)
	}
	it.CurrentStock += delta
	r.items[id] = it
	return it, nil
}

func (r *memoryItemRepo) Summary(ctx context.Context) (Summary, error) {
	s := Summary{StockValue: decimal.Zero}
	for _, it := range r.items {
		if !it.IsActive {
			continue
		}
		s.TotalItems++
		s.TotalStock += it.CurrentStock
		s.StockValue = s.StockValue.Add(it.UnitCost.Mul(decimal.NewFromInt(int64(it.CurrentStock))))
		if it.LowOnStock() {
			s.LowStockItems++
		}
	}
	return s, nil
}

func (r *memoryItemRepo) SupplierExists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.suppliers[id]
	return ok, nil
}

func itemInput(code string, stock, minimum int) CreateItemInput {
	return CreateItemInput{
		ItemName:     "Kain Ihram",
		ItemCode:     code,
		Category:     "apparel",
		UnitCost:     decimal.NewFromInt(150000),
		SellingPrice: decimal.NewFromInt(200000),
		CurrentStock: stock,
		MinimumStock: minimum,
	}
}

func TestCreateItem(t *testing.T) {
	repo := newMemoryItemRepo()
	svc := NewService(repo)

	item, err := svc.Create(context.Background(), itemInput("IHR-001", 50, 10))
	require.NoError(t, err)
	require.True(t, item.IsActive)
	require.False(t, item.LowOnStock())
}

func TestCreateItemDuplicateCode(t *testing.T) {
	repo := newMemoryItemRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), itemInput("IHR-001", 50, 10))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), itemInput("IHR-001", 5, 1))
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}

func TestCreateItemUnknownSupplier(t *testing.T) {
	repo := newMemoryItemRepo()
	svc := NewService(repo)

	input := itemInput("IHR-001", 50, 10)
	supplierID := int64(9)
	input.SupplierID = &supplierID
	_, err := svc.Create(context.Background(), input)
	require.ErrorIs(t, err, httpx.ErrNotFound)
	require.Empty(t, repo.items)
}

func TestLowStockBoundary(t *testing.T) {
	repo := newMemoryItemRepo()
	svc := NewService(repo)

	// Stock equal to the minimum already counts as low.
	_, err := svc.Create(context.Background(), itemInput("IHR-001", 10, 10))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), itemInput("KPR-002", 11, 10))
	require.NoError(t, err)

	low, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	require.Equal(t, "IHR-001", low[0].ItemCode)
}

func TestAdjustStockAndSummary(t *testing.T) {
	repo := newMemoryItemRepo()
	svc := NewService(repo)

	item, err := svc.Create(context.Background(), itemInput("IHR-001", 20, 10))
	require.NoError(t, err)

	item, err = svc.AdjustStock(context.Background(), item.ID, -15)
	require.NoError(t, err)
	require.Equal(t, 5, item.CurrentStock)
	require.True(t, item.LowOnStock())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, summary.TotalItems)
	require.Equal(t, 5, summary.TotalStock)
	require.Equal(t, 1, summary.LowStockItems)
	require.True(t, summary.StockValue.Equal(decimal.NewFromInt(750000)), "value %s", summary.StockValue)
}
