package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]Item, error)
	ListLowStock(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int64) (Item, error)
	Create(ctx context.Context, item Item) (Item, error)
	AdjustStock(ctx context.Context, id int64, delta int) (Item, error)
	Summary(ctx context.Context) (Summary, error)
	SupplierExists(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const itemColumns = `id, item_name, item_code, category, description, unit_cost, selling_price, current_stock, minimum_stock, supplier_id, is_active, created_at, updated_at`

func scanItem(row pgx.Row) (Item, error) {
	var it Item
	err := row.Scan(&it.ID, &it.ItemName, &it.ItemCode, &it.Category, &it.Description, &it.UnitCost, &it.SellingPrice, &it.CurrentStock, &it.MinimumStock, &it.SupplierID, &it.IsActive, &it.CreatedAt, &it.UpdatedAt)
	return it, err
}

func (r *repository) collect(ctx context.Context, query string, args ...any) ([]Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) List(ctx context.Context) ([]Item, error) {
	return r.collect(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE is_active ORDER BY item_name`)
}

func (r *repository) ListLowStock(ctx context.Context) ([]Item, error) {
	return r.collect(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE is_active AND current_stock <= minimum_stock ORDER BY item_name`)
}

func (r *repository) Get(ctx context.Context, id int64) (Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, id)
	it, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, fmt.Errorf("inventory item %d: %w", id, httpx.ErrNotFound)
	}
	return it, err
}

func (r *repository) Create(ctx context.Context, item Item) (Item, error) {
	now := time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO inventory_items (item_name, item_code, category, description, unit_cost, selling_price, current_stock, minimum_stock, supplier_id, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`,
		item.ItemName, item.ItemCode, item.Category, item.Description, item.UnitCost, item.SellingPrice, item.CurrentStock, item.MinimumStock, item.SupplierID, item.IsActive, now, now,
	).Scan(&item.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Item{}, fmt.Errorf("item code %s: %w", item.ItemCode, httpx.ErrDuplicate)
		}
		return Item{}, err
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	return item, nil
}

// AdjustStock applies the delta in a single statement so concurrent
// adjustments never lose an update.
func (r *repository) AdjustStock(ctx context.Context, id int64, delta int) (Item, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE inventory_items SET current_stock = current_stock + $2, updated_at = $3
		 WHERE id = $1 RETURNING `+itemColumns,
		id, delta, time.Now())
	it, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, fmt.Errorf("inventory item %d: %w", id, httpx.ErrNotFound)
	}
	return it, err
}

func (r *repository) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(current_stock), 0),
		        COALESCE(SUM(current_stock * unit_cost), 0),
		        COUNT(*) FILTER (WHERE current_stock <= minimum_stock)
		 FROM inventory_items WHERE is_active`,
	).Scan(&s.TotalItems, &s.TotalStock, &s.StockValue, &s.LowStockItems)
	return s, err
}

func (r *repository) SupplierExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM suppliers WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
