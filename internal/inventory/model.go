package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a stocked equipment article (ihram cloth, suitcases, ID
// cards) handed to pilgrims before departure. Item codes are unique.
type Item struct {
	ID           int64           `json:"id"`
	ItemName     string          `json:"item_name"`
	ItemCode     string          `json:"item_code"`
	Category     string          `json:"category"`
	Description  *string         `json:"description"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CurrentStock int             `json:"current_stock"`
	MinimumStock int             `json:"minimum_stock"`
	SupplierID   *int64          `json:"supplier_id"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// LowOnStock reports whether the item needs reordering.
func (i Item) LowOnStock() bool {
	return i.CurrentStock <= i.MinimumStock
}

type CreateItemInput struct {
	ItemName     string          `json:"item_name" validate:"required"`
	ItemCode     string          `json:"item_code" validate:"required"`
	Category     string          `json:"category" validate:"required"`
	Description  *string         `json:"description"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CurrentStock int             `json:"current_stock" validate:"min=0"`
	MinimumStock int             `json:"minimum_stock" validate:"min=0"`
	SupplierID   *int64          `json:"supplier_id"`
}

type AdjustStockInput struct {
	Delta int `json:"delta" validate:"required"`
}

// Summary aggregates the whole inventory for the stock overview panel.
type Summary struct {
	TotalItems    int             `json:"total_items"`
	TotalStock    int             `json:"total_stock"`
	StockValue    decimal.Decimal `json:"stock_value"`
	LowStockItems int             `json:"low_stock_items"`
}
