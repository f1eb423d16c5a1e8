package inventory

import (
	"context"
	"fmt"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
	"github.com/mabrur-erp/mabrur-erp/internal/platform/money"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListLowStock(ctx context.Context) ([]Item, error) {
	return s.repo.ListLowStock(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Item, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}

func (s *Service) Create(ctx context.Context, input CreateItemInput) (Item, error) {
	if input.SupplierID != nil {
		exists, err := s.repo.SupplierExists(ctx, *input.SupplierID)
		if err != nil {
			return Item{}, fmt.Errorf("check supplier: %w", err)
		}
		if !exists {
			return Item{}, fmt.Errorf("supplier %d: %w", *input.SupplierID, httpx.ErrNotFound)
		}
	}
	return s.repo.Create(ctx, Item{
		ItemName:     input.ItemName,
		ItemCode:     input.ItemCode,
		Category:     input.Category,
		Description:  input.Description,
		UnitCost:     money.Round(input.UnitCost),
		SellingPrice: money.Round(input.SellingPrice),
		CurrentStock: input.CurrentStock,
		MinimumStock: input.MinimumStock,
		SupplierID:   input.SupplierID,
		IsActive:     true,
	})
}

func (s *Service) AdjustStock(ctx context.Context, id int64, delta int) (Item, error) {
	return s.repo.AdjustStock(ctx, id, delta)
}
