package packages

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

func (s *Service) List(ctx context.Context) ([]Package, error) {
	return s.repo.List(ctx, "")
}

func (s *Service) ListByCategory(ctx context.Context, category Category) ([]Package, error) {
	return s.repo.List(ctx, category)
}

func (s *Service) Get(ctx context.Context, id int64) (Package, error) {
	return s.repo.Get(ctx, id)
}

// Create rejects references to unknown package types before writing.
func (s *Service) Create(ctx context.Context, input CreatePackageInput) (Package, error) {
	exists, err := s.repo.PackageTypeExists(ctx, input.PackageTypeID)
	if err != nil {
		return Package{}, fmt.Errorf("check package type: %w", err)
	}
	if !exists {
		return Package{}, fmt.Errorf("package type %d: %w", input.PackageTypeID, httpx.ErrNotFound)
	}
	return s.repo.Create(ctx, Package{
		PackageName:     input.PackageName,
		PackageType:     input.PackageType,
		PackageTypeID:   input.PackageTypeID,
		Description:     input.Description,
		DurationDays:    input.DurationDays,
		BasePrice:       money.Round(input.BasePrice),
		MaxParticipants: input.MaxParticipants,
		DepartureDate:   input.DepartureDate,
		ReturnDate:      input.ReturnDate,
		Itinerary:       input.Itinerary,
		Inclusions:      input.Inclusions,
		Exclusions:      input.Exclusions,
		TermsConditions: input.TermsConditions,
		IsActive:        true,
	})
}
