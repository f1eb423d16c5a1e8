package simulation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
	"github.com/mabrur-erp/mabrur-erp/internal/platform/money"
)

var hundred = decimal.NewFromInt(100)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Simulation, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCreator(ctx context.Context, userID int64) ([]Simulation, error) {
	return s.repo.ListByCreator(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id int64) (Simulation, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Create derives the totals from the five cost buckets and persists the
// projection, attributed to the operator who ran it.
func (s *Service) Create(ctx context.Context, input CreateSimulationInput, createdBy int64) (Simulation, error) {
	sim, err := Calculate(input)
	if err != nil {
		return Simulation{}, err
	}
	sim.CreatedBy = createdBy
	return s.repo.Create(ctx, sim)
}

// Calculate fills in the derived fields:
//
//	total_cost     = sum of the five cost buckets
//	cost_per_pilgrim  = total_cost / number_of_pilgrims
//	selling_price  = cost_per_pilgrim * (1 + profit_margin/100)
//
// The pilgrim count must be at least one; the per-pilgrim split is
// undefined otherwise.
func Calculate(input CreateSimulationInput) (Simulation, error) {
	if input.NumberOfPilgrims < 1 {
		return Simulation{}, fmt.Errorf("number of pilgrims must be at least 1: %w", httpx.ErrValidation)
	}

	total := input.AccommodationCost.
		Add(input.TransportationCost).
		Add(input.MealCost).
		Add(input.GuideCost).
		Add(input.MiscellaneousCost)
	total = money.Round(total)

	perPilgrim := money.Round(total.Div(decimal.NewFromInt(int64(input.NumberOfPilgrims))))
	markup := decimal.NewFromInt(1).Add(input.ProfitMargin.Div(hundred))
	selling := money.Round(perPilgrim.Mul(markup))

	return Simulation{
		SimulationName:         input.SimulationName,
		PackageType:            input.PackageType,
		DurationDays:           input.DurationDays,
		NumberOfPilgrims:       input.NumberOfPilgrims,
		AccommodationCost:      money.Round(input.AccommodationCost),
		TransportationCost:     money.Round(input.TransportationCost),
		MealCost:               money.Round(input.MealCost),
		GuideCost:              money.Round(input.GuideCost),
		MiscellaneousCost:      money.Round(input.MiscellaneousCost),
		TotalCost:              total,
		CostPerPilgrim:         perPilgrim,
		ProfitMargin:           input.ProfitMargin,
		SellingPricePerPilgrim: selling,
	}, nil
}
