package simulation

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

type memorySimulationRepo struct {
	sims   map[int64]Simulation
	nextID int64
}

func newMemorySimulationRepo() *memorySimulationRepo {
	return &memorySimulationRepo{sims: make(map[int64]Simulation)}
}

func (r *memorySimulationRepo) List(ctx context.Context) ([]Simulation, error) {
	var out []Simulation
	for _, s := range r.sims {
		out = append(out, s)
	}
	return out, nil
}

func (r *memorySimulationRepo) ListByCreator(ctx context.Context, userID int64) ([]Simulation, error) {
	var out []Simulation
	for _, s := range r.sims {
		if s.CreatedBy == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memorySimulationRepo) Get(ctx context.Context, id int64) (Simulation, error) {
	s, ok := r.sims[id]
	if !ok {
		return Simulation{}, fmt.Errorf("simulation %d: %w", id, httpx.ErrNotFound)
	}
	return s, nil
}

func (r *memorySimulationRepo) Create(ctx context.Context, sim Simulation) (Simulation, error) {
	r.nextID++
	sim.ID = r.nextID
	r.sims[sim.ID] = sim
	return sim, nil
}

func (r *memorySimulationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.sims[id]; !ok {
		return fmt.Errorf("simulation %d: %w", id, httpx.ErrNotFound)
	}
	delete(r.sims, id)
	return nil
}

func TestCalculate(t *testing.T) {
	sim, err := Calculate(CreateSimulationInput{
		SimulationName:     "Umrah 40 pax",
		PackageType:        "umrah",
		DurationDays:       12,
		NumberOfPilgrims:   40,
		AccommodationCost:  d(200000000),
		TransportationCost: d(120000000),
		MealCost:           d(60000000),
		GuideCost:          d(15000000),
		MiscellaneousCost:  d(5000000),
		ProfitMargin:       d(15),
	})
	require.NoError(t, err)

	require.True(t, sim.TotalCost.Equal(d(400000000)), "total %s", sim.TotalCost)
	require.True(t, sim.CostPerPilgrim.Equal(d(10000000)), "per pilgrim %s", sim.CostPerPilgrim)
	require.True(t, sim.SellingPricePerPilgrim.Equal(d(11500000)), "selling %s", sim.SellingPricePerPilgrim)
}

func TestCalculateRoundsUnevenSplit(t *testing.T) {
	sim, err := Calculate(CreateSimulationInput{
		SimulationName:   "odd split",
		PackageType:      "haji",
		DurationDays:     30,
		NumberOfPilgrims: 3,
		MealCost:         d(100),
		ProfitMargin:     d(10),
	})
	require.NoError(t, err)

	// 100 / 3 = 33.333... rounds to 33.33, then +10%.
	require.True(t, sim.CostPerPilgrim.Equal(d(33.33)), "per pilgrim %s", sim.CostPerPilgrim)
	require.True(t, sim.SellingPricePerPilgrim.Equal(d(36.66)), "selling %s", sim.SellingPricePerPilgrim)
}

func TestCreateAttributesCreator(t *testing.T) {
	repo := newMemorySimulationRepo()
	svc := NewService(repo)

	input := CreateSimulationInput{
		SimulationName:   "Umrah 10 pax",
		PackageType:      "umrah",
		DurationDays:     9,
		NumberOfPilgrims: 10,
		MealCost:         d(5000),
	}
	mine, err := svc.Create(context.Background(), input, 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), mine.CreatedBy)
	_, err = svc.Create(context.Background(), input, 8)
	require.NoError(t, err)

	sims, err := svc.ListByCreator(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, sims, 1)
	require.Equal(t, mine.ID, sims[0].ID)
}

func TestCalculateZeroMargin(t *testing.T) {
	sim, err := Calculate(CreateSimulationInput{
		SimulationName:   "at cost",
		PackageType:      "umrah",
		DurationDays:     9,
		NumberOfPilgrims: 10,
		MealCost:         d(5000),
	})
	require.NoError(t, err)

	require.True(t, sim.SellingPricePerPilgrim.Equal(sim.CostPerPilgrim))
}

func TestCalculateRejectsZeroPilgrims(t *testing.T) {
	_, err := Calculate(CreateSimulationInput{
		SimulationName: "empty bus",
		PackageType:    "umrah",
		DurationDays:   9,
		MealCost:       d(5000),
	})
	require.ErrorIs(t, err, httpx.ErrValidation)
}
