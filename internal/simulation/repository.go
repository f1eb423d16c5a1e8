package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]Simulation, error)
	ListByCreator(ctx context.Context, userID int64) ([]Simulation, error)
	Get(ctx context.Context, id int64) (Simulation, error)
	Create(ctx context.Context, sim Simulation) (Simulation, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const simulationColumns = `id, simulation_name, package_type, duration_days, number_of_pilgrims, accommodation_cost, transportation_cost, meal_cost, guide_cost, miscellaneous_cost, total_cost, cost_per_pilgrim, profit_margin, selling_price_per_pilgrim, created_by, created_at, updated_at`

func scanSimulation(row pgx.Row) (Simulation, error) {
	var s Simulation
	err := row.Scan(&s.ID, &s.SimulationName, &s.PackageType, &s.DurationDays, &s.NumberOfPilgrims, &s.AccommodationCost, &s.TransportationCost, &s.MealCost, &s.GuideCost, &s.MiscellaneousCost, &s.TotalCost, &s.CostPerPilgrim, &s.ProfitMargin, &s.SellingPricePerPilgrim, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *repository) List(ctx context.Context) ([]Simulation, error) {
	return r.querySimulations(ctx, `SELECT `+simulationColumns+` FROM la_simulations ORDER BY created_at DESC`)
}

func (r *repository) ListByCreator(ctx context.Context, userID int64) ([]Simulation, error) {
	return r.querySimulations(ctx, `SELECT `+simulationColumns+` FROM la_simulations WHERE created_by = $1 ORDER BY created_at DESC`, userID)
}

func (r *repository) querySimulations(ctx context.Context, query string, args ...any) ([]Simulation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sims []Simulation
	for rows.Next() {
		s, err := scanSimulation(rows)
		if err != nil {
			return nil, err
		}
		sims = append(sims, s)
	}
	return sims, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Simulation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+simulationColumns+` FROM la_simulations WHERE id = $1`, id)
	s, err := scanSimulation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Simulation{}, fmt.Errorf("simulation %d: %w", id, httpx.ErrNotFound)
	}
	return s, err
}

func (r *repository) Create(ctx context.Context, sim Simulation) (Simulation, error) {
	now := time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO la_simulations (simulation_name, package_type, duration_days, number_of_pilgrims, accommodation_cost, transportation_cost, meal_cost, guide_cost, miscellaneous_cost, total_cost, cost_per_pilgrim, profit_margin, selling_price_per_pilgrim, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`,
		sim.SimulationName, sim.PackageType, sim.DurationDays, sim.NumberOfPilgrims, sim.AccommodationCost, sim.TransportationCost, sim.MealCost, sim.GuideCost, sim.MiscellaneousCost, sim.TotalCost, sim.CostPerPilgrim, sim.ProfitMargin, sim.SellingPricePerPilgrim, sim.CreatedBy, now, now,
	).Scan(&sim.ID)
	if err != nil {
		return Simulation{}, err
	}
	sim.CreatedAt = now
	sim.UpdatedAt = now
	return sim, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM la_simulations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("simulation %d: %w", id, httpx.ErrNotFound)
	}
	return nil
}
