package facilities

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
	List(ctx context.Context) ([]Facility, error)
	Get(ctx context.Context, id int64) (Facility, error)
	Create(ctx context.Context, facility Facility) (Facility, error)
	Update(ctx context.Context, facility Facility) (Facility, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const facilityColumns = `id, facility_name, facility_type, location, capacity, cost_per_person, description, is_active, created_at, updated_at`

func scanFacility(row pgx.Row) (Facility, error) {
	var f Facility
	err := row.Scan(&f.ID, &f.FacilityName, &f.FacilityType, &f.Location, &f.Capacity, &f.CostPerPerson, &f.Description, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *repository) List(ctx context.Context) ([]Facility, error) {
	rows, err := r.db.Query(ctx, `SELECT `+facilityColumns+` FROM facilities ORDER BY facility_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var facilities []Facility
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, err
		}
		facilities = append(facilities, f)
	}
	return facilities, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Facility, error) {
	row := r.db.QueryRow(ctx, `SELECT `+facilityColumns+` FROM facilities WHERE id = $1`, id)
	f, err := scanFacility(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Facility{}, fmt.Errorf("facility %d: %w", id, httpx.ErrNotFound)
	}
	return f, err
}

func (r *repository) Create(ctx context.Context, facility Facility) (Facility, error) {
	now := time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO facilities (facility_name, facility_type, location, capacity, cost_per_person, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		facility.FacilityName, facility.FacilityType, facility.Location, facility.Capacity, facility.CostPerPerson, facility.Description, facility.IsActive, now, now,
	).Scan(&facility.ID)
	if err != nil {
		return Facility{}, err
	}
	facility.CreatedAt = now
	facility.UpdatedAt = now
	return facility, nil
}

func (r *repository) Update(ctx context.Context, facility Facility) (Facility, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE facilities SET facility_name = $2, facility_type = $3, location = $4, capacity = $5, cost_per_person = $6, description = $7, is_active = $8, updated_at = $9
		 WHERE id = $1 RETURNING `+facilityColumns,
		facility.ID, facility.FacilityName, facility.FacilityType, facility.Location, facility.Capacity, facility.CostPerPerson, facility.Description, facility.IsActive, time.Now())
	f, err := scanFacility(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Facility{}, fmt.Errorf("facility %d: %w", facility.ID, httpx.ErrNotFound)
	}
	return f, err
}
