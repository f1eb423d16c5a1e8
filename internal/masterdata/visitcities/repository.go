package visitcities

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
	List(ctx context.Context) ([]VisitCity, error)
	Get(ctx context.Context, id int64) (VisitCity, error)
	Create(ctx context.Context, city VisitCity) (VisitCity, error)
	Update(ctx context.Context, city VisitCity) (VisitCity, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const cityColumns = `id, city_name, country, description, is_active, created_at, updated_at`

func scanCity(row pgx.Row) (VisitCity, error) {
	var c VisitCity
	err := row.Scan(&c.ID, &c.CityName, &c.Country, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *repository) List(ctx context.Context) ([]VisitCity, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cityColumns+` FROM visit_cities ORDER BY city_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cities []VisitCity
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (VisitCity, error) {
	row := r.db.QueryRow(ctx, `SELECT `+cityColumns+` FROM visit_cities WHERE id = $1`, id)
	c, err := scanCity(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return VisitCity{}, fmt.Errorf("visit city %d: %w", id, httpx.ErrNotFound)
	}
	return c, err
}

func (r *repository) Create(ctx context.Context, city VisitCity) (VisitCity, error) {
	now := time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO visit_cities (city_name, country, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		city.CityName, city.Country, city.Description, city.IsActive, now, now,
	).Scan(&city.ID)
	if err != nil {
		return VisitCity{}, err
	}
	city.CreatedAt = now
	city.UpdatedAt = now
	return city, nil
}

func (r *repository) Update(ctx context.Context, city VisitCity) (VisitCity, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE visit_cities SET city_name = $2, country = $3, description = $4, is_active = $5, updated_at = $6
		 WHERE id = $1 RETURNING `+cityColumns,
		city.ID, city.CityName, city.Country, city.Description, city.IsActive, time.Now())
	c, err := scanCity(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return VisitCity{}, fmt.Errorf("visit city %d: %w", city.ID, httpx.ErrNotFound)
	}
	return c, err
}
