package airlines

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
	List(ctx context.Context) ([]Airline, error)
	Get(ctx context.Context, id int64) (Airline, error)
	Create(ctx context.Context, airline Airline) (Airline, error)
	Update(ctx context.Context, airline Airline) (Airline, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const airlineColumns = `id, airline_name, airline_code, contact_info, is_active, created_at, updated_at`

func scanAirline(row pgx.Row) (Airline, error) {
	var a Airline
	err := row.Scan(&a.ID, &a.AirlineName, &a.AirlineCode, &a.ContactInfo, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *repository) List(ctx context.Context) ([]Airline, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airlineColumns+` FROM airlines ORDER BY airline_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var airlines []Airline
	for rows.Next() {
		a, err := scanAirline(rows)
		if err != nil {
			return nil, err
		}
		airlines = append(airlines, a)
	}
	return airlines, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Airline, error) {
	row := r.db.QueryRow(ctx, `SELECT `+airlineColumns+` FROM airlines WHERE id = $1`, id)
	a, err := scanAirline(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Airline{}, fmt.Errorf("airline %d: %w", id, httpx.ErrNotFound)
	}
	return a, err
}

func (r *repository) Create(ctx context.Context, airline Airline) (Airline, error) {
	now := time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO airlines (airline_name, airline_code, contact_info, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		airline.AirlineName, airline.AirlineCode, airline.ContactInfo, airline.IsActive, now, now,
	).Scan(&airline.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Airline{}, fmt.Errorf("airline code %s: %w", airline.AirlineCode, httpx.ErrDuplicate)
		}
		return Airline{}, err
	}
	airline.CreatedAt = now
	airline.UpdatedAt = now
	return airline, nil
}

func (r *repository) Update(ctx context.Context, airline Airline) (Airline, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE airlines SET airline_name = $2, airline_code = $3, contact_info = $4, is_active = $5, updated_at = $6
		 WHERE id = $1 RETURNING `+airlineColumns,
		airline.ID, airline.AirlineName, airline.AirlineCode, airline.ContactInfo, airline.IsActive, time.Now())
	a, err := scanAirline(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Airline{}, fmt.Errorf("airline %d: %w", airline.ID, httpx.ErrNotFound)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Airline{}, fmt.Errorf("airline code %s: %w", airline.AirlineCode, httpx.ErrDuplicate)
		}
	}
	return a, err
}
