package packagetypes

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
	List(ctx context.Context) ([]PackageType, error)
	Get(ctx context.Context, id int64) (PackageType, error)
	Create(ctx context.Context, pt PackageType) (PackageType, error)
	Update(ctx context.Context, pt PackageType) (PackageType, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const typeColumns = `id, type_name, description, is_active, created_at, updated_at`

func scanType(row pgx.Row) (PackageType, error) {
	var pt PackageType
	err := row.Scan(&pt.ID, &pt.TypeName, &pt.Description, &pt.IsActive, &pt.CreatedAt, &pt.UpdatedAt)
	return pt, err
}

func (r *repository) List(ctx context.Context) ([]PackageType, error) {
	rows, err := r.db.Query(ctx, `SELECT `+typeColumns+` FROM package_types ORDER BY type_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var types []PackageType
	for rows.Next() {
		pt, err := scanType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, pt)
	}
	return types, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (PackageType, error) {
	row := r.db.QueryRow(ctx, `SELECT `+typeColumns+` FROM package_types WHERE id = $1`, id)
	pt, err := scanType(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return PackageType{}, fmt.Errorf("package type %d: %w", id, httpx.ErrNotFound)
	}
	return pt, err
}

func (r *repository) Create(ctx context.Context, pt PackageType) (PackageType, error) {
	now := time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO package_types (type_name, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		pt.TypeName, pt.Description, pt.IsActive, now, now,
	).Scan(&pt.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return PackageType{}, fmt.Errorf("package type %s: %w", pt.TypeName, httpx.ErrDuplicate)
		}
		return PackageType{}, err
	}
	pt.CreatedAt = now
	pt.UpdatedAt = now
	return pt, nil
}

func (r *repository) Update(ctx context.Context, pt PackageType) (PackageType, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE package_types SET type_name = $2, description = $3, is_active = $4, updated_at = $5
		 WHERE id = $1 RETURNING `+typeColumns,
		pt.ID, pt.TypeName, pt.Description, pt.IsActive, time.Now())
	updated, err := scanType(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return PackageType{}, fmt.Errorf("package type %d: %w", pt.ID, httpx.ErrNotFound)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return PackageType{}, fmt.Errorf("package type %s: %w", pt.TypeName, httpx.ErrDuplicate)
		}
	}
	return updated, err
}
