package packages

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
	List(ctx context.Context, category Category) ([]Package, error)
	Get(ctx context.Context, id int64) (Package, error)
	Create(ctx context.Context, pkg Package) (Package, error)
	PackageTypeExists(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const packageColumns = `id, package_name, package_type, package_type_id, description, duration_days, base_price, max_participants, departure_date, return_date, itinerary, inclusions, exclusions, terms_conditions, is_active, created_at, updated_at`

func scanPackage(row pgx.Row) (Package, error) {
	var p Package
	err := row.Scan(&p.ID, &p.PackageName, &p.PackageType, &p.PackageTypeID, &p.Description, &p.DurationDays, &p.BasePrice, &p.MaxParticipants, &p.DepartureDate, &p.ReturnDate, &p.Itinerary, &p.Inclusions, &p.Exclusions, &p.TermsConditions, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// List returns packages ordered by departure date. An empty category
// returns everything.
func (r *repository) List(ctx context.Context, category Category) ([]Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages`
	args := []any{}
	if category != "" {
		query += ` WHERE package_type = $1`
		args = append(args, category)
	}
	query += ` ORDER BY departure_date`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var pkgs []Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Package, error) {
	row := r.db.QueryRow(ctx, `SELECT `+packageColumns+` FROM packages WHERE id = $1`, id)
	p, err := scanPackage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Package{}, fmt.Errorf("package %d: %w", id, httpx.ErrNotFound)
	}
	return p, err
}

func (r *repository) Create(ctx context.Context, pkg Package) (Package, error) {
	now := time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO packages (package_name, package_type, package_type_id, description, duration_days, base_price, max_participants, departure_date, return_date, itinerary, inclusions, exclusions, terms_conditions, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`,
		pkg.PackageName, pkg.PackageType, pkg.PackageTypeID, pkg.Description, pkg.DurationDays, pkg.BasePrice, pkg.MaxParticipants, pkg.DepartureDate, pkg.ReturnDate, pkg.Itinerary, pkg.Inclusions, pkg.Exclusions, pkg.TermsConditions, pkg.IsActive, now, now,
	).Scan(&pkg.ID)
	if err != nil {
		return Package{}, err
	}
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
	return pkg, nil
}

func (r *repository) PackageTypeExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM package_types WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
