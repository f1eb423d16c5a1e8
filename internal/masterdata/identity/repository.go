package identity

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
	Get(ctx context.Context) (TravelIdentity, error)
	Save(ctx context.Context, identity TravelIdentity) (TravelIdentity, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const identityColumns = `id, travel_name, logo_url, address, email, phone, theme, created_at, updated_at`

func scanIdentity(row pgx.Row) (TravelIdentity, error) {
	var ti TravelIdentity
	err := row.Scan(&ti.ID, &ti.TravelName, &ti.LogoURL, &ti.Address, &ti.Email, &ti.Phone, &ti.Theme, &ti.CreatedAt, &ti.UpdatedAt)
	return ti, err
}

func (r *repository) Get(ctx context.Context) (TravelIdentity, error) {
	row := r.db.QueryRow(ctx, `SELECT `+identityColumns+` FROM travel_identity ORDER BY id LIMIT 1`)
	ti, err := scanIdentity(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return TravelIdentity{}, fmt.Errorf("travel identity: %w", httpx.ErrNotFound)
	}
	return ti, err
}

// Save updates the existing row if one exists and inserts otherwise.
func (r *repository) Save(ctx context.Context, identity TravelIdentity) (TravelIdentity, error) {
	now := time.Now()
	existing, err := r.Get(ctx)
	if err != nil && !errors.Is(err, httpx.ErrNotFound) {
		return TravelIdentity{}, err
	}
	if errors.Is(err, httpx.ErrNotFound) {
		row := r.db.QueryRow(ctx,
			`INSERT INTO travel_identity (travel_name, logo_url, address, email, phone, theme, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING `+identityColumns,
			identity.TravelName, identity.LogoURL, identity.Address, identity.Email, identity.Phone, identity.Theme, now, now)
		return scanIdentity(row)
	}
	row := r.db.QueryRow(ctx,
		`UPDATE travel_identity SET travel_name = $2, logo_url = $3, address = $4, email = $5, phone = $6, theme = $7, updated_at = $8
		 WHERE id = $1 RETURNING `+identityColumns,
		existing.ID, identity.TravelName, identity.LogoURL, identity.Address, identity.Email, identity.Phone, identity.Theme, now)
	return scanIdentity(row)
}
