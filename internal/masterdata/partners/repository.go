package partners

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
	List(ctx context.Context) ([]MarketingPartner, error)
	Get(ctx context.Context, id int64) (MarketingPartner, error)
	Create(ctx context.Context, partner MarketingPartner) (MarketingPartner, error)
	Update(ctx context.Context, partner MarketingPartner) (MarketingPartner, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const partnerColumns = `id, name, contact_person, email, phone, address, commission_rate, is_active, created_at, updated_at`

func scanPartner(row pgx.Row) (MarketingPartner, error) {
	var p MarketingPartner
	err := row.Scan(&p.ID, &p.Name, &p.ContactPerson, &p.Email, &p.Phone, &p.Address, &p.CommissionRate, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *repository) List(ctx context.Context) ([]MarketingPartner, error) {
	rows, err := r.db.Query(ctx, `SELECT `+partnerColumns+` FROM marketing_partners ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var partners []MarketingPartner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (MarketingPartner, error) {
	row := r.db.QueryRow(ctx, `SELECT `+partnerColumns+` FROM marketing_partners WHERE id = $1`, id)
	p, err := scanPartner(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return MarketingPartner{}, fmt.Errorf("marketing partner %d: %w", id, httpx.ErrNotFound)
	}
	return p, err
}

func (r *repository) Create(ctx context.Context, partner MarketingPartner) (MarketingPartner, error) {
	now := time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO marketing_partners (name, contact_person, email, phone, address, commission_rate, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		partner.Name, partner.ContactPerson, partner.Email, partner.Phone, partner.Address, partner.CommissionRate, partner.IsActive, now, now,
	).Scan(&partner.ID)
	if err != nil {
		return MarketingPartner{}, err
	}
	partner.CreatedAt = now
	partner.UpdatedAt = now
	return partner, nil
}

func (r *repository) Update(ctx context.Context, partner MarketingPartner) (MarketingPartner, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE marketing_partners SET name = $2, contact_person = $3, email = $4, phone = $5, address = $6, commission_rate = $7, is_active = $8, updated_at = $9
		 WHERE id = $1 RETURNING `+partnerColumns,
		partner.ID, partner.Name, partner.ContactPerson, partner.Email, partner.Phone, partner.Address, partner.CommissionRate, partner.IsActive, time.Now())
	p, err := scanPartner(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return MarketingPartner{}, fmt.Errorf("marketing partner %d: %w", partner.ID, httpx.ErrNotFound)
	}
	return p, err
}
