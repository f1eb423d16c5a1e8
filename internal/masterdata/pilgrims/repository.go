package pilgrims

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/shared"
	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) (shared.ListResult[Pilgrim], error)
	Get(ctx context.Context, id int64) (Pilgrim, error)
	Create(ctx context.Context, pilgrim Pilgrim) (Pilgrim, error)
	Update(ctx context.Context, id int64, pilgrim Pilgrim) (Pilgrim, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const pilgrimColumns = `id, full_name, email, phone, passport_number, passport_expiry, date_of_birth, address, emergency_contact_name, emergency_contact_phone, status, created_at, updated_at`

func scanPilgrim(row pgx.Row) (Pilgrim, error) {
	var p Pilgrim
	err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.PassportNumber, &p.PassportExpiry, &p.DateOfBirth, &p.Address, &p.EmergencyContactName, &p.EmergencyContactPhone, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// List searches by name or passport number and pages the result.
func (r *repository) List(ctx context.Context, filters shared.ListFilters) (shared.ListResult[Pilgrim], error) {
	where := ""
	args := []any{}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		where = ` WHERE full_name ILIKE $1 OR passport_number ILIKE $1`
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pilgrims`+where, args...).Scan(&total); err != nil {
		return shared.ListResult[Pilgrim]{}, err
	}

	orderBy := "full_name"
	if filters.SortBy == "created_at" {
		orderBy = "created_at"
	}
	dir := "ASC"
	if filters.SortDir == "desc" {
		dir = "DESC"
	}
	query := `SELECT ` + pilgrimColumns + ` FROM pilgrims` + where + ` ORDER BY ` + orderBy + ` ` + dir
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
		args = append(args, (filters.Page-1)*filters.Limit)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return shared.ListResult[Pilgrim]{}, err
	}
	defer rows.Close()
	result := shared.ListResult[Pilgrim]{Items: []Pilgrim{}, Total: total}
	for rows.Next() {
		p, err := scanPilgrim(rows)
		if err != nil {
			return shared.ListResult[Pilgrim]{}, err
		}
		result.Items = append(result.Items, p)
	}
	return result, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Pilgrim, error) {
	row := r.db.QueryRow(ctx, `SELECT `+pilgrimColumns+` FROM pilgrims WHERE id = $1`, id)
	p, err := scanPilgrim(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Pilgrim{}, fmt.Errorf("pilgrim %d: %w", id, httpx.ErrNotFound)
	}
	return p, err
}

func (r *repository) Create(ctx context.Context, pilgrim Pilgrim) (Pilgrim, error) {
	now := time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO pilgrims (full_name, email, phone, passport_number, passport_expiry, date_of_birth, address, emergency_contact_name, emergency_contact_phone, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`,
		pilgrim.FullName, pilgrim.Email, pilgrim.Phone, pilgrim.PassportNumber, pilgrim.PassportExpiry, pilgrim.DateOfBirth, pilgrim.Address, pilgrim.EmergencyContactName, pilgrim.EmergencyContactPhone, pilgrim.Status, now, now,
	).Scan(&pilgrim.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Pilgrim{}, fmt.Errorf("passport number %s: %w", pilgrim.PassportNumber, httpx.ErrDuplicate)
		}
		return Pilgrim{}, err
	}
	pilgrim.CreatedAt = now
	pilgrim.UpdatedAt = now
	return pilgrim, nil
}

func (r *repository) Update(ctx context.Context, id int64, pilgrim Pilgrim) (Pilgrim, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE pilgrims SET full_name = $2, email = $3, phone = $4, passport_number = $5, passport_expiry = $6, date_of_birth = $7, address = $8, emergency_contact_name = $9, emergency_contact_phone = $10, status = $11, updated_at = $12
		 WHERE id = $1 RETURNING `+pilgrimColumns,
		id, pilgrim.FullName, pilgrim.Email, pilgrim.Phone, pilgrim.PassportNumber, pilgrim.PassportExpiry, pilgrim.DateOfBirth, pilgrim.Address, pilgrim.EmergencyContactName, pilgrim.EmergencyContactPhone, pilgrim.Status, time.Now())
	p, err := scanPilgrim(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Pilgrim{}, fmt.Errorf("pilgrim %d: %w", id, httpx.ErrNotFound)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Pilgrim{}, fmt.Errorf("passport number %s: %w", pilgrim.PassportNumber, httpx.ErrDuplicate)
		}
	}
	return p, err
}
