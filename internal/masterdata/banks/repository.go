package banks

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
	List(ctx context.Context) ([]Bank, error)
	Get(ctx context.Context, id int64) (Bank, error)
	Create(ctx context.Context, bank Bank) (Bank, error)
	Update(ctx context.Context, bank Bank) (Bank, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const bankColumns = `id, bank_name, account_number, account_holder_name, branch, swift_code, is_active, created_at, updated_at`

func scanBank(row pgx.Row) (Bank, error) {
	var b Bank
	err := row.Scan(&b.ID, &b.BankName, &b.AccountNumber, &b.AccountHolderName, &b.Branch, &b.SwiftCode, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *repository) List(ctx context.Context) ([]Bank, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bankColumns+` FROM banks ORDER BY bank_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var banks []Bank
	for rows.Next() {
		b, err := scanBank(rows)
		if err != nil {
			return nil, err
		}
		banks = append(banks, b)
	}
	return banks, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Bank, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bankColumns+` FROM banks WHERE id = $1`, id)
	b, err := scanBank(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Bank{}, fmt.Errorf("bank %d: %w", id, httpx.ErrNotFound)
	}
	return b, err
}

func (r *repository) Create(ctx context.Context, bank Bank) (Bank, error) {
	now := time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO banks (bank_name, account_number, account_holder_name, branch, swift_code, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		bank.BankName, bank.AccountNumber, bank.AccountHolderName, bank.Branch, bank.SwiftCode, bank.IsActive, now, now,
	).Scan(&bank.ID)
	if err != nil {
		return Bank{}, err
	}
	bank.CreatedAt = now
	bank.UpdatedAt = now
	return bank, nil
}

func (r *repository) Update(ctx context.Context, bank Bank) (Bank, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE banks SET bank_name = $2, account_number = $3, account_holder_name = $4, branch = $5, swift_code = $6, is_active = $7, updated_at = $8
		 WHERE id = $1 RETURNING `+bankColumns,
		bank.ID, bank.BankName, bank.AccountNumber, bank.AccountHolderName, bank.Branch, bank.SwiftCode, bank.IsActive, time.Now())
	b, err := scanBank(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Bank{}, fmt.Errorf("bank %d: %w", bank.ID, httpx.ErrNotFound)
	}
	return b, err
}
