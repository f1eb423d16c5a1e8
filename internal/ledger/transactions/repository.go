package transactions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/db"
	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]FinancialTransaction, error)
	Get(ctx context.Context, id int64) (FinancialTransaction, error)
	ListEntries(ctx context.Context, transactionID int64) ([]TransactionEntry, error)
	CountAccounts(ctx context.Context, ids []int64) (int, error)
	CreateWithEntries(ctx context.Context, txn FinancialTransaction, entries []TransactionEntry) (FinancialTransaction, error)
	Journal(ctx context.Context, filter JournalFilter) ([]JournalRow, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const txnColumns = `id, transaction_date, transaction_reference, description, total_amount, created_by, package_booking_id, created_at, updated_at`

func scanTransaction(row pgx.Row) (FinancialTransaction, error) {
	var t FinancialTransaction
	err := row.Scan(&t.ID, &t.Date, &t.Reference, &t.Description, &t.TotalAmount, &t.CreatedBy, &t.BookingID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *repository) List(ctx context.Context) ([]FinancialTransaction, error) {
	rows, err := r.db.Query(ctx, `SELECT `+txnColumns+` FROM financial_transactions ORDER BY transaction_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var txns []FinancialTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (FinancialTransaction, error) {
	row := r.db.QueryRow(ctx, `SELECT `+txnColumns+` FROM financial_transactions WHERE id = $1`, id)
	t, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return FinancialTransaction{}, fmt.Errorf("transaction %d: %w", id, httpx.ErrNotFound)
	}
	return t, err
}

func (r *repository) ListEntries(ctx context.Context, transactionID int64) ([]TransactionEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, transaction_id, account_id, debit_amount, credit_amount, description, created_at
		 FROM transaction_entries WHERE transaction_id = $1 ORDER BY created_at`, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []TransactionEntry
	for rows.Next() {
		var e TransactionEntry
		if err := rows.Scan(&e.ID, &e.TransactionID, &e.AccountID, &e.DebitAmount, &e.CreditAmount, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *repository) CountAccounts(ctx context.Context, ids []int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM chart_of_accounts WHERE id = ANY($1)`, ids).Scan(&count)
	return count, err
}

// CreateWithEntries inserts the transaction header and all entry rows as
// one atomic unit so a partial failure never leaves orphaned entries or
// an entry-less transaction.
func (r *repository) CreateWithEntries(ctx context.Context, txn FinancialTransaction, entries []TransactionEntry) (FinancialTransaction, error) {
	now := time.Now()
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO financial_transactions (transaction_date, transaction_reference, description, total_amount, created_by, package_booking_id, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			txn.Date, txn.Reference, txn.Description, txn.TotalAmount, txn.CreatedBy, txn.BookingID, now, now,
		).Scan(&txn.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("transaction reference %s: %w", txn.Reference, httpx.ErrDuplicate)
			}
			return err
		}
		for i := range entries {
			entries[i].TransactionID = txn.ID
			entries[i].CreatedAt = now
			err := tx.QueryRow(ctx,
				`INSERT INTO transaction_entries (transaction_id, account_id, debit_amount, credit_amount, description, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
				entries[i].TransactionID, entries[i].AccountID, entries[i].DebitAmount, entries[i].CreditAmount, entries[i].Description, now,
			).Scan(&entries[i].ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return FinancialTransaction{}, err
	}
	txn.CreatedAt = now
	txn.UpdatedAt = now
	return txn, nil
}

func (r *repository) Journal(ctx context.Context, filter JournalFilter) ([]JournalRow, error) {
	query := `SELECT e.transaction_id, t.transaction_date, t.transaction_reference,
		a.account_name, a.account_code, e.debit_amount, e.credit_amount, COALESCE(e.description, '')
		FROM transaction_entries e
		INNER JOIN financial_transactions t ON e.transaction_id = t.id
		INNER JOIN chart_of_accounts a ON e.account_id = a.id
		WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filter.StartDate != nil {
		argCount++
		query += ` AND t.transaction_date >= $` + strconv.Itoa(argCount)
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		argCount++
		query += ` AND t.transaction_date <= $` + strconv.Itoa(argCount)
		args = append(args, *filter.EndDate)
	}

	query += ` ORDER BY t.transaction_date DESC, t.transaction_reference ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var report []JournalRow
	for rows.Next() {
		var row JournalRow
		if err := rows.Scan(&row.TransactionID, &row.Date, &row.Reference, &row.AccountName, &row.AccountCode, &row.DebitAmount, &row.CreditAmount, &row.Description); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
