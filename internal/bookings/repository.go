package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]PackageBooking, error)
	Get(ctx context.Context, id int64) (PackageBooking, error)
	Create(ctx context.Context, booking PackageBooking) (PackageBooking, error)
	ApplyPayment(ctx context.Context, id int64, amount decimal.Decimal) (PackageBooking, error)
	ListOutstanding(ctx context.Context) ([]PackageBooking, error)
	PackageExists(ctx context.Context, id int64) (bool, error)
	PilgrimExists(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, package_id, pilgrim_id, marketing_partner_id, booking_date, total_amount, paid_amount, remaining_amount, payment_status, booking_status, special_requests, created_at, updated_at`

func scanBooking(row pgx.Row) (PackageBooking, error) {
	var b PackageBooking
	err := row.Scan(&b.ID, &b.PackageID, &b.PilgrimID, &b.MarketingPartnerID, &b.BookingDate, &b.TotalAmount, &b.PaidAmount, &b.RemainingAmount, &b.PaymentStatus, &b.BookingStatus, &b.SpecialRequests, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *repository) List(ctx context.Context) ([]PackageBooking, error) {
	return r.queryBookings(ctx, `SELECT `+bookingColumns+` FROM package_bookings ORDER BY booking_date DESC`)
}

func (r *repository) ListOutstanding(ctx context.Context) ([]PackageBooking, error) {
	return r.queryBookings(ctx, `SELECT `+bookingColumns+` FROM package_bookings WHERE remaining_amount > 0 ORDER BY booking_date`)
}

func (r *repository) queryBookings(ctx context.Context, query string) ([]PackageBooking, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var bookings []PackageBooking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (PackageBooking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM package_bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return PackageBooking{}, fmt.Errorf("booking %d: %w", id, httpx.ErrNotFound)
	}
	return b, err
}

func (r *repository) Create(ctx context.Context, booking PackageBooking) (PackageBooking, error) {
	now := time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO package_bookings (package_id, pilgrim_id, marketing_partner_id, booking_date, total_amount, paid_amount, remaining_amount, payment_status, booking_status, special_requests, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`,
		booking.PackageID, booking.PilgrimID, booking.MarketingPartnerID, now, booking.TotalAmount, booking.PaidAmount, booking.RemainingAmount, booking.PaymentStatus, booking.BookingStatus, booking.SpecialRequests, now, now,
	).Scan(&booking.ID)
	if err != nil {
		return PackageBooking{}, err
	}
	booking.BookingDate = now
	booking.CreatedAt = now
	booking.UpdatedAt = now
	return booking, nil
}

// ApplyPayment increments paid_amount and recomputes remaining_amount
// and payment_status in a single UPDATE. Concurrent payments against the
// same booking therefore serialize on the row and never lose an
// increment the way a read-modify-write would.
func (r *repository) ApplyPayment(ctx context.Context, id int64, amount decimal.Decimal) (PackageBooking, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE package_bookings SET
			paid_amount = paid_amount + $2,
			remaining_amount = total_amount - (paid_amount + $2),
			payment_status = CASE
				WHEN paid_amount + $2 >= total_amount THEN 'completed'
				WHEN paid_amount + $2 > 0 THEN 'partial'
				ELSE 'pending'
			END,
			updated_at = $3
		 WHERE id = $1
		 RETURNING `+bookingColumns,
		id, amount, time.Now())
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return PackageBooking{}, fmt.Errorf("booking %d: %w", id, httpx.ErrNotFound)
	}
	return b, err
}

func (r *repository) PackageExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM packages WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *repository) PilgrimExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pilgrims WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
