package dashboard

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Stats(ctx context.Context) (Stats, error)
	SalesTrends(ctx context.Context, filter TrendFilter) ([]SalesTrend, error)
	Distribution(ctx context.Context) ([]PackageShare, error)
	UnpaidPilgrims(ctx context.Context, now time.Time) ([]UnpaidPilgrim, error)
}

const defaultTrendMonths = 12

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := r.db.QueryRow(ctx,
		`SELECT (SELECT COUNT(*) FROM pilgrims),
		        (SELECT COUNT(*) FROM packages WHERE is_active),
		        (SELECT COUNT(*) FROM package_bookings),
		        (SELECT COALESCE(SUM(paid_amount), 0) FROM package_bookings),
		        (SELECT COALESCE(SUM(remaining_amount), 0) FROM package_bookings WHERE remaining_amount > 0)`,
	).Scan(&s.TotalPilgrims, &s.ActivePackages, &s.TotalBookings, &s.TotalRevenue, &s.OutstandingPayments)
	return s, err
}

func (r *repository) SalesTrends(ctx context.Context, filter TrendFilter) ([]SalesTrend, error) {
	query := `SELECT to_char(booking_date, 'YYYY-MM') AS month,
	        COUNT(*),
	        COALESCE(SUM(paid_amount), 0)
	 FROM package_bookings
	 WHERE 1=1`
	args := []any{}

	if filter.StartDate == nil && filter.EndDate == nil {
		args = append(args, defaultTrendMonths)
		query += ` AND booking_date >= date_trunc('month', now()) - make_interval(months => $1 - 1)`
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += ` AND booking_date >= $` + strconv.Itoa(len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += ` AND booking_date <= $` + strconv.Itoa(len(args))
	}

	query += ` GROUP BY month ORDER BY month`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var trends []SalesTrend
	for rows.Next() {
		var t SalesTrend
		if err := rows.Scan(&t.Month, &t.Bookings, &t.Revenue); err != nil {
			return nil, err
		}
		trends = append(trends, t)
	}
	return trends, rows.Err()
}

func (r *repository) Distribution(ctx context.Context) ([]PackageShare, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.package_type, COUNT(b.id)
		 FROM package_bookings b
		 JOIN packages p ON p.id = b.package_id
		 GROUP BY p.package_type
		 ORDER BY p.package_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var shares []PackageShare
	total := 0
	for rows.Next() {
		var s PackageShare
		if err := rows.Scan(&s.PackageType, &s.Count); err != nil {
			return nil, err
		}
		total += s.Count
		shares = append(shares, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return withPercentages(shares, total), nil
}

// withPercentages derives each slice's share of the total, rounded to
// one decimal place.
func withPercentages(shares []PackageShare, total int) []PackageShare {
	if total == 0 {
		return shares
	}
	totalDec := decimal.NewFromInt(int64(total))
	hundred := decimal.NewFromInt(100)
	for i := range shares {
		count := decimal.NewFromInt(int64(shares[i].Count))
		shares[i].Percentage = count.Mul(hundred).DivRound(totalDec, 1)
	}
	return shares
}

func (r *repository) UnpaidPilgrims(ctx context.Context, now time.Time) ([]UnpaidPilgrim, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, pl.full_name, p.package_name, b.total_amount, b.remaining_amount, b.booking_date
		 FROM package_bookings b
		 JOIN pilgrims pl ON pl.id = b.pilgrim_id
		 JOIN packages p ON p.id = b.package_id
		 WHERE b.remaining_amount > 0 AND b.payment_status <> 'cancelled'
		 ORDER BY b.booking_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var unpaid []UnpaidPilgrim
	for rows.Next() {
		var u UnpaidPilgrim
		var bookedAt time.Time
		if err := rows.Scan(&u.BookingID, &u.PilgrimName, &u.PackageName, &u.TotalAmount, &u.RemainingAmount, &bookedAt); err != nil {
			return nil, err
		}
		u.DaysOverdue = DaysOverdue(bookedAt, now)
		unpaid = append(unpaid, u)
	}
	return unpaid, rows.Err()
}

// DaysOverdue counts whole days since the booking was made. Fresh
// bookings report zero.
func DaysOverdue(bookedAt, now time.Time) int {
	days := int(now.Sub(bookedAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
