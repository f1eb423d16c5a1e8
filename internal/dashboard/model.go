package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats is the headline figures block.
type Stats struct {
	TotalPilgrims       int             `json:"total_pilgrims"`
	ActivePackages      int             `json:"active_packages"`
	TotalBookings       int             `json:"total_bookings"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	OutstandingPayments decimal.Decimal `json:"outstanding_payments"`
}

// SalesTrend is one month of booking volume and collected revenue.
// Month is formatted YYYY-MM.
type SalesTrend struct {
	Month    string          `json:"month"`
	Bookings int             `json:"bookings"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// TrendFilter bounds the monthly sales series. With both bounds nil
// the series covers the trailing twelve months.
type TrendFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// PackageShare is one slice of the package distribution chart.
type PackageShare struct {
	PackageType string          `json:"package_type"`
	Count       int             `json:"count"`
	Percentage  decimal.Decimal `json:"percentage"`
}

// UnpaidPilgrim is a booking with money still owed.
type UnpaidPilgrim struct {
	BookingID       int64           `json:"booking_id"`
	PilgrimName     string          `json:"pilgrim_name"`
	PackageName     string          `json:"package_name"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	DaysOverdue     int             `json:"days_overdue"`
}

// Overview bundles everything the dashboard renders in one payload.
type Overview struct {
	Stats          Stats           `json:"stats"`
	SalesTrends    []SalesTrend    `json:"sales_trends"`
	Distribution   []PackageShare  `json:"package_distribution"`
	UnpaidPilgrims []UnpaidPilgrim `json:"unpaid_pilgrims"`
}
