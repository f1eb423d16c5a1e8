package bookings

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus summarizes a booking's paid-vs-total relationship.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// BookingStatus tracks the pilgrim lifecycle, independent of payment.
type BookingStatus string

const (
	BookingStatusRegistered BookingStatus = "registered"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusDeparted   BookingStatus = "departed"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// PackageBooking is a pilgrim's reservation against a travel package.
// remaining_amount always equals total_amount - paid_amount, and
// payment_status is a pure function of (paid_amount, total_amount).
type PackageBooking struct {
	ID                 int64           `json:"id"`
	PackageID          int64           `json:"package_id"`
	PilgrimID          int64           `json:"pilgrim_id"`
	MarketingPartnerID *int64          `json:"marketing_partner_id"`
	BookingDate        time.Time       `json:"booking_date"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	PaidAmount         decimal.Decimal `json:"paid_amount"`
	RemainingAmount    decimal.Decimal `json:"remaining_amount"`
	PaymentStatus      PaymentStatus   `json:"payment_status"`
	BookingStatus      BookingStatus   `json:"booking_status"`
	SpecialRequests    *string         `json:"special_requests"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// PaymentStatusFor derives the payment status. The function is total
// over all inputs and re-evaluated on every write; no transition is
// ever rejected, so a negative adjustment can move a completed booking
// back to partial.
func PaymentStatusFor(paid, total decimal.Decimal) PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return PaymentStatusCompleted
	case paid.IsPositive():
		return PaymentStatusPartial
	default:
		return PaymentStatusPending
	}
}
