package bookings

import "github.com/shopspring/decimal"

// CreateBookingInput carries a new reservation request. paid_amount
// defaults to zero when omitted.
type CreateBookingInput struct {
	PackageID          int64           `json:"package_id" validate:"required"`
	PilgrimID          int64           `json:"pilgrim_id" validate:"required"`
	MarketingPartnerID *int64          `json:"marketing_partner_id"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	PaidAmount         decimal.Decimal `json:"paid_amount"`
	SpecialRequests    *string         `json:"special_requests"`
}

// ApplyPaymentInput is an incremental payment. The engine accepts any
// amount as-is, including overpayments and negative adjustments.
type ApplyPaymentInput struct {
	Amount decimal.Decimal `json:"amount"`
}
