package bookings

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
	"github.com/mabrur-erp/mabrur-erp/internal/platform/money"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]PackageBooking, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (PackageBooking, error) {
	return s.repo.Get(ctx, id)
}

// ListOutstanding returns bookings that still owe money.
func (s *Service) ListOutstanding(ctx context.Context) ([]PackageBooking, error) {
	return s.repo.ListOutstanding(ctx)
}

// Create registers a new booking. Both the package and the pilgrim are
// existence-checked before any write, so a failed precondition leaves
// no row behind.
func (s *Service) Create(ctx context.Context, input CreateBookingInput) (PackageBooking, error) {
	ok, err := s.repo.PackageExists(ctx, input.PackageID)
	if err != nil {
		return PackageBooking{}, err
	}
	if !ok {
		return PackageBooking{}, fmt.Errorf("package %d: %w", input.PackageID, httpx.ErrNotFound)
	}

	ok, err = s.repo.PilgrimExists(ctx, input.PilgrimID)
	if err != nil {
		return PackageBooking{}, err
	}
	if !ok {
		return PackageBooking{}, fmt.Errorf("pilgrim %d: %w", input.PilgrimID, httpx.ErrNotFound)
	}

	total := money.Round(input.TotalAmount)
	paid := money.Round(input.PaidAmount)
	return s.repo.Create(ctx, PackageBooking{
		PackageID:          input.PackageID,
		PilgrimID:          input.PilgrimID,
		MarketingPartnerID: input.MarketingPartnerID,
		TotalAmount:        total,
		PaidAmount:         paid,
		RemainingAmount:    total.Sub(paid),
		PaymentStatus:      PaymentStatusFor(paid, total),
		BookingStatus:      BookingStatusRegistered,
		SpecialRequests:    input.SpecialRequests,
	})
}

// ApplyPayment adds an incremental payment to a booking. The update is
// a single atomic increment at the store, so retrying a timed-out call
// double-applies the amount; callers must not blindly retry.
func (s *Service) ApplyPayment(ctx context.Context, id int64, amount decimal.Decimal) (PackageBooking, error) {
	return s.repo.ApplyPayment(ctx, id, money.Round(amount))
}
