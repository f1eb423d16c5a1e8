package bookings

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type memoryBookingRepo struct {
	mu       sync.Mutex
	bookings map[int64]PackageBooking
	packages map[int64]struct{}
	pilgrims map[int64]struct{}
	nextID   int64
}

func newMemoryBookingRepo() *memoryBookingRepo {
	return &memoryBookingRepo{
		bookings: make(map[int64]PackageBooking),
		packages: make(map[int64]struct{}),
		pilgrims: make(map[int64]struct{}),
	}
}

func (r *memoryBookingRepo) List(ctx context.Context) ([]PackageBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []PackageBooking
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *memoryBookingRepo) ListOutstanding(ctx context.Context) ([]PackageBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []PackageBooking
	for _, b := range r.bookings {
		if b.RemainingAmount.IsPositive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryBookingRepo) Get(ctx context.Context, id int64) (PackageBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return PackageBooking{}, fmt.Errorf("booking %d: %w", id, httpx.ErrNotFound)
	}
	return b, nil
}

func (r *memoryBookingRepo) Create(ctx context.Context, booking PackageBooking) (PackageBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	booking.ID = r.nextID
	booking.BookingDate = time.Now()
	r.bookings[booking.ID] = booking
	return booking, nil
}

// ApplyPayment mirrors the single-statement UPDATE: the whole
// increment-and-derive happens under one lock, like the row lock the
// store takes.
func (r *memoryBookingRepo) ApplyPayment(ctx context.Context, id int64, amount decimal.Decimal) (PackageBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return PackageBooking{}, fmt.Errorf("booking %d: %w", id, httpx.ErrNotFound)
	}
	b.PaidAmount = b.PaidAmount.Add(amount)
	b.RemainingAmount = b.TotalAmount.Sub(b.PaidAmount)
	b.PaymentStatus = PaymentStatusFor(b.PaidAmount, b.TotalAmount)
	b.UpdatedAt = time.Now()
	r.bookings[id] = b
	return b, nil
}

func (r *memoryBookingRepo) PackageExists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.packages[id]
	return ok, nil
}

func (r *memoryBookingRepo) PilgrimExists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.pilgrims[id]
	return ok, nil
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func seededRepo() *memoryBookingRepo {
	repo := newMemoryBookingRepo()
	repo.packages[1] = struct{}{}
	repo.pilgrims[1] = struct{}{}
	return repo
}

func TestCreateBooking(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	booking, err := svc.Create(context.Background(), CreateBookingInput{
		PackageID:   1,
		PilgrimID:   1,
		TotalAmount: dec(2000),
	})
	require.NoError(t, err)
	require.Equal(t, PaymentStatusPending, booking.PaymentStatus)
	require.Equal(t, BookingStatusRegistered, booking.BookingStatus)
	require.True(t, booking.RemainingAmount.Equal(dec(2000)))

	booking, err = svc.Create(context.Background(), CreateBookingInput{
		PackageID:   1,
		PilgrimID:   1,
		TotalAmount: dec(2000),
		PaidAmount:  dec(2000),
	})
	require.NoError(t, err)
	require.Equal(t, PaymentStatusCompleted, booking.PaymentStatus)
	require.True(t, booking.RemainingAmount.IsZero())
}

func TestCreateBookingPackageMissing(t *testing.T) {
	repo := newMemoryBookingRepo()
	repo.pilgrims[1] = struct{}{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateBookingInput{PackageID: 7, PilgrimID: 1, TotalAmount: dec(100)})
	require.ErrorIs(t, err, httpx.ErrNotFound)
	require.Empty(t, repo.bookings, "failed precondition must not insert")
}

func TestCreateBookingPilgrimMissing(t *testing.T) {
	repo := newMemoryBookingRepo()
	repo.packages[1] = struct{}{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateBookingInput{PackageID: 1, PilgrimID: 7, TotalAmount: dec(100)})
	require.ErrorIs(t, err, httpx.ErrNotFound)
	require.Empty(t, repo.bookings)
}

func TestSequentialPayments(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	booking, err := svc.Create(context.Background(), CreateBookingInput{PackageID: 1, PilgrimID: 1, TotalAmount: dec(2000)})
	require.NoError(t, err)

	booking, err = svc.ApplyPayment(context.Background(), booking.ID, dec(500))
	require.NoError(t, err)
	require.Equal(t, PaymentStatusPartial, booking.PaymentStatus)
	require.True(t, booking.RemainingAmount.Equal(dec(1500)))

	booking, err = svc.ApplyPayment(context.Background(), booking.ID, dec(800))
	require.NoError(t, err)
	require.Equal(t, PaymentStatusPartial, booking.PaymentStatus)
	require.True(t, booking.RemainingAmount.Equal(dec(700)))

	booking, err = svc.ApplyPayment(context.Background(), booking.ID, dec(700))
	require.NoError(t, err)
	require.Equal(t, PaymentStatusCompleted, booking.PaymentStatus)
	require.True(t, booking.RemainingAmount.IsZero())
}

func TestApplyPaymentMissingBooking(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	_, err := svc.ApplyPayment(context.Background(), 42, dec(100))
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestOverpaymentAndNegativeAdjustment(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	booking, err := svc.Create(context.Background(), CreateBookingInput{PackageID: 1, PilgrimID: 1, TotalAmount: dec(2000)})
	require.NoError(t, err)

	booking, err = svc.ApplyPayment(context.Background(), booking.ID, dec(2500))
	require.NoError(t, err)
	require.Equal(t, PaymentStatusCompleted, booking.PaymentStatus)
	require.True(t, booking.RemainingAmount.Equal(dec(-500)), "overpayment drives remaining negative")

	// A later negative adjustment may leave a completed booking again.
	booking, err = svc.ApplyPayment(context.Background(), booking.ID, dec(-600))
	require.NoError(t, err)
	require.Equal(t, PaymentStatusPartial, booking.PaymentStatus)
}

// Two simultaneous payments must both land; a naive read-modify-write
// loses one of the increments.
func TestConcurrentPayments(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	booking, err := svc.Create(context.Background(), CreateBookingInput{PackageID: 1, PilgrimID: 1, TotalAmount: dec(2000)})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ApplyPayment(context.Background(), booking.ID, dec(500))
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := svc.Get(context.Background(), booking.ID)
	require.NoError(t, err)
	require.True(t, final.PaidAmount.Equal(dec(1000)), "paid %s", final.PaidAmount)
	require.True(t, final.RemainingAmount.Equal(dec(1000)))
	require.Equal(t, PaymentStatusPartial, final.PaymentStatus)
}

func TestPaymentStatusFor(t *testing.T) {
	cases := []struct {
		name  string
		paid  float64
		total float64
		want  PaymentStatus
	}{
		{"zero paid", 0, 2000, PaymentStatusPending},
		{"negative paid", -50, 2000, PaymentStatusPending},
		{"partial", 500, 2000, PaymentStatusPartial},
		{"exact", 2000, 2000, PaymentStatusCompleted},
		{"overpaid", 2500, 2000, PaymentStatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, PaymentStatusFor(dec(tc.paid), dec(tc.total)))
		})
	}
}
