package dashboard

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	calls      int32
	lastFilter TrendFilter
}

func (r *stubRepo) Stats(ctx context.Context) (Stats, error) {
	atomic.AddInt32(&r.calls, 1)
	return Stats{
		TotalPilgrims:       120,
		ActivePackages:      4,
		TotalBookings:       80,
		TotalRevenue:        decimal.NewFromInt(900000000),
		OutstandingPayments: decimal.NewFromInt(150000000),
	}, nil
}

func (r *stubRepo) SalesTrends(ctx context.Context, filter TrendFilter) ([]SalesTrend, error) {
	atomic.AddInt32(&r.calls, 1)
	r.lastFilter = filter
	return []SalesTrend{{Month: "2024-01", Bookings: 10, Revenue: decimal.NewFromInt(100)}}, nil
}

func (r *stubRepo) Distribution(ctx context.Context) ([]PackageShare, error) {
	atomic.AddInt32(&r.calls, 1)
	return withPercentages([]PackageShare{
		{PackageType: "haji", Count: 1},
		{PackageType: "umrah", Count: 3},
	}, 4), nil
}

func (r *stubRepo) UnpaidPilgrims(ctx context.Context, now time.Time) ([]UnpaidPilgrim, error) {
	atomic.AddInt32(&r.calls, 1)
	return []UnpaidPilgrim{{BookingID: 1, PilgrimName: "Ahmad", RemainingAmount: decimal.NewFromInt(500)}}, nil
}

func newTestService(t *testing.T) (*Service, *stubRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := &stubRepo{}
	svc := NewService(slog.Default(), repo, client, time.Minute)
	return svc, repo
}

func TestOverviewAggregates(t *testing.T) {
	svc, _ := newTestService(t)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 120, overview.Stats.TotalPilgrims)
	require.Len(t, overview.SalesTrends, 1)
	require.Len(t, overview.UnpaidPilgrims, 1)

	require.Len(t, overview.Distribution, 2)
	require.True(t, overview.Distribution[0].Percentage.Equal(decimal.NewFromInt(25)))
	require.True(t, overview.Distribution[1].Percentage.Equal(decimal.NewFromInt(75)))
}

func TestOverviewServedFromCache(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Overview(context.Background())
	require.NoError(t, err)
	first := atomic.LoadInt32(&repo.calls)
	require.Equal(t, int32(4), first)

	_, err = svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, atomic.LoadInt32(&repo.calls), "second read must hit the cache")
}

func TestInvalidateForcesRefresh(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.Invalidate(context.Background()))

	_, err = svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(8), atomic.LoadInt32(&repo.calls))
}

func TestDaysOverdue(t *testing.T) {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	require.Equal(t, 10, DaysOverdue(time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC), now))
	require.Equal(t, 0, DaysOverdue(now, now))
	require.Equal(t, 0, DaysOverdue(now.Add(time.Hour), now))
}

func TestWithPercentagesEmpty(t *testing.T) {
	require.Empty(t, withPercentages(nil, 0))
}

func TestWithPercentagesRoundsToOneDecimal(t *testing.T) {
	shares := withPercentages([]PackageShare{
		{PackageType: "haji", Count: 1},
		{PackageType: "umrah", Count: 2},
	}, 3)

	require.True(t, shares[0].Percentage.Equal(decimal.NewFromFloat(33.3)), "haji %s", shares[0].Percentage)
	require.True(t, shares[1].Percentage.Equal(decimal.NewFromFloat(66.7)), "umrah %s", shares[1].Percentage)
}

func TestSalesTrendsPassesRangeAndSkipsCache(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Overview(context.Background())
	require.NoError(t, err)
	cached := atomic.LoadInt32(&repo.calls)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	_, err = svc.SalesTrends(context.Background(), TrendFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Equal(t, cached+1, atomic.LoadInt32(&repo.calls), "ranged read must hit the repository")
	require.NotNil(t, repo.lastFilter.StartDate)
	require.True(t, repo.lastFilter.StartDate.Equal(start))
	require.NotNil(t, repo.lastFilter.EndDate)
	require.True(t, repo.lastFilter.EndDate.Equal(end))
}
