package partners

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type memoryPartnerRepo struct {
	partners map[int64]MarketingPartner
	nextID   int64
}

func newMemoryPartnerRepo() *memoryPartnerRepo {
	return &memoryPartnerRepo{partners: make(map[int64]MarketingPartner)}
}

func (r *memoryPartnerRepo) List(ctx context.Context) ([]MarketingPartner, error) {
	var out []MarketingPartner
	for _, p := range r.partners {
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryPartnerRepo) Get(ctx context.Context, id int64) (MarketingPartner, error) {
	p, ok := r.partners[id]
	if !ok {
		return MarketingPartner{}, fmt.Errorf("marketing partner %d: %w", id, httpx.ErrNotFound)
	}
	return p, nil
}

func (r *memoryPartnerRepo) Create(ctx context.Context, partner MarketingPartner) (MarketingPartner, error) {
	r.nextID++
	partner.ID = r.nextID
	r.partners[partner.ID] = partner
	return partner, nil
}

func (r *memoryPartnerRepo) Update(ctx context.Context, partner MarketingPartner) (MarketingPartner, error) {
	if _, ok := r.partners[partner.ID]; !ok {
		return MarketingPartner{}, fmt.Errorf("marketing partner %d: %w", partner.ID, httpx.ErrNotFound)
	}
	r.partners[partner.ID] = partner
	return partner, nil
}

func TestCreatePartnerRoundsCommission(t *testing.T) {
	repo := newMemoryPartnerRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), PartnerInput{
		Name:           "Mitra Barokah",
		CommissionRate: decimal.NewFromFloat(2.555),
	})
	require.NoError(t, err)
	require.True(t, p.IsActive)
	require.True(t, p.CommissionRate.Equal(decimal.NewFromFloat(2.56)), "rate %s", p.CommissionRate)
}

func TestPatchPartnerUpdatesOnlyGivenFields(t *testing.T) {
	repo := newMemoryPartnerRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), PartnerInput{
		Name:           "Mitra Barokah",
		Phone:          "+62811111111",
		CommissionRate: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	newRate := decimal.NewFromFloat(7.5)
	inactive := false
	patched, err := svc.Patch(context.Background(), p.ID, PartnerPatch{
		CommissionRate: &newRate,
		IsActive:       &inactive,
	})
	require.NoError(t, err)
	require.Equal(t, "Mitra Barokah", patched.Name, "untouched field must survive")
	require.Equal(t, "+62811111111", patched.Phone)
	require.True(t, patched.CommissionRate.Equal(newRate))
	require.False(t, patched.IsActive)
}

func TestPatchMissingPartner(t *testing.T) {
	repo := newMemoryPartnerRepo()
	svc := NewService(repo)

	_, err := svc.Patch(context.Background(), 42, PartnerPatch{})
	require.ErrorIs(t, err, httpx.ErrNotFound)
}
