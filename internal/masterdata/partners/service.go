package partners

import (
	"context"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/money"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]MarketingPartner, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (MarketingPartner, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input PartnerInput) (MarketingPartner, error) {
	return s.repo.Create(ctx, MarketingPartner{
		Name:           input.Name,
		ContactPerson:  input.ContactPerson,
		Email:          input.Email,
		Phone:          input.Phone,
		Address:        input.Address,
		CommissionRate: money.Round(input.CommissionRate),
		IsActive:       true,
	})
}

// Patch applies a partial update over the stored row.
func (s *Service) Patch(ctx context.Context, id int64, patch PartnerPatch) (MarketingPartner, error) {
	partner, err := s.repo.Get(ctx, id)
	if err != nil {
		return MarketingPartner{}, err
	}
	if patch.Name != nil {
		partner.Name = *patch.Name
	}
	if patch.ContactPerson != nil {
		partner.ContactPerson = *patch.ContactPerson
	}
	if patch.Email != nil {
		partner.Email = patch.Email
	}
	if patch.Phone != nil {
		partner.Phone = *patch.Phone
	}
	if patch.Address != nil {
		partner.Address = *patch.Address
	}
	if patch.CommissionRate != nil {
		partner.CommissionRate = money.Round(*patch.CommissionRate)
	}
	if patch.IsActive != nil {
		partner.IsActive = *patch.IsActive
	}
	return s.repo.Update(ctx, partner)
}
