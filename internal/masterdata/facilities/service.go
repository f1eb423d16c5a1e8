package facilities

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

func (s *Service) List(ctx context.Context) ([]Facility, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Facility, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input FacilityInput) (Facility, error) {
	return s.repo.Create(ctx, Facility{
		FacilityName:  input.FacilityName,
		FacilityType:  input.FacilityType,
		Location:      input.Location,
		Capacity:      input.Capacity,
		CostPerPerson: money.Round(input.CostPerPerson),
		Description:   input.Description,
		IsActive:      true,
	})
}

func (s *Service) Update(ctx context.Context, id int64, input FacilityInput) (Facility, error) {
	facility, err := s.repo.Get(ctx, id)
	if err != nil {
		return Facility{}, err
	}
	facility.FacilityName = input.FacilityName
	facility.FacilityType = input.FacilityType
	facility.Location = input.Location
	facility.Capacity = input.Capacity
	facility.CostPerPerson = money.Round(input.CostPerPerson)
	facility.Description = input.Description
	return s.repo.Update(ctx, facility)
}
