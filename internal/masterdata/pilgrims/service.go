package pilgrims

import (
	"context"

	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) (shared.ListResult[Pilgrim], error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id int64) (Pilgrim, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input PilgrimInput) (Pilgrim, error) {
	return s.repo.Create(ctx, fromInput(input))
}

func (s *Service) Update(ctx context.Context, id int64, input PilgrimInput) (Pilgrim, error) {
	return s.repo.Update(ctx, id, fromInput(input))
}

func fromInput(input PilgrimInput) Pilgrim {
	status := input.Status
	if status == "" {
		status = StatusRegistered
	}
	return Pilgrim{
		FullName:              input.FullName,
		Email:                 input.Email,
		Phone:                 input.Phone,
		PassportNumber:        input.PassportNumber,
		PassportExpiry:        input.PassportExpiry,
		DateOfBirth:           input.DateOfBirth,
		Address:               input.Address,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
		Status:                status,
	}
}
