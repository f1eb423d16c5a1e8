package airlines

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Airline, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Airline, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input AirlineInput) (Airline, error) {
	return s.repo.Create(ctx, Airline{
		AirlineName: input.AirlineName,
		AirlineCode: input.AirlineCode,
		ContactInfo: input.ContactInfo,
		IsActive:    true,
	})
}

func (s *Service) Update(ctx context.Context, id int64, input AirlineInput) (Airline, error) {
	airline, err := s.repo.Get(ctx, id)
	if err != nil {
		return Airline{}, err
	}
	airline.AirlineName = input.AirlineName
	airline.AirlineCode = input.AirlineCode
	airline.ContactInfo = input.ContactInfo
	return s.repo.Update(ctx, airline)
}
