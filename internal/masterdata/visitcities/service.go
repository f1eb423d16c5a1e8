package visitcities

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]VisitCity, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (VisitCity, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input VisitCityInput) (VisitCity, error) {
	return s.repo.Create(ctx, VisitCity{
		CityName:    input.CityName,
		Country:     input.Country,
		Description: input.Description,
		IsActive:    true,
	})
}

func (s *Service) Update(ctx context.Context, id int64, input VisitCityInput) (VisitCity, error) {
	city, err := s.repo.Get(ctx, id)
	if err != nil {
		return VisitCity{}, err
	}
	city.CityName = input.CityName
	city.Country = input.Country
	city.Description = input.Description
	return s.repo.Update(ctx, city)
}
