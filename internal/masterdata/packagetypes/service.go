package packagetypes

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]PackageType, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (PackageType, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input PackageTypeInput) (PackageType, error) {
	return s.repo.Create(ctx, PackageType{
		TypeName:    input.TypeName,
		Description: input.Description,
		IsActive:    true,
	})
}

func (s *Service) Update(ctx context.Context, id int64, input PackageTypeInput) (PackageType, error) {
	pt, err := s.repo.Get(ctx, id)
	if err != nil {
		return PackageType{}, err
	}
	pt.TypeName = input.TypeName
	pt.Description = input.Description
	return s.repo.Update(ctx, pt)
}
