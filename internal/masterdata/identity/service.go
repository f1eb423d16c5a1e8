package identity

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (TravelIdentity, error) {
	return s.repo.Get(ctx)
}

func (s *Service) Save(ctx context.Context, input IdentityInput) (TravelIdentity, error) {
	theme := input.Theme
	if theme == "" {
		theme = "purple"
	}
	return s.repo.Save(ctx, TravelIdentity{
		TravelName: input.TravelName,
		LogoURL:    input.LogoURL,
		Address:    input.Address,
		Email:      input.Email,
		Phone:      input.Phone,
		Theme:      theme,
	})
}
