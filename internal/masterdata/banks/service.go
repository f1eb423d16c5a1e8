package banks

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Bank, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Bank, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input BankInput) (Bank, error) {
	return s.repo.Create(ctx, Bank{
		BankName:          input.BankName,
		AccountNumber:     input.AccountNumber,
		AccountHolderName: input.AccountHolderName,
		Branch:            input.Branch,
		SwiftCode:         input.SwiftCode,
		IsActive:          true,
	})
}

func (s *Service) Update(ctx context.Context, id int64, input BankInput) (Bank, error) {
	bank, err := s.repo.Get(ctx, id)
	if err != nil {
		return Bank{}, err
	}
	bank.BankName = input.BankName
	bank.AccountNumber = input.AccountNumber
	bank.AccountHolderName = input.AccountHolderName
	bank.Branch = input.Branch
	bank.SwiftCode = input.SwiftCode
	return s.repo.Update(ctx, bank)
}
