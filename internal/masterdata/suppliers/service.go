package suppliers

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Supplier, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input SupplierInput) (Supplier, error) {
	return s.repo.Create(ctx, Supplier{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		SupplierType:  input.SupplierType,
		IsActive:      true,
	})
}

func (s *Service) Update(ctx context.Context, id int64, input SupplierInput) (Supplier, error) {
	supplier, err := s.repo.Get(ctx, id)
	if err != nil {
		return Supplier{}, err
	}
	supplier.Name = input.Name
	supplier.ContactPerson = input.ContactPerson
	supplier.Email = input.Email
	supplier.Phone = input.Phone
	supplier.Address = input.Address
	supplier.SupplierType = input.SupplierType
	return s.repo.Update(ctx, supplier)
}
