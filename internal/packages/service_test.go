package packages

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type memoryPackageRepo struct {
	packages map[int64]Package
	types    map[int64]struct{}
	nextID   int64
}

func newMemoryPackageRepo() *memoryPackageRepo {
	return &memoryPackageRepo{packages: make(map[int64]Package), types: make(map[int64]struct{})}
}

func (r *memoryPackageRepo) List(ctx context.Context, category Category) ([]Package, error) {
	var out []Package
	for _, p := range r.packages {
		if category == "" || p.PackageType == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryPackageRepo) Get(ctx context.Context, id int64) (Package, error) {
	p, ok := r.packages[id]
	if !ok {
		return Package{}, fmt.Errorf("package %d: %w", id, httpx.ErrNotFound)
	}
	return p, nil
}

func (r *memoryPackageRepo) Create(ctx context.Context, pkg Package) (Package, error) {
	r.nextID++
	pkg.ID = r.nextID
	r.packages[pkg.ID] = pkg
	return pkg, nil
}

func (r *memoryPackageRepo) PackageTypeExists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.types[id]
	return ok, nil
}

func validInput() CreatePackageInput {
	return CreatePackageInput{
		PackageName:     "Umrah Ramadhan",
		PackageType:     CategoryUmrah,
		PackageTypeID:   1,
		DurationDays:    12,
		BasePrice:       decimal.NewFromFloat(35000000.555),
		MaxParticipants: 45,
		DepartureDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:      time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreatePackage(t *testing.T) {
	repo := newMemoryPackageRepo()
	repo.types[1] = struct{}{}
	svc := NewService(repo)

	pkg, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.True(t, pkg.IsActive)
	require.True(t, pkg.BasePrice.Equal(decimal.NewFromFloat(35000000.56)), "price %s", pkg.BasePrice)
}

func TestCreatePackageUnknownType(t *testing.T) {
	repo := newMemoryPackageRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), validInput())
	require.ErrorIs(t, err, httpx.ErrNotFound)
	require.Empty(t, repo.packages, "failed precondition must not insert")
}

func TestListByCategory(t *testing.T) {
	repo := newMemoryPackageRepo()
	repo.types[1] = struct{}{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	haji := validInput()
	haji.PackageName = "Haji Plus"
	haji.PackageType = CategoryHaji
	_, err = svc.Create(context.Background(), haji)
	require.NoError(t, err)

	umrahOnly, err := svc.ListByCategory(context.Background(), CategoryUmrah)
	require.NoError(t, err)
	require.Len(t, umrahOnly, 1)
	require.Equal(t, CategoryUmrah, umrahOnly[0].PackageType)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
}
