package pilgrims

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/shared"
	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type memoryPilgrimRepo struct {
	pilgrims map[int64]Pilgrim
	nextID   int64
}

func newMemoryPilgrimRepo() *memoryPilgrimRepo {
	return &memoryPilgrimRepo{pilgrims: make(map[int64]Pilgrim)}
}

func (r *memoryPilgrimRepo) List(ctx context.Context, filters shared.ListFilters) (shared.ListResult[Pilgrim], error) {
	matched := []Pilgrim{}
	needle := strings.ToLower(filters.Search)
	for _, p := range r.pilgrims {
		if needle == "" ||
			strings.Contains(strings.ToLower(p.FullName), needle) ||
			strings.Contains(strings.ToLower(p.PassportNumber), needle) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].FullName < matched[j].FullName })

	result := shared.ListResult[Pilgrim]{Items: matched, Total: len(matched)}
	if filters.Limit > 0 {
		start := (filters.Page - 1) * filters.Limit
		if start > len(matched) {
			start = len(matched)
		}
		end := start + filters.Limit
		if end > len(matched) {
			end = len(matched)
		}
		result.Items = matched[start:end]
	}
	return result, nil
}

func (r *memoryPilgrimRepo) Get(ctx context.Context, id int64) (Pilgrim, error) {
	p, ok := r.pilgrims[id]
	if !ok {
		return Pilgrim{}, fmt.Errorf("pilgrim %d: %w", id, httpx.ErrNotFound)
	}
	return p, nil
}

func (r *memoryPilgrimRepo) Create(ctx context.Context, pilgrim Pilgrim) (Pilgrim, error) {
	for _, existing := range r.pilgrims {
		if existing.PassportNumber == pilgrim.PassportNumber {
			return Pilgrim{}, fmt.Errorf("passport number %s: %w", pilgrim.PassportNumber, httpx.ErrDuplicate)
		}
	}
	r.nextID++
	pilgrim.ID = r.nextID
	r.pilgrims[pilgrim.ID] = pilgrim
	return pilgrim, nil
}

func (r *memoryPilgrimRepo) Update(ctx context.Context, id int64, pilgrim Pilgrim) (Pilgrim, error) {
	if _, ok := r.pilgrims[id]; !ok {
		return Pilgrim{}, fmt.Errorf("pilgrim %d: %w", id, httpx.ErrNotFound)
	}
	pilgrim.ID = id
	r.pilgrims[id] = pilgrim
	return pilgrim, nil
}

func pilgrimInput(name, passport string) PilgrimInput {
	return PilgrimInput{
		FullName:       name,
		Phone:          "+628123456789",
		PassportNumber: passport,
		PassportExpiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		DateOfBirth:    time.Date(1980, 5, 17, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreatePilgrimDefaultsStatus(t *testing.T) {
	repo := newMemoryPilgrimRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), pilgrimInput("Siti Aminah", "C1234567"))
	require.NoError(t, err)
	require.Equal(t, StatusRegistered, p.Status)
}

func TestCreatePilgrimDuplicatePassport(t *testing.T) {
	repo := newMemoryPilgrimRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), pilgrimInput("Siti Aminah", "C1234567"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), pilgrimInput("Budi Santoso", "C1234567"))
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}

func TestListPilgrimsSearchAndPaging(t *testing.T) {
	repo := newMemoryPilgrimRepo()
	svc := NewService(repo)

	names := []string{"Ahmad Fauzi", "Budi Santoso", "Siti Aminah"}
	for i, name := range names {
		_, err := svc.Create(context.Background(), pilgrimInput(name, fmt.Sprintf("C%07d", i)))
		require.NoError(t, err)
	}

	found, err := svc.List(context.Background(), shared.ListFilters{Search: "siti"})
	require.NoError(t, err)
	require.Equal(t, 1, found.Total)
	require.Equal(t, "Siti Aminah", found.Items[0].FullName)

	page, err := svc.List(context.Background(), shared.ListFilters{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Siti Aminah", page.Items[0].FullName)
}

func TestUpdateMissingPilgrim(t *testing.T) {
	repo := newMemoryPilgrimRepo()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 42, pilgrimInput("Siti Aminah", "C1234567"))
	require.ErrorIs(t, err, httpx.ErrNotFound)
}
