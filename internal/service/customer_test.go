package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/shopapi/internal/domain"
	"github.com/pkordes/shopapi/internal/mapper"
	"github.com/pkordes/shopapi/internal/model"
	"github.com/pkordes/shopapi/internal/repo"
	"github.com/pkordes/shopapi/internal/service"
)

// mockCustomerRepo is a hand-written test double for repo.CustomerRepo.
// Each method is a function field; set only the ones your test needs.
// Calling an unset method panics, which fails the test loudly.
type mockCustomerRepo struct {
	findAll    func(ctx context.Context) ([]domain.Customer, error)
	findByID   func(ctx context.Context, id domain.ID) (domain.Customer, error)
	save       func(ctx context.Context, c domain.Customer) (domain.Customer, error)
	deleteByID func(ctx context.Context, id domain.ID) error
}

func (m *mockCustomerRepo) FindAll(ctx context.Context) ([]domain.Customer, error) {
	return m.findAll(ctx)
}
func (m *mockCustomerRepo) FindByID(ctx context.Context, id domain.ID) (domain.Customer, error) {
	return m.findByID(ctx, id)
}
func (m *mockCustomerRepo) Save(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	return m.save(ctx, c)
}
func (m *mockCustomerRepo) DeleteByID(ctx context.Context, id domain.ID) error {
	return m.deleteByID(ctx, id)
}

// compile-time check: mockCustomerRepo must satisfy repo.CustomerRepo.
var _ repo.CustomerRepo = (*mockCustomerRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func newCustomerService(r repo.CustomerRepo) *service.CustomerService {
	return service.NewCustomerService(r, mapper.Customer{})
}

// ---- List ------------------------------------------------------------------

func TestCustomerService_List(t *testing.T) {
	r := &mockCustomerRepo{
		findAll: func(_ context.Context) ([]domain.Customer, error) {
			return []domain.Customer{
				{ID: 1, Firstname: "Michale", Lastname: "Weston"},
				{ID: 2, Firstname: "Sam", Lastname: "Axe"},
			}, nil
		},
	}

	got, err := newCustomerService(r).List(context.Background())

	require.NoError(t, err)
	require.Len(t, got.Customers, 2)
	assert.Equal(t, "Michale", *got.Customers[0].Firstname)
	assert.Equal(t, "/api/v1/customers/1", got.Customers[0].CustomerURL)
	assert.Equal(t, "/api/v1/customers/2", got.Customers[1].CustomerURL)
}

func TestCustomerService_List_Empty(t *testing.T) {
	r := &mockCustomerRepo{
		findAll: func(_ context.Context) ([]domain.Customer, error) { return nil, nil },
	}

	got, err := newCustomerService(r).List(context.Background())

	require.NoError(t, err)
	// Should be an empty slice, not nil, so it encodes as [] rather than null.
	assert.NotNil(t, got.Customers)
	assert.Empty(t, got.Customers)
}

func TestCustomerService_List_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockCustomerRepo{
		findAll: func(_ context.Context) ([]domain.Customer, error) { return nil, repoErr },
	}

	_, err := newCustomerService(r).List(context.Background())

	assert.ErrorIs(t, err, repoErr)
}

// ---- GetByID ---------------------------------------------------------------

func TestCustomerService_GetByID_Found(t *testing.T) {
	r := &mockCustomerRepo{
		findByID: func(_ context.Context, id domain.ID) (domain.Customer, error) {
			return domain.Customer{ID: id, Firstname: "Joe", Lastname: "Newman"}, nil
		},
	}

	got, err := newCustomerService(r).GetByID(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, got.ID)
	assert.Equal(t, domain.ID(7), *got.ID)
	assert.Equal(t, "Joe", *got.Firstname)
	assert.Equal(t, "/api/v1/customers/7", got.CustomerURL)
}

func TestCustomerService_GetByID_NotFound(t *testing.T) {
	r := &mockCustomerRepo{
		findByID: func(_ context.Context, _ domain.ID) (domain.Customer, error) {
			return domain.Customer{}, domain.ErrNotFound
		},
	}

	_, err := newCustomerService(r).GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Create ----------------------------------------------------------------

func TestCustomerService_Create(t *testing.T) {
	var saved domain.Customer
	r := &mockCustomerRepo{
		save: func(_ context.Context, c domain.Customer) (domain.Customer, error) {
			saved = c
			c.ID = 1
			return c, nil
		},
	}

	got, err := newCustomerService(r).Create(context.Background(), model.CustomerDTO{
		ID:          ptr(domain.ID(42)),
		Firstname:   ptr("Jim"),
		Lastname:    ptr("Smith"),
		CustomerURL: "/api/v1/customers/42",
	})

	require.NoError(t, err)
	assert.True(t, saved.ID.IsZero(), "client-supplied id must be ignored")
	assert.Equal(t, "Jim", saved.Firstname)
	assert.Equal(t, "Smith", saved.Lastname)
	assert.Contains(t, got.CustomerURL, "1")
	assert.Equal(t, "/api/v1/customers/1", got.CustomerURL)
}

func TestCustomerService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockCustomerRepo{
		save: func(_ context.Context, _ domain.Customer) (domain.Customer, error) {
			return domain.Customer{}, repoErr
		},
	}

	_, err := newCustomerService(r).Create(context.Background(), model.CustomerDTO{Firstname: ptr("Jim")})

	// The service should propagate repo errors unchanged.
	assert.ErrorIs(t, err, repoErr)
}

// ---- Replace ---------------------------------------------------------------

func TestCustomerService_Replace_ForcesPathID(t *testing.T) {
	var saved domain.Customer
	r := &mockCustomerRepo{
		save: func(_ context.Context, c domain.Customer) (domain.Customer, error) {
			saved = c
			return c, nil
		},
	}

	got, err := newCustomerService(r).Replace(context.Background(), 1, model.CustomerDTO{
		ID:        ptr(domain.ID(999)),
		Firstname: ptr("Jim"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ID(1), saved.ID)
	assert.Equal(t, "Jim", saved.Firstname)
	assert.Empty(t, saved.Lastname, "replace clears fields the caller did not send")
	assert.Equal(t, "/api/v1/customers/1", got.CustomerURL)
}

// ---- Patch -----------------------------------------------------------------

func TestCustomerService_Patch_MergesPresentFields(t *testing.T) {
	var saved domain.Customer
	r := &mockCustomerRepo{
		findByID: func(_ context.Context, id domain.ID) (domain.Customer, error) {
			return domain.Customer{ID: id, Firstname: "Jim", Lastname: "Y"}, nil
		},
		save: func(_ context.Context, c domain.Customer) (domain.Customer, error) {
			saved = c
			return c, nil
		},
	}

	got, err := newCustomerService(r).Patch(context.Background(), 1, model.CustomerDTO{Firstname: ptr("X")})

	require.NoError(t, err)
	assert.Equal(t, domain.Customer{ID: 1, Firstname: "X", Lastname: "Y"}, saved)
	assert.Equal(t, "X", *got.Firstname)
	assert.Equal(t, "Y", *got.Lastname)
	assert.Equal(t, "/api/v1/customers/1", got.CustomerURL)
}

func TestCustomerService_Patch_EmptyStringIsAValue(t *testing.T) {
	var saved domain.Customer
	r := &mockCustomerRepo{
		findByID: func(_ context.Context, id domain.ID) (domain.Customer, error) {
			return domain.Customer{ID: id, Firstname: "Jim", Lastname: "Y"}, nil
		},
		save: func(_ context.Context, c domain.Customer) (domain.Customer, error) {
			saved = c
			return c, nil
		},
	}

	_, err := newCustomerService(r).Patch(context.Background(), 1, model.CustomerDTO{Lastname: ptr("")})

	require.NoError(t, err)
	assert.Equal(t, "Jim", saved.Firstname)
	assert.Empty(t, saved.Lastname)
}

func TestCustomerService_Patch_IgnoresPayloadID(t *testing.T) {
	var saved domain.Customer
	r := &mockCustomerRepo{
		findByID: func(_ context.Context, id domain.ID) (domain.Customer, error) {
			return domain.Customer{ID: id, Firstname: "Jim"}, nil
		},
		save: func(_ context.Context, c domain.Customer) (domain.Customer, error) {
			saved = c
			return c, nil
		},
	}

	_, err := newCustomerService(r).Patch(context.Background(), 3, model.CustomerDTO{ID: ptr(domain.ID(8))})

	require.NoError(t, err)
	assert.Equal(t, domain.ID(3), saved.ID)
}

func TestCustomerService_Patch_NotFound_NoWrite(t *testing.T) {
	saveCalled := false
	r := &mockCustomerRepo{
		findByID: func(_ context.Context, _ domain.ID) (domain.Customer, error) {
			return domain.Customer{}, domain.ErrNotFound
		},
		save: func(_ context.Context, c domain.Customer) (domain.Customer, error) {
			saveCalled = true
			return c, nil
		},
	}

	_, err := newCustomerService(r).Patch(context.Background(), 1, model.CustomerDTO{Firstname: ptr("X")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, saveCalled, "patch must not write when the record is missing")
}

// ---- Delete ----------------------------------------------------------------

func TestCustomerService_Delete(t *testing.T) {
	var deleted domain.ID
	r := &mockCustomerRepo{
		deleteByID: func(_ context.Context, id domain.ID) error {
			deleted = id
			return nil
		},
	}

	err := newCustomerService(r).Delete(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, domain.ID(4), deleted)
}

func TestCustomerService_Delete_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockCustomerRepo{
		deleteByID: func(_ context.Context, _ domain.ID) error { return repoErr },
	}

	err := newCustomerService(r).Delete(context.Background(), 4)

	assert.ErrorIs(t, err, repoErr)
}

// ---- against the in-memory repo --------------------------------------------

func TestCustomerService_Lifecycle_MemoryRepo(t *testing.T) {
	svc := newCustomerService(repo.NewMemoryCustomerRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, model.CustomerDTO{Firstname: ptr("Jim"), Lastname: ptr("Smith")})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	id := *created.ID

	patched, err := svc.Patch(ctx, id, model.CustomerDTO{Lastname: ptr("Jones")})
	require.NoError(t, err)
	assert.Equal(t, "Jim", *patched.Firstname)
	assert.Equal(t, "Jones", *patched.Lastname)

	replaced, err := svc.Replace(ctx, id, model.CustomerDTO{Firstname: ptr("James")})
	require.NoError(t, err)
	assert.Equal(t, "", *replaced.Lastname)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
