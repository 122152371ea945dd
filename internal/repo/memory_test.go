package repo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/shopapi/internal/domain"
	"github.com/pkordes/shopapi/internal/repo"
)

func TestMemoryCustomerRepo_SaveAssignsSequentialIDs(t *testing.T) {
	r := repo.NewMemoryCustomerRepo()
	ctx := context.Background()

	a, err := r.Save(ctx, domain.Customer{Firstname: "A"})
	require.NoError(t, err)
	b, err := r.Save(ctx, domain.Customer{Firstname: "B"})
	require.NoError(t, err)

	assert.Equal(t, domain.ID(1), a.ID)
	assert.Equal(t, domain.ID(2), b.ID)
}

func TestMemoryCustomerRepo_ExplicitIDMovesCounter(t *testing.T) {
	r := repo.NewMemoryCustomerRepo()
	ctx := context.Background()

	_, err := r.Save(ctx, domain.Customer{ID: 10, Firstname: "Ten"})
	require.NoError(t, err)

	next, err := r.Save(ctx, domain.Customer{Firstname: "Next"})
	require.NoError(t, err)
	assert.Equal(t, domain.ID(11), next.ID)
}

func TestMemoryCustomerRepo_DeletedIDsAreNotReused(t *testing.T) {
	r := repo.NewMemoryCustomerRepo()
	ctx := context.Background()

	for _, name := range []string{"One", "Two", "Three"} {
		_, err := r.Save(ctx, domain.Customer{Firstname: name})
		require.NoError(t, err)
	}
	require.NoError(t, r.DeleteByID(ctx, 3))
	_, err := r.Save(ctx, domain.Customer{ID: 1, Firstname: "Uno"})
	require.NoError(t, err)

	next, err := r.Save(ctx, domain.Customer{Firstname: "Four"})
	require.NoError(t, err)
	assert.Equal(t, domain.ID(4), next.ID)
}

func TestMemoryCustomerRepo_FindAll_OrderedAndEmpty(t *testing.T) {
	r := repo.NewMemoryCustomerRepo()
	ctx := context.Background()

	empty, err := r.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, _ = r.Save(ctx, domain.Customer{ID: 5, Firstname: "Five"})
	_, _ = r.Save(ctx, domain.Customer{ID: 2, Firstname: "Two"})

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, domain.ID(2), all[0].ID)
	assert.Equal(t, domain.ID(5), all[1].ID)
}

func TestMemoryCustomerRepo_FindByID_NotFound(t *testing.T) {
	r := repo.NewMemoryCustomerRepo()

	_, err := r.FindByID(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryCustomerRepo_DeleteByID(t *testing.T) {
	r := repo.NewMemoryCustomerRepo()
	ctx := context.Background()

	c, err := r.Save(ctx, domain.Customer{Firstname: "Gone"})
	require.NoError(t, err)

	require.NoError(t, r.DeleteByID(ctx, c.ID))
	require.NoError(t, r.DeleteByID(ctx, c.ID))

	_, err = r.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryCustomerRepo_CancelledContext(t *testing.T) {
	r := repo.NewMemoryCustomerRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Save(ctx, domain.Customer{Firstname: "Late"})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryCustomerRepo_ConcurrentSaves(t *testing.T) {
	r := repo.NewMemoryCustomerRepo()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Save(ctx, domain.Customer{Firstname: "x"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n, "every save gets a distinct id")
}

func TestMemoryVendorRepo_CRUD(t *testing.T) {
	r := repo.NewMemoryVendorRepo()
	ctx := context.Background()

	v, err := r.Save(ctx, domain.Vendor{Name: "Michale"})
	require.NoError(t, err)
	assert.Equal(t, domain.ID(1), v.ID)

	got, err := r.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Michale", got.Name)

	_, err = r.FindByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.Save(ctx, domain.Vendor{ID: 1, Name: "Sam"})
	require.NoError(t, err)
	got, err = r.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sam", got.Name)

	require.NoError(t, r.DeleteByID(ctx, 1))
	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
