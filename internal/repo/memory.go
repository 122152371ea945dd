package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pkordes/shopapi/internal/domain"
)

// memoryStore is a map-backed table keyed by domain.ID. IDs are assigned from
// a counter that never goes backwards, and explicit IDs push the counter past
// themselves, mirroring the Postgres identity column.
type memoryStore[T any] struct {
	mu     sync.RWMutex
	rows   map[domain.ID]T
	lastID domain.ID
	idOf   func(T) domain.ID
	withID func(T, domain.ID) T
}

func newMemoryStore[T any](idOf func(T) domain.ID, withID func(T, domain.ID) T) *memoryStore[T] {
	return &memoryStore[T]{
		rows:   make(map[domain.ID]T),
		idOf:   idOf,
		withID: withID,
	}
}

// findAll returns rows ordered by id.
func (s *memoryStore[T]) findAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]domain.ID, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.rows[id])
	}
	return out
}

func (s *memoryStore[T]) findByID(id domain.ID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rows[id]
	return row, ok
}

func (s *memoryStore[T]) save(row T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idOf(row)
	if id.IsZero() {
		s.lastID++
		id = s.lastID
		row = s.withID(row, id)
	} else if id > s.lastID {
		s.lastID = id
	}
	s.rows[id] = row
	return row
}

func (s *memoryStore[T]) delete(id domain.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, id)
}

// memoryCustomerRepo is the in-memory implementation of CustomerRepo.
type memoryCustomerRepo struct {
	store *memoryStore[domain.Customer]
}

// NewMemoryCustomerRepo returns an empty, concurrency-safe CustomerRepo that
// keeps everything in process memory.
func NewMemoryCustomerRepo() CustomerRepo {
	return &memoryCustomerRepo{store: newMemoryStore(
		func(c domain.Customer) domain.ID { return c.ID },
		func(c domain.Customer, id domain.ID) domain.Customer { c.ID = id; return c },
	)}
}

func (r *memoryCustomerRepo) FindAll(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repo.memoryCustomerRepo.FindAll: %w", err)
	}
	return r.store.findAll(), nil
}

func (r *memoryCustomerRepo) FindByID(ctx context.Context, id domain.ID) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, fmt.Errorf("repo.memoryCustomerRepo.FindByID: %w", err)
	}
	c, ok := r.store.findByID(id)
	if !ok {
		return domain.Customer{}, fmt.Errorf("repo.memoryCustomerRepo.FindByID: %w", domain.ErrNotFound)
	}
	return c, nil
}

func (r *memoryCustomerRepo) Save(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, fmt.Errorf("repo.memoryCustomerRepo.Save: %w", err)
	}
	return r.store.save(c), nil
}

func (r *memoryCustomerRepo) DeleteByID(ctx context.Context, id domain.ID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("repo.memoryCustomerRepo.DeleteByID: %w", err)
	}
	r.store.delete(id)
	return nil
}

// memoryVendorRepo is the in-memory implementation of VendorRepo.
type memoryVendorRepo struct {
	store *memoryStore[domain.Vendor]
}

// NewMemoryVendorRepo returns an empty, concurrency-safe VendorRepo that
// keeps everything in process memory.
func NewMemoryVendorRepo() VendorRepo {
	return &memoryVendorRepo{store: newMemoryStore(
		func(v domain.Vendor) domain.ID { return v.ID },
		func(v domain.Vendor, id domain.ID) domain.Vendor { v.ID = id; return v },
	)}
}

func (r *memoryVendorRepo) FindAll(ctx context.Context) ([]domain.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repo.memoryVendorRepo.FindAll: %w", err)
	}
	return r.store.findAll(), nil
}

func (r *memoryVendorRepo) FindByID(ctx context.Context, id domain.ID) (domain.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return domain.Vendor{}, fmt.Errorf("repo.memoryVendorRepo.FindByID: %w", err)
	}
	v, ok := r.store.findByID(id)
	if !ok {
		return domain.Vendor{}, fmt.Errorf("repo.memoryVendorRepo.FindByID: %w", domain.ErrNotFound)
	}
	return v, nil
}

func (r *memoryVendorRepo) Save(ctx context.Context, v domain.Vendor) (domain.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return domain.Vendor{}, fmt.Errorf("repo.memoryVendorRepo.Save: %w", err)
	}
	return r.store.save(v), nil
}

func (r *memoryVendorRepo) DeleteByID(ctx context.Context, id domain.ID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("repo.memoryVendorRepo.DeleteByID: %w", err)
	}
	r.store.delete(id)
	return nil
}
