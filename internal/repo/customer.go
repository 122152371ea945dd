package repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/pkordes/shopapi/internal/domain"
)

// CustomerRepo defines the persistence operations for Customers.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type CustomerRepo interface {
	// FindAll returns every customer ordered by id.
	FindAll(ctx context.Context) ([]domain.Customer, error)

	// FindByID retrieves a single customer by primary key.
	// Returns domain.ErrNotFound if no customer with that ID exists.
	FindByID(ctx context.Context, id domain.ID) (domain.Customer, error)

	// Save inserts c when its ID is zero and returns the record with the
	// generated ID. Otherwise it writes every field of c under c.ID, inserting
	// the row if it does not exist yet.
	Save(ctx context.Context, c domain.Customer) (domain.Customer, error)

	// DeleteByID removes a customer. Deleting a missing ID is not an error.
	DeleteByID(ctx context.Context, id domain.ID) error
}

const customersTable = "customers"

var customerColumns = []string{"id", "firstname", "lastname"}

// pgCustomerRepo is the Postgres implementation of CustomerRepo.
type pgCustomerRepo struct {
	db db
}

// NewCustomerRepo constructs a CustomerRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCustomerRepo(db db) CustomerRepo {
	return &pgCustomerRepo{db: db}
}

func (r *pgCustomerRepo) FindAll(ctx context.Context) ([]domain.Customer, error) {
	q, args, err := psql.Select(customerColumns...).From(customersTable).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("repo.CustomerRepo.FindAll: build: %w", err)
	}

	var customers []domain.Customer
	if err := pgxscan.Select(ctx, r.db, &customers, q, args...); err != nil {
		return nil, fmt.Errorf("repo.CustomerRepo.FindAll: %w", err)
	}
	return customers, nil
}

func (r *pgCustomerRepo) FindByID(ctx context.Context, id domain.ID) (domain.Customer, error) {
	q, args, err := psql.Select(customerColumns...).
		From(customersTable).
		Where(squirrel.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.FindByID: build: %w", err)
	}

	var c domain.Customer
	if err := pgxscan.Get(ctx, r.db, &c, q, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.FindByID: %w", domain.ErrNotFound)
		}
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.FindByID: %w", err)
	}
	return c, nil
}

// Save uses INSERT ... ON CONFLICT (id) DO UPDATE for records that carry an
// ID, so a replace of a missing row behaves as an upsert.
func (r *pgCustomerRepo) Save(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	var b squirrel.InsertBuilder
	if c.ID.IsZero() {
		b = psql.Insert(customersTable).
			Columns("firstname", "lastname").
			Values(c.Firstname, c.Lastname)
	} else {
		b = psql.Insert(customersTable).
			Columns(customerColumns...).
			Values(int64(c.ID), c.Firstname, c.Lastname).
			Suffix("ON CONFLICT (id) DO UPDATE SET firstname = EXCLUDED.firstname, lastname = EXCLUDED.lastname")
	}

	q, args, err := b.Suffix("RETURNING id, firstname, lastname").ToSql()
	if err != nil {
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.Save: build: %w", err)
	}

	var saved domain.Customer
	if err := pgxscan.Get(ctx, r.db, &saved, q, args...); err != nil {
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.Save: %w", err)
	}

	if !c.ID.IsZero() {
		if err := syncSequence(ctx, r.db, customersTable, saved.ID); err != nil {
			return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.Save: %w", err)
		}
	}
	return saved, nil
}

func (r *pgCustomerRepo) DeleteByID(ctx context.Context, id domain.ID) error {
	q, args, err := psql.Delete(customersTable).Where(squirrel.Eq{"id": int64(id)}).ToSql()
	if err != nil {
		return fmt.Errorf("repo.CustomerRepo.DeleteByID: build: %w", err)
	}

	if _, err := r.db.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("repo.CustomerRepo.DeleteByID: %w", err)
	}
	return nil
}
