package repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/pkordes/shopapi/internal/domain"
)

// VendorRepo defines the persistence operations for Vendors.
// Semantics match CustomerRepo.
type VendorRepo interface {
	FindAll(ctx context.Context) ([]domain.Vendor, error)
	FindByID(ctx context.Context, id domain.ID) (domain.Vendor, error)
	Save(ctx context.Context, v domain.Vendor) (domain.Vendor, error)
	DeleteByID(ctx context.Context, id domain.ID) error
}

const vendorsTable = "vendors"

var vendorColumns = []string{"id", "name"}

// pgVendorRepo is the Postgres implementation of VendorRepo.
type pgVendorRepo struct {
	db db
}

// NewVendorRepo constructs a VendorRepo backed by the provided db connection.
func NewVendorRepo(db db) VendorRepo {
	return &pgVendorRepo{db: db}
}

func (r *pgVendorRepo) FindAll(ctx context.Context) ([]domain.Vendor, error) {
	q, args, err := psql.Select(vendorColumns...).From(vendorsTable).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("repo.VendorRepo.FindAll: build: %w", err)
	}

	var vendors []domain.Vendor
	if err := pgxscan.Select(ctx, r.db, &vendors, q, args...); err != nil {
		return nil, fmt.Errorf("repo.VendorRepo.FindAll: %w", err)
	}
	return vendors, nil
}

func (r *pgVendorRepo) FindByID(ctx context.Context, id domain.ID) (domain.Vendor, error) {
	q, args, err := psql.Select(vendorColumns...).
		From(vendorsTable).
		Where(squirrel.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("repo.VendorRepo.FindByID: build: %w", err)
	}

	var v domain.Vendor
	if err := pgxscan.Get(ctx, r.db, &v, q, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.Vendor{}, fmt.Errorf("repo.VendorRepo.FindByID: %w", domain.ErrNotFound)
		}
		return domain.Vendor{}, fmt.Errorf("repo.VendorRepo.FindByID: %w", err)
	}
	return v, nil
}

func (r *pgVendorRepo) Save(ctx context.Context, v domain.Vendor) (domain.Vendor, error) {
	var b squirrel.InsertBuilder
	if v.ID.IsZero() {
		b = psql.Insert(vendorsTable).Columns("name").Values(v.Name)
	} else {
		b = psql.Insert(vendorsTable).
			Columns(vendorColumns...).
			Values(int64(v.ID), v.Name).
			Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name")
	}

	q, args, err := b.Suffix("RETURNING id, name").ToSql()
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("repo.VendorRepo.Save: build: %w", err)
	}

	var saved domain.Vendor
	if err := pgxscan.Get(ctx, r.db, &saved, q, args...); err != nil {
		return domain.Vendor{}, fmt.Errorf("repo.VendorRepo.Save: %w", err)
	}

	if !v.ID.IsZero() {
		if err := syncSequence(ctx, r.db, vendorsTable, saved.ID); err != nil {
			return domain.Vendor{}, fmt.Errorf("repo.VendorRepo.Save: %w", err)
		}
	}
	return saved, nil
}

func (r *pgVendorRepo) DeleteByID(ctx context.Context, id domain.ID) error {
	q, args, err := psql.Delete(vendorsTable).Where(squirrel.Eq{"id": int64(id)}).ToSql()
	if err != nil {
		return fmt.Errorf("repo.VendorRepo.DeleteByID: build: %w", err)
	}

	if _, err := r.db.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("repo.VendorRepo.DeleteByID: %w", err)
	}
	return nil
}
