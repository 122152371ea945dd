package service

import (
	"context"
	"fmt"

	"github.com/pkordes/shopapi/internal/domain"
	"github.com/pkordes/shopapi/internal/mapper"
	"github.com/pkordes/shopapi/internal/model"
	"github.com/pkordes/shopapi/internal/repo"
	"github.com/pkordes/shopapi/internal/resourceurl"
)

// VendorService implements the vendor operations.
// Semantics match CustomerService.
type VendorService struct {
	repo   repo.VendorRepo
	mapper mapper.Vendor
}

// NewVendorService constructs a VendorService backed by the provided repo.
func NewVendorService(r repo.VendorRepo, m mapper.Vendor) *VendorService {
	return &VendorService{repo: r, mapper: m}
}

// List returns every vendor. The wrapper's slice is never nil.
func (s *VendorService) List(ctx context.Context) (model.VendorList, error) {
	vendors, err := s.repo.FindAll(ctx)
	if err != nil {
		return model.VendorList{}, fmt.Errorf("service.VendorService.List: %w", err)
	}

	out := model.VendorList{Vendors: make([]model.VendorDTO, 0, len(vendors))}
	for _, v := range vendors {
		out.Vendors = append(out.Vendors, s.toDTO(v))
	}
	return out, nil
}

// GetByID returns a single vendor, or domain.ErrNotFound.
func (s *VendorService) GetByID(ctx context.Context, id domain.ID) (model.VendorDTO, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.VendorDTO{}, fmt.Errorf("service.VendorService.GetByID: %w", err)
	}
	return s.toDTO(v), nil
}

// Create persists a new vendor, ignoring any ID or URL sent by the caller.
func (s *VendorService) Create(ctx context.Context, dto model.VendorDTO) (model.VendorDTO, error) {
	v := s.mapper.ToRecord(dto)
	v.ID = 0

	saved, err := s.repo.Save(ctx, v)
	if err != nil {
		return model.VendorDTO{}, fmt.Errorf("service.VendorService.Create: %w", err)
	}
	return s.toDTO(saved), nil
}

// Replace overwrites the vendor stored under id with dto, inserting it if missing.
func (s *VendorService) Replace(ctx context.Context, id domain.ID, dto model.VendorDTO) (model.VendorDTO, error) {
	v := s.mapper.ToRecord(dto)
	v.ID = id

	saved, err := s.repo.Save(ctx, v)
	if err != nil {
		return model.VendorDTO{}, fmt.Errorf("service.VendorService.Replace: %w", err)
	}
	return s.toDTO(saved), nil
}

// Patch updates the name only when dto carries one.
func (s *VendorService) Patch(ctx context.Context, id domain.ID, dto model.VendorDTO) (model.VendorDTO, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.VendorDTO{}, fmt.Errorf("service.VendorService.Patch: %w", err)
	}

	if dto.Name != nil {
		v.Name = *dto.Name
	}

	saved, err := s.repo.Save(ctx, v)
	if err != nil {
		return model.VendorDTO{}, fmt.Errorf("service.VendorService.Patch: %w", err)
	}
	return s.toDTO(saved), nil
}

// Delete removes a vendor. Deleting a missing ID succeeds.
func (s *VendorService) Delete(ctx context.Context, id domain.ID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("service.VendorService.Delete: %w", err)
	}
	return nil
}

func (s *VendorService) toDTO(v domain.Vendor) model.VendorDTO {
	dto := s.mapper.ToDTO(v)
	if !v.ID.IsZero() {
		dto.VendorURL = resourceurl.Build(resourceurl.VendorBasePath, v.ID)
	}
	return dto
}
