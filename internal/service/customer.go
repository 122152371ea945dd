// Package service contains the business logic for the shop API.
// Services translate between records and transfer objects, attach resource
// URLs, and orchestrate repo calls. No SQL lives here; services depend on repo
// interfaces, not implementations.
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

// CustomerService implements the customer operations.
type CustomerService struct {
	repo   repo.CustomerRepo
	mapper mapper.Customer
}

// NewCustomerService constructs a CustomerService backed by the provided repo.
func NewCustomerService(r repo.CustomerRepo, m mapper.Customer) *CustomerService {
	return &CustomerService{repo: r, mapper: m}
}

// List returns every customer. The wrapper's slice is never nil.
func (s *CustomerService) List(ctx context.Context) (model.CustomerList, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return model.CustomerList{}, fmt.Errorf("service.CustomerService.List: %w", err)
	}

	out := model.CustomerList{Customers: make([]model.CustomerDTO, 0, len(customers))}
	for _, c := range customers {
		out.Customers = append(out.Customers, s.toDTO(c))
	}
	return out, nil
}

// GetByID returns a single customer.
// Returns domain.ErrNotFound if no customer with that ID exists.
func (s *CustomerService) GetByID(ctx context.Context, id domain.ID) (model.CustomerDTO, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.CustomerDTO{}, fmt.Errorf("service.CustomerService.GetByID: %w", err)
	}
	return s.toDTO(c), nil
}

// Create persists a new customer. Any ID or URL sent by the caller is ignored.
func (s *CustomerService) Create(ctx context.Context, dto model.CustomerDTO) (model.CustomerDTO, error) {
	c := s.mapper.ToRecord(dto)
	c.ID = 0

	saved, err := s.repo.Save(ctx, c)
	if err != nil {
		return model.CustomerDTO{}, fmt.Errorf("service.CustomerService.Create: %w", err)
	}
	return s.toDTO(saved), nil
}

// Replace overwrites every field of the customer stored under id with dto.
// Fields missing from dto are cleared. The ID in dto, if any, is ignored.
// If id does not exist yet the repo inserts it.
func (s *CustomerService) Replace(ctx context.Context, id domain.ID, dto model.CustomerDTO) (model.CustomerDTO, error) {
	c := s.mapper.ToRecord(dto)
	c.ID = id

	saved, err := s.repo.Save(ctx, c)
	if err != nil {
		return model.CustomerDTO{}, fmt.Errorf("service.CustomerService.Replace: %w", err)
	}
	return s.toDTO(saved), nil
}

// Patch overwrites only the fields that are set in dto and keeps the rest.
// Returns domain.ErrNotFound, without writing anything, if no customer with
// that ID exists.
func (s *CustomerService) Patch(ctx context.Context, id domain.ID, dto model.CustomerDTO) (model.CustomerDTO, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.CustomerDTO{}, fmt.Errorf("service.CustomerService.Patch: %w", err)
	}

	if dto.Firstname != nil {
		c.Firstname = *dto.Firstname
	}
	if dto.Lastname != nil {
		c.Lastname = *dto.Lastname
	}

	saved, err := s.repo.Save(ctx, c)
	if err != nil {
		return model.CustomerDTO{}, fmt.Errorf("service.CustomerService.Patch: %w", err)
	}
	return s.toDTO(saved), nil
}

// Delete removes a customer. Deleting a missing ID succeeds.
func (s *CustomerService) Delete(ctx context.Context, id domain.ID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("service.CustomerService.Delete: %w", err)
	}
	return nil
}

// toDTO maps c and attaches its URL once the record has an ID.
func (s *CustomerService) toDTO(c domain.Customer) model.CustomerDTO {
	dto := s.mapper.ToDTO(c)
	if !c.ID.IsZero() {
		dto.CustomerURL = resourceurl.Build(resourceurl.CustomerBasePath, c.ID)
	}
	return dto
}
