// Package handler implements the HTTP handlers for the shop API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, customer.go, vendor.go) but share the same Server struct so they
// can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/shopapi/internal/domain"
	"github.com/pkordes/shopapi/internal/model"
	"github.com/pkordes/shopapi/internal/resourceurl"
)

// CustomerServicer defines the customer operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the service or repo layers.
type CustomerServicer interface {
	List(ctx context.Context) (model.CustomerList, error)
	GetByID(ctx context.Context, id domain.ID) (model.CustomerDTO, error)
	Create(ctx context.Context, dto model.CustomerDTO) (model.CustomerDTO, error)
	Replace(ctx context.Context, id domain.ID, dto model.CustomerDTO) (model.CustomerDTO, error)
	Patch(ctx context.Context, id domain.ID, dto model.CustomerDTO) (model.CustomerDTO, error)
	Delete(ctx context.Context, id domain.ID) error
}

// VendorServicer defines the vendor operations the handlers depend on.
type VendorServicer interface {
	List(ctx context.Context) (model.VendorList, error)
	GetByID(ctx context.Context, id domain.ID) (model.VendorDTO, error)
	Create(ctx context.Context, dto model.VendorDTO) (model.VendorDTO, error)
	Replace(ctx context.Context, id domain.ID, dto model.VendorDTO) (model.VendorDTO, error)
	Patch(ctx context.Context, id domain.ID, dto model.VendorDTO) (model.VendorDTO, error)
	Delete(ctx context.Context, id domain.ID) error
}

// Server holds the dependencies shared by every handler.
type Server struct {
	customers CustomerServicer
	vendors   VendorServicer
	log       *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(customers CustomerServicer, vendors VendorServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{customers: customers, vendors: vendors, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Handler returns a chi router serving every endpoint of the API.
// main.go mounts it under "/" behind the shared middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route(resourceurl.CustomerBasePath, func(r chi.Router) {
		r.Get("/", s.ListCustomers)
		r.Post("/", s.CreateCustomer)
		r.Get("/{id}", s.GetCustomer)
		r.Put("/{id}", s.ReplaceCustomer)
		r.Patch("/{id}", s.PatchCustomer)
		r.Delete("/{id}", s.DeleteCustomer)
	})

	r.Route(resourceurl.VendorBasePath, func(r chi.Router) {
		r.Get("/", s.ListVendors)
		r.Post("/", s.CreateVendor)
		r.Get("/{id}", s.GetVendor)
		r.Put("/{id}", s.ReplaceVendor)
		r.Patch("/{id}", s.PatchVendor)
		r.Delete("/{id}", s.DeleteVendor)
	})

	return r
}
