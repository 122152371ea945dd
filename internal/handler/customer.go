package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/shopapi/internal/domain"
	"github.com/pkordes/shopapi/internal/model"
)

const customerNotFound = "customer not found"

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(w http.ResponseWriter, r *http.Request) {
	list, err := s.customers.List(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GetCustomer handles GET /api/v1/customers/{id}.
func (s *Server) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r)
	if err != nil {
		badRequest(w, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := s.customers.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, customerNotFound)
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var body model.CustomerDTO
	if err := decodeJSON(r, &body); err != nil {
		decodeFailed(w, err)
		return
	}

	created, err := s.customers.Create(r.Context(), body)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ReplaceCustomer handles PUT /api/v1/customers/{id}.
func (s *Server) ReplaceCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r)
	if err != nil {
		badRequest(w, http.StatusBadRequest, err.Error())
		return
	}
	var body model.CustomerDTO
	if err := decodeJSON(r, &body); err != nil {
		decodeFailed(w, err)
		return
	}

	saved, err := s.customers.Replace(r.Context(), id, body)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// PatchCustomer handles PATCH /api/v1/customers/{id}.
func (s *Server) PatchCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r)
	if err != nil {
		badRequest(w, http.StatusBadRequest, err.Error())
		return
	}
	var body model.CustomerDTO
	if err := decodeJSON(r, &body); err != nil {
		decodeFailed(w, err)
		return
	}

	saved, err := s.customers.Patch(r.Context(), id, body)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, customerNotFound)
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// DeleteCustomer handles DELETE /api/v1/customers/{id}.
// Deleting a customer that does not exist still returns 204.
func (s *Server) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r)
	if err != nil {
		badRequest(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.customers.Delete(r.Context(), id); err != nil {
		s.internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
