package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/shopapi/internal/domain"
	"github.com/pkordes/shopapi/internal/model"
)

const vendorNotFound = "vendor not found"

// ListVendors handles GET /api/v1/vendors.
func (s *Server) ListVendors(w http.ResponseWriter, r *http.Request) {
	list, err := s.vendors.List(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GetVendor handles GET /api/v1/vendors/{id}.
func (s *Server) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r)
	if err != nil {
		badRequest(w, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := s.vendors.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, vendorNotFound)
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// CreateVendor handles POST /api/v1/vendors.
func (s *Server) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var body model.VendorDTO
	if err := decodeJSON(r, &body); err != nil {
		decodeFailed(w, err)
		return
	}

	created, err := s.vendors.Create(r.Context(), body)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ReplaceVendor handles PUT /api/v1/vendors/{id}.
func (s *Server) ReplaceVendor(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r)
	if err != nil {
		badRequest(w, http.StatusBadRequest, err.Error())
		return
	}
	var body model.VendorDTO
	if err := decodeJSON(r, &body); err != nil {
		decodeFailed(w, err)
		return
	}

	saved, err := s.vendors.Replace(r.Context(), id, body)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// PatchVendor handles PATCH /api/v1/vendors/{id}.
func (s *Server) PatchVendor(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r)
	if err != nil {
		badRequest(w, http.StatusBadRequest, err.Error())
		return
	}
	var body model.VendorDTO
	if err := decodeJSON(r, &body); err != nil {
		decodeFailed(w, err)
		return
	}

	saved, err := s.vendors.Patch(r.Context(), id, body)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, vendorNotFound)
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// DeleteVendor handles DELETE /api/v1/vendors/{id}.
// Deleting a vendor that does not exist still returns 204.
func (s *Server) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r)
	if err != nil {
		badRequest(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.vendors.Delete(r.Context(), id); err != nil {
		s.internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
