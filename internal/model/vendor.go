package model

import "github.com/pkordes/shopapi/internal/domain"

// VendorDTO is the transfer representation of a domain.Vendor.
type VendorDTO struct {
	ID        *domain.ID `json:"id,omitempty"`
	Name      *string    `json:"name,omitempty"`
	VendorURL string     `json:"vendor_url,omitempty"`
}

// VendorList wraps the result of a bulk read.
type VendorList struct {
	Vendors []VendorDTO `json:"vendors"`
}
