// Package model holds the transfer objects returned by the service layer.
// They are the externally visible shape of a record: plain data with JSON tags
// and a read-only resource URL that is derived from the record's ID.
//
// Input fields are pointers so a partial update can tell "not sent" apart from
// "sent". A JSON null and an omitted field both decode to nil.
package model

import "github.com/pkordes/shopapi/internal/domain"

// CustomerDTO is the transfer representation of a domain.Customer.
type CustomerDTO struct {
	ID          *domain.ID `json:"id,omitempty"`
	Firstname   *string    `json:"firstname,omitempty"`
	Lastname    *string    `json:"lastname,omitempty"`
	CustomerURL string     `json:"customer_url,omitempty"`
}

// CustomerList wraps the result of a bulk read.
type CustomerList struct {
	Customers []CustomerDTO `json:"customers"`
}
