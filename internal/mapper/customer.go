// Package mapper translates between domain records and transfer objects.
// Mappers are stateless zero-size values; construct them with a composite
// literal and share them freely. They never perform I/O and never set the
// resource URL, which is owned by the service layer.
package mapper

import (
	"github.com/pkordes/shopapi/internal/domain"
	"github.com/pkordes/shopapi/internal/model"
)

// Customer maps between domain.Customer and model.CustomerDTO.
type Customer struct{}

// ToDTO copies every field of c into a new DTO.
// An unsaved record (zero ID) yields a DTO without an ID.
func (Customer) ToDTO(c domain.Customer) model.CustomerDTO {
	return model.CustomerDTO{
		ID:        idPtr(c.ID),
		Firstname: strPtr(c.Firstname),
		Lastname:  strPtr(c.Lastname),
	}
}

// ToRecord copies every field of dto into a new record. Nil fields become
// zero values. CustomerURL is ignored.
func (Customer) ToRecord(dto model.CustomerDTO) domain.Customer {
	return domain.Customer{
		ID:        idVal(dto.ID),
		Firstname: strVal(dto.Firstname),
		Lastname:  strVal(dto.Lastname),
	}
}
