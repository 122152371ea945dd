package mapper

import (
	"github.com/pkordes/shopapi/internal/domain"
	"github.com/pkordes/shopapi/internal/model"
)

// Vendor maps between domain.Vendor and model.VendorDTO.
type Vendor struct{}

// ToDTO copies every field of v into a new DTO.
func (Vendor) ToDTO(v domain.Vendor) model.VendorDTO {
	return model.VendorDTO{
		ID:   idPtr(v.ID),
		Name: strPtr(v.Name),
	}
}

// ToRecord copies every field of dto into a new record. VendorURL is ignored.
func (Vendor) ToRecord(dto model.VendorDTO) domain.Vendor {
	return domain.Vendor{
		ID:   idVal(dto.ID),
		Name: strVal(dto.Name),
	}
}
