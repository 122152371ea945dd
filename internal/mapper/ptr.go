package mapper

import "github.com/pkordes/shopapi/internal/domain"

func idPtr(id domain.ID) *domain.ID {
	if id.IsZero() {
		return nil
	}
	return &id
}

func idVal(id *domain.ID) domain.ID {
	if id == nil {
		return 0
	}
	return *id
}

func strPtr(s string) *string {
	return &s
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
