// Package resourceurl derives the canonical URL of a resource from its
// collection path and identifier.
package resourceurl

import "github.com/pkordes/shopapi/internal/domain"

// Collection paths for each resource type, relative to the server root.
const (
	CustomerBasePath = "/api/v1/customers"
	VendorBasePath   = "/api/v1/vendors"
)

// Build returns "<basePath>/<id>".
// Callers must only pass IDs that have been assigned by the store.
func Build(basePath string, id domain.ID) string {
	return basePath + "/" + id.String()
}
