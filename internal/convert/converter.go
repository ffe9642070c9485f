package convert

import (
	"github.com/initforge/initforge/internal/metadata"
	"github.com/initforge/initforge/internal/project"
)

// Converter turns raw project requests into validated project descriptions.
// It is stateless and safe for concurrent use; each call works against the
// catalog snapshot it is handed.
type Converter struct{}

// NewConverter creates a converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert normalizes the request, validates every field against the
// catalog and assembles the description. It returns an
// *InvalidRequestError for the first field that fails validation; the
// request value passed in is never modified.
func (c *Converter) Convert(req project.Request, catalog *metadata.Catalog) (*project.Description, error) {
	normalized := normalize(req)

	resolved, err := validate(normalized, catalog)
	if err != nil {
		return nil, err
	}

	return build(normalized, resolved)
}
