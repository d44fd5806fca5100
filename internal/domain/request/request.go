// Package request models a user's ask for a new catalog asset.
package request

import (
	"fmt"

	"github.com/kailas-cloud/catalogd/internal/domain"
)

// Request is a record of an asset request. Immutable once created.
type Request struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Purpose       string `json:"purpose"`
	RequestedByID string `json:"requestedByID"`
}

// New validates and creates a Request. All five fields are required.
// The ID is assigned by the store.
func New(title, category, description, purpose, requestedByID string) (Request, error) {
	fields := map[string]string{
		"title":         title,
		"category":      category,
		"description":   description,
		"purpose":       purpose,
		"requestedByID": requestedByID,
	}
	for name, v := range fields {
		if v == "" {
			return Request{}, fmt.Errorf("%s is required: %w", name, domain.ErrValidation)
		}
	}

	return Request{
		Title:         title,
		Category:      category,
		Description:   description,
		Purpose:       purpose,
		RequestedByID: requestedByID,
	}, nil
}
