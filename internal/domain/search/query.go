// Package search models the append-only search-query log.
package search

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/catalogd/internal/domain"
)

// QueryRecord is one logged search query.
type QueryRecord struct {
	Query string    `json:"query"`
	User  string    `json:"user"`
	At    time.Time `json:"date"`
}

// NewQueryRecord validates and creates a log entry.
func NewQueryRecord(query, user string, at time.Time) (QueryRecord, error) {
	if query == "" {
		return QueryRecord{}, fmt.Errorf("query is required: %w", domain.ErrValidation)
	}
	if user == "" {
		return QueryRecord{}, fmt.Errorf("user is required: %w", domain.ErrValidation)
	}
	return QueryRecord{Query: query, User: user, At: at}, nil
}
