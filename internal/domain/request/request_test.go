package request

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/catalogd/internal/domain"
)

func TestNew_Valid(t *testing.T) {
	r, err := New("New KPI", "KPI", "We need churn", "board review", "user-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Title != "New KPI" || r.RequestedByID != "user-7" {
		t.Errorf("unexpected request: %+v", r)
	}
	if r.ID != "" {
		t.Errorf("expected empty ID before persistence, got %q", r.ID)
	}
}

func TestNew_MissingField(t *testing.T) {
	tests := []struct {
		name                                           string
		title, category, description, purpose, userID string
	}{
		{"title", "", "c", "d", "p", "u"},
		{"category", "t", "", "d", "p", "u"},
		{"description", "t", "c", "", "p", "u"},
		{"purpose", "t", "c", "d", "", "u"},
		{"requestedByID", "t", "c", "d", "p", ""},
	}
	for _, tc := range tests {
		t.Run("missing "+tc.name, func(t *testing.T) {
			_, err := New(tc.title, tc.category, tc.description, tc.purpose, tc.userID)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}
