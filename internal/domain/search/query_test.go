package search

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/catalogd/internal/domain"
)

func TestNewQueryRecord(t *testing.T) {
	now := time.Now()

	r, err := NewQueryRecord("revenue", "alice", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query != "revenue" || r.User != "alice" || !r.At.Equal(now) {
		t.Errorf("unexpected record: %+v", r)
	}
}

func TestNewQueryRecord_EmptyQuery(t *testing.T) {
	_, err := NewQueryRecord("", "alice", time.Now())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestNewQueryRecord_EmptyUser(t *testing.T) {
	_, err := NewQueryRecord("x", "", time.Now())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
