// Package request implements the asset-request intake.
package request

import (
	"context"
	"fmt"

	domreq "github.com/kailas-cloud/catalogd/internal/domain/request"
)

// Service accepts and lists asset requests.
type Service struct {
	repo Repository
}

// New creates a request service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new request.
func (s *Service) Create(ctx context.Context, title, category, description, purpose, requestedByID string) (domreq.Request, error) {
	req, err := domreq.New(title, category, description, purpose, requestedByID)
	if err != nil {
		return domreq.Request{}, err
	}

	if err := s.repo.Create(ctx, &req); err != nil {
		return domreq.Request{}, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

// List returns all requests in submission order.
func (s *Service) List(ctx context.Context) ([]domreq.Request, error) {
	reqs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return reqs, nil
}
