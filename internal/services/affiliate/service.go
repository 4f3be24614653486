// Package affiliate serves affiliate records through role-shaped views:
// administrators see true gross revenue next to the affiliate-facing figure,
// affiliates only ever see the displayed figure.
package affiliate

import (
	"context"
	"errors"
	"fmt"

	"rebelsrev/internal/models"
	"rebelsrev/internal/repositories"
)

// Service exposes affiliate queries with role-based revenue masking.
type Service interface {
	List(ctx context.Context, claims *models.UserClaims) ([]AdminView, error)
	Get(ctx context.Context, id uint, claims *models.UserClaims) (View, error)
}

type service struct {
	affiliates repositories.AffiliateRepository
}

func NewService(affiliates repositories.AffiliateRepository) Service {
	if affiliates == nil {
		panic("affiliate repository is required")
	}
	return &service{affiliates: affiliates}
}

// List returns every affiliate with the admin projection. Admin only.
func (s *service) List(ctx context.Context, claims *models.UserClaims) ([]AdminView, error) {
	if claims == nil || !claims.IsAdmin() {
		return nil, ErrForbidden
	}

	affiliates, err := s.affiliates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list affiliates: %w", err)
	}

	views := make([]AdminView, 0, len(affiliates))
	for i := range affiliates {
		views = append(views, projectAdmin(&affiliates[i]))
	}
	return views, nil
}

// Get returns a single affiliate projected for the viewer's role.
func (s *service) Get(ctx context.Context, id uint, claims *models.UserClaims) (View, error) {
	aff, err := s.affiliates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAffiliateNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get affiliate: %w", err)
	}
	return Project(aff, claims)
}
