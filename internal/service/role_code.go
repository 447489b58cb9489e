package service

import (
	"context"
	"errors"

	"github.com/develop-y-minami/v-spa/internal/models"
	"github.com/develop-y-minami/v-spa/internal/repository"
)

// RoleCodeService exposes the read-only role lookup operations.
type RoleCodeService struct {
	repo *repository.RoleCodeRepository
}

func NewRoleCodeService(repo *repository.RoleCodeRepository) *RoleCodeService {
	return &RoleCodeService{repo: repo}
}

func (s *RoleCodeService) ListAll(ctx context.Context) ([]models.RoleCode, error) {
	return s.repo.GetAll(ctx)
}

func (s *RoleCodeService) GetByID(ctx context.Context, id uint) (*models.RoleCode, error) {
	roleCode, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return roleCode, nil
}
