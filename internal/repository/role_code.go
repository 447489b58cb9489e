package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/develop-y-minami/v-spa/internal/models"
)

// RoleCodeRepository reads the role lookup table. Nothing writes to it at
// runtime; rows come from the seeder.
type RoleCodeRepository struct {
	db *gorm.DB
}

func NewRoleCodeRepository(db *gorm.DB) *RoleCodeRepository {
	return &RoleCodeRepository{db: db}
}

func (r *RoleCodeRepository) GetAll(ctx context.Context) ([]models.RoleCode, error) {
	var roleCodes []models.RoleCode
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&roleCodes).Error; err != nil {
		return nil, fmt.Errorf("gorm: list role codes: %w", err)
	}
	return roleCodes, nil
}

func (r *RoleCodeRepository) FindByID(ctx context.Context, id uint) (*models.RoleCode, error) {
	var roleCode models.RoleCode
	err := r.db.WithContext(ctx).First(&roleCode, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("gorm: find role code by id %d: %w", id, err)
	}
	return &roleCode, nil
}
