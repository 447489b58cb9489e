package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/develop-y-minami/v-spa/internal/models"
)

// UserRepository is the gorm-backed store for users. Rows are hard-deleted;
// there is no soft-delete column on this table.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("gorm: list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("gorm: find user by id %d: %w", id, err)
	}
	return &user, nil
}

// Create inserts the user and fills in the generated id and timestamps.
// A unique-constraint violation surfaces as ErrDuplicateEntry so the caller
// can tell a lost insert race from a broken database.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: create user %q: %w", user.Username, err)
	}
	return nil
}

// Delete removes the row by id. ErrNotFound here means the row vanished
// after the caller last saw it (two deletes racing).
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("gorm: delete user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
