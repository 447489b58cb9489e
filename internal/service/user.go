package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/develop-y-minami/v-spa/internal/models"
	"github.com/develop-y-minami/v-spa/internal/repository"
	"github.com/develop-y-minami/v-spa/internal/validation"
)

// DeleteOutcome distinguishes the three ways a delete can resolve. The HTTP
// layer maps these to 204 / 410 / 404 without inspecting errors.
type DeleteOutcome int

const (
	// Deleted: the record existed and is now gone.
	Deleted DeleteOutcome = iota
	// AlreadyGone: the record was observed earlier in this session but no
	// longer exists. Not the same thing as NotFound.
	AlreadyGone
	// NotFound: no record with this id was ever observed.
	NotFound
)

// UserService owns the user business operations. It remembers which ids it
// has handed out during this process's lifetime so that a repeat delete can
// be reported as "already gone" rather than "never existed".
type UserService struct {
	repo *repository.UserRepository

	mu   sync.Mutex
	seen map[uint]struct{}
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{
		repo: repo,
		seen: make(map[uint]struct{}),
	}
}

// ListAll returns every user. The dataset is assumed small; there is no
// pagination on this screen.
func (s *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range users {
		s.seen[users[i].ID] = struct{}{}
	}
	s.mu.Unlock()

	return users, nil
}

// Create hashes the already-validated payload's password and inserts the
// user. A uniqueness race lost to a concurrent create comes back as
// ErrConflict: the validator's check and the insert are not atomic, the
// database constraint is the arbiter.
func (s *UserService) Create(ctx context.Context, payload *validation.UserPayload) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     payload.Username,
		Name:         payload.Name,
		Email:        payload.Email,
		PasswordHash: string(hash),
		RoleCodeID:   payload.RoleCodeID,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			slog.Warn("create user lost uniqueness race", "username", payload.Username)
			return nil, ErrConflict
		}
		return nil, err
	}

	s.mu.Lock()
	s.seen[user.ID] = struct{}{}
	s.mu.Unlock()

	slog.Info("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Delete removes the user by id and reports which of the three outcomes
// applied. Concurrent deletes of the same id are allowed: the loser gets
// AlreadyGone, not an error.
func (s *UserService) Delete(ctx context.Context, id uint) (DeleteOutcome, error) {
	s.mu.Lock()
	_, wasSeen := s.seen[id]
	s.mu.Unlock()

	_, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if wasSeen {
				return AlreadyGone, nil
			}
			return NotFound, nil
		}
		return NotFound, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Lost a race with another delete between find and delete.
			return AlreadyGone, nil
		}
		return NotFound, err
	}

	s.mu.Lock()
	s.seen[id] = struct{}{}
	s.mu.Unlock()

	slog.Info("user deleted", "user_id", id)
	return Deleted, nil
}
