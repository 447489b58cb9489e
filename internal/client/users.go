package client

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/develop-y-minami/v-spa/internal/models"
)

// User-facing messages, verbatim from the screens this package replaces.
const (
	msgFetchUsersFailed   = "ユーザー一覧の取得に失敗しました"
	msgAddUserFailed      = "ユーザーの追加に失敗しました"
	msgDeleteUserFailed   = "ユーザーの削除に失敗しました"
	msgUserAlreadyDeleted = "ユーザーは既に削除されています。"
	msgUnexpected         = "予期しないエラーが発生しました"
)

// CreateUserParams is the write shape for a new user. The password travels
// here and nowhere else; responses never contain it.
type CreateUserParams struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password"`
	RoleCodeID uint   `json:"role_code_id"`
}

// UsersStore caches the user collection. FetchAll is a no-op once populated;
// Invalidate or Refresh force a reload.
type UsersStore struct {
	client *Client

	mu      sync.Mutex
	state   State
	users   []models.User
	lastErr string
}

func NewUsersStore(c *Client) *UsersStore {
	return &UsersStore{client: c}
}

// FetchAll loads the collection unless it is already populated. A fetch that
// overlaps another in-flight fetch is dropped rather than duplicated.
func (s *UsersStore) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StatePopulated || s.state == StateLoading {
		s.mu.Unlock()
		return nil
	}
	s.state = StateLoading
	s.lastErr = ""
	s.mu.Unlock()

	var users []models.User
	err := s.client.do(ctx, http.MethodGet, "/users", nil, &users)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateErrored
		s.lastErr = msgFetchUsersFailed
		slog.Error("fetch users failed", "error", err)
		return err
	}
	s.state = StatePopulated
	s.users = users
	return nil
}

// Add creates a user on the server and appends the returned record to the
// cache (populating it if it was empty).
func (s *UsersStore) Add(ctx context.Context, params CreateUserParams) (*models.User, error) {
	var created models.User
	err := s.client.do(ctx, http.MethodPost, "/users", params, &created)
	if err != nil {
		s.mu.Lock()
		s.lastErr = msgAddUserFailed
		s.mu.Unlock()
		slog.Error("add user failed", "username", params.Username, "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.users = append(s.users, created)
	s.state = StatePopulated
	s.lastErr = ""
	s.mu.Unlock()

	return &created, nil
}

// Delete removes the user on the server and reconciles the cache. A 410
// means someone else already deleted it: the record is dropped locally too,
// and the distinct "already deleted" message is surfaced. Any other failure
// leaves the cache untouched.
func (s *UsersStore) Delete(ctx context.Context, id uint) error {
	err := s.client.do(ctx, http.MethodDelete, "/users/"+itoa(id), nil, nil)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		s.removeLocked(id)
		s.lastErr = ""
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusGone {
			s.removeLocked(id)
			s.lastErr = msgUserAlreadyDeleted
		} else {
			s.lastErr = msgDeleteUserFailed
		}
	} else {
		s.lastErr = msgUnexpected
	}
	slog.Error("delete user failed", "user_id", id, "error", err)
	return err
}

// All returns a copy of the cached collection.
func (s *UsersStore) All() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *UsersStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the user-facing message for the most recent failure.
func (s *UsersStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Invalidate drops the cache so the next FetchAll hits the network.
func (s *UsersStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateEmpty
	s.users = nil
	s.lastErr = ""
}

// Refresh is Invalidate followed by FetchAll.
func (s *UsersStore) Refresh(ctx context.Context) error {
	s.Invalidate()
	return s.FetchAll(ctx)
}

func (s *UsersStore) removeLocked(id uint) {
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
}
