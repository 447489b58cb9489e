package client

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/develop-y-minami/v-spa/internal/models"
)

const msgFetchRoleCodesFailed = "役割コードの取得に失敗しました"

// RoleCodesStore caches the role lookup collection. GetByID always goes to
// the network; only the list is cached.
type RoleCodesStore struct {
	client *Client

	mu        sync.Mutex
	state     State
	roleCodes []models.RoleCode
	lastErr   string
}

func NewRoleCodesStore(c *Client) *RoleCodesStore {
	return &RoleCodesStore{client: c}
}

func (s *RoleCodesStore) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StatePopulated || s.state == StateLoading {
		s.mu.Unlock()
		return nil
	}
	s.state = StateLoading
	s.lastErr = ""
	s.mu.Unlock()

	var roleCodes []models.RoleCode
	err := s.client.do(ctx, http.MethodGet, "/role-codes", nil, &roleCodes)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateErrored
		s.lastErr = msgFetchRoleCodesFailed
		slog.Error("fetch role codes failed", "error", err)
		return err
	}
	s.state = StatePopulated
	s.roleCodes = roleCodes
	return nil
}

func (s *RoleCodesStore) GetByID(ctx context.Context, id uint) (*models.RoleCode, error) {
	var roleCode models.RoleCode
	if err := s.client.do(ctx, http.MethodGet, "/role-codes/"+itoa(id), nil, &roleCode); err != nil {
		slog.Error("fetch role code failed", "role_code_id", id, "error", err)
		return nil, err
	}
	return &roleCode, nil
}

func (s *RoleCodesStore) All() []models.RoleCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.RoleCode, len(s.roleCodes))
	copy(out, s.roleCodes)
	return out
}

func (s *RoleCodesStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *RoleCodesStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *RoleCodesStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateEmpty
	s.roleCodes = nil
	s.lastErr = ""
}

func (s *RoleCodesStore) Refresh(ctx context.Context) error {
	s.Invalidate()
	return s.FetchAll(ctx)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
