package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/develop-y-minami/v-spa/internal/config"
	database "github.com/develop-y-minami/v-spa/internal/db"
	"github.com/develop-y-minami/v-spa/internal/models"
)

// Helper to create a router over a disposable in-memory DB
func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.RoleCode{}, &models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.SeedRoleCodes(db)

	cfg := &config.Config{}
	cfg.Server.LogLevel = "debug"

	srv := New(cfg, &database.Client{DB: db})
	return srv.Router(), db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("%s %s: body is not JSON: %v (%s)", method, path, err, w.Body.String())
		}
	}
	return w, parsed
}

func TestCreateUser(t *testing.T) {
	router, _ := setupTestServer(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/users",
		`{"username":"ab!cd","name":"Jane","password":"abc123","role_code_id":1}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("data missing: %v", body)
	}
	if data["username"] != "ab!cd" {
		t.Errorf("data.username = %v, want ab!cd", data["username"])
	}
	if data["id"] == nil {
		t.Error("data.id missing")
	}
	// The password must never appear, under any key.
	if _, exists := data["password"]; exists {
		t.Error("data.password must not be present")
	}
	if _, exists := data["password_hash"]; exists {
		t.Error("data.password_hash must not be present")
	}
}

func TestCreateUserValidation(t *testing.T) {
	router, _ := setupTestServer(t)

	longName := strings.Repeat("x", 31)
	w, body := doJSON(t, router, http.MethodPost, "/api/users",
		fmt.Sprintf(`{"username":%q,"name":"Jane","password":"abc123","role_code_id":1}`, longName))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (%s)", w.Code, w.Body.String())
	}
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "最大 30") {
		t.Errorf("message %q should name the 30-char limit", msg)
	}
	if _, exists := body["data"]; exists {
		t.Error("error envelope must not carry data")
	}
	errs, ok := body["errors"].(map[string]any)
	if !ok || errs["username"] == nil {
		t.Errorf("errors.username missing: %v", body["errors"])
	}
}

func TestDeleteUserLifecycle(t *testing.T) {
	router, _ := setupTestServer(t)

	// Unknown id: never observed, plain not-found.
	w, body := doJSON(t, router, http.MethodDelete, "/api/users/999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body["message"] != "ユーザーが見つかりません。" {
		t.Errorf("message = %v", body["message"])
	}

	// Create, then delete twice.
	w, created := doJSON(t, router, http.MethodPost, "/api/users",
		`{"username":"gone01","name":"Gone","password":"abc123","role_code_id":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d (%s)", w.Code, w.Body.String())
	}
	id := created["data"].(map[string]any)["id"].(float64)
	path := fmt.Sprintf("/api/users/%d", int(id))

	w, _ = doJSON(t, router, http.MethodDelete, path, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("first delete status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("204 must have an empty body, got %q", w.Body.String())
	}

	w, body = doJSON(t, router, http.MethodDelete, path, "")
	if w.Code != http.StatusGone {
		t.Fatalf("second delete status = %d, want 410", w.Code)
	}
	if body["message"] != "ユーザーは既に削除されています。" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestListUsersOmitsPasswords(t *testing.T) {
	router, db := setupTestServer(t)

	if err := db.Create(&models.User{
		Username:     "jane01",
		Name:         "Jane",
		PasswordHash: "secret-hash",
		RoleCodeID:   1,
	}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	w, body := doJSON(t, router, http.MethodGet, "/api/users", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "secret-hash") {
		t.Error("hash leaked into the list response")
	}
	users, ok := body["data"].([]any)
	if !ok || len(users) != 1 {
		t.Fatalf("data = %v", body["data"])
	}
}

func TestRoleCodes(t *testing.T) {
	router, _ := setupTestServer(t)

	w, body := doJSON(t, router, http.MethodGet, "/api/role-codes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	roleCodes, ok := body["data"].([]any)
	if !ok || len(roleCodes) != 2 {
		t.Fatalf("data = %v", body["data"])
	}

	w, body = doJSON(t, router, http.MethodGet, "/api/role-codes/2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["data"].(map[string]any)["name"] != "管理者" {
		t.Errorf("data = %v", body["data"])
	}

	// Missing id: the exact two-key failure envelope.
	w, body = doJSON(t, router, http.MethodGet, "/api/role-codes/42", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body["success"] != false || body["message"] != "Role code not found" {
		t.Errorf("body = %v", body)
	}
	if len(body) != 2 {
		t.Errorf("envelope should carry exactly success and message, got %v", body)
	}
}

func TestUnmatchedRoute(t *testing.T) {
	router, _ := setupTestServer(t)

	w, body := doJSON(t, router, http.MethodGet, "/api/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body["message"] != "Resource not found" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestCreateUserMalformedBody(t *testing.T) {
	router, _ := setupTestServer(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/users", `{"username":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["message"] != "Invalid input" {
		t.Errorf("message = %v", body["message"])
	}
}
