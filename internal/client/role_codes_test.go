package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/develop-y-minami/v-spa/internal/models"
)

func TestRoleCodesStore(t *testing.T) {
	var listCalls, showCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("GET /role-codes", func(w http.ResponseWriter, r *http.Request) {
		listCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Request was successful",
			"data":    []models.RoleCode{{ID: 1, Name: "一般"}, {ID: 2, Name: "管理者"}},
		})
	})
	mux.HandleFunc("GET /role-codes/{id}", func(w http.ResponseWriter, r *http.Request) {
		showCalls.Add(1)
		if r.PathValue("id") != "2" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "Role code not found",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Request was successful",
			"data":    models.RoleCode{ID: 2, Name: "管理者"},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewRoleCodesStore(New(srv.URL, ""))
	ctx := context.Background()

	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if got := listCalls.Load(); got != 1 {
		t.Errorf("list calls = %d, want 1 (cache hit)", got)
	}
	if roleCodes := store.All(); len(roleCodes) != 2 {
		t.Errorf("cached role codes = %v", roleCodes)
	}

	// GetByID bypasses the cache on every call.
	rc, err := store.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if rc.Name != "管理者" {
		t.Errorf("name = %q", rc.Name)
	}

	_, err = store.GetByID(ctx, 42)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("err = %v, want 404 APIError", err)
	}
	if apiErr.Message != "Role code not found" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if got := showCalls.Load(); got != 2 {
		t.Errorf("show calls = %d, want 2 (uncached)", got)
	}
}
