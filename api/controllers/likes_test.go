package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marwandev/formalflow-backend/internal/catalog"
	"github.com/marwandev/formalflow-backend/internal/likes"
)

func newLikesService(t *testing.T) *likes.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	schema := `
CREATE TABLE IF NOT EXISTS liked_items (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id INTEGER NOT NULL,
  created_at DATETIME
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_liked_items_user_product ON liked_items (user_id, product_id);`
	if err := db.Exec(schema).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return likes.NewService(likes.NewRepository(db), cat, nil)
}

func likedRequest(method, url string, userID uuid.UUID, productID string) *http.Request {
	req := authedRequest(method, url, userID, nil)
	rc := chi.NewRouteContext()
	rc.URLParams.Add("productId", productID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

func TestLikesRequireUser(t *testing.T) {
	handler := LikesList(newLikesService(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/likes", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestLikeThenUnlike(t *testing.T) {
	svc := newLikesService(t)
	userID := uuid.New()

	like := LikeProduct(svc, nil)
	resp := httptest.NewRecorder()
	like.ServeHTTP(resp, likedRequest(http.MethodPut, "/api/v1/likes/1", userID, "1"))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data likes.View `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.ProductIDs) != 1 || envelope.Data.ProductIDs[0] != 1 {
		t.Fatalf("expected liked id 1 got %v", envelope.Data.ProductIDs)
	}
	if len(envelope.Data.Products) != 1 || envelope.Data.Products[0].Image == "" {
		t.Fatalf("expected liked product with image got %+v", envelope.Data.Products)
	}

	unlike := UnlikeProduct(svc, nil)
	resp = httptest.NewRecorder()
	unlike.ServeHTTP(resp, likedRequest(http.MethodDelete, "/api/v1/likes/1", userID, "1"))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	envelope.Data = likes.View{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.ProductIDs) != 0 {
		t.Fatalf("expected empty likes got %v", envelope.Data.ProductIDs)
	}
}

func TestLikeUnknownProductReturnsNotFound(t *testing.T) {
	handler := LikeProduct(newLikesService(t), nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, likedRequest(http.MethodPut, "/api/v1/likes/9999", uuid.New(), "9999"))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestLikeRejectsBadProductID(t *testing.T) {
	handler := LikeProduct(newLikesService(t), nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, likedRequest(http.MethodPut, "/api/v1/likes/abc", uuid.New(), "abc"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
