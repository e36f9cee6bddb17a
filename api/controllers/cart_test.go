package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/marwandev/formalflow-backend/api/middleware"
	cartsvc "github.com/marwandev/formalflow-backend/internal/cart"
	"github.com/marwandev/formalflow-backend/internal/catalog"
)

type memCartStore struct {
	carts map[string]cartsvc.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[string]cartsvc.Cart{}}
}

func (m *memCartStore) Load(_ context.Context, userID string) (cartsvc.Cart, error) {
	return m.carts[userID], nil
}

func (m *memCartStore) Save(_ context.Context, userID string, cart cartsvc.Cart) error {
	m.carts[userID] = cart
	return nil
}

func (m *memCartStore) Clear(_ context.Context, userID string) error {
	delete(m.carts, userID)
	return nil
}

func newCartService(t *testing.T) *cartsvc.Service {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cartsvc.NewService(newMemCartStore(), cat, nil)
}

func authedRequest(method, url string, userID uuid.UUID, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func TestCartEndpointsRequireUser(t *testing.T) {
	handler := CartGet(newCartService(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCartAddThenGet(t *testing.T) {
	svc := newCartService(t)
	userID := uuid.New()

	add := CartAddItem(svc, nil)
	// product 1 requires a color and size selection
	payload := []byte(`{"product_id":1,"color":"Navy","size":"M"}`)
	resp := httptest.NewRecorder()
	add.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", userID, payload))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", resp.Code, resp.Body.String())
	}

	get := CartGet(svc, nil)
	resp = httptest.NewRecorder()
	get.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/v1/cart", userID, nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartsvc.View `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Items) != 1 || envelope.Data.Items[0].Quantity != 1 {
		t.Fatalf("expected one line with quantity 1 got %+v", envelope.Data.Items)
	}
	if envelope.Data.Totals.TotalCents == 0 {
		t.Fatal("expected non-zero totals")
	}
}

func TestCartUpdateQuantityZeroLeavesLineUnchanged(t *testing.T) {
	svc := newCartService(t)
	userID := uuid.New()

	add := CartAddItem(svc, nil)
	resp := httptest.NewRecorder()
	add.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", userID, []byte(`{"product_id":1,"color":"Navy","size":"M"}`)))
	if resp.Code != http.StatusOK {
		t.Fatalf("seed add failed: %d", resp.Code)
	}

	update := CartUpdateQuantity(svc, nil)
	for _, payload := range []string{
		`{"product_id":1,"color":"Navy","size":"M","quantity":0}`,
		`{"product_id":1,"color":"Navy","size":"M","quantity":-1}`,
	} {
		resp = httptest.NewRecorder()
		update.ServeHTTP(resp, authedRequest(http.MethodPatch, "/api/v1/cart/items", userID, []byte(payload)))
		if resp.Code != http.StatusOK {
			t.Fatalf("quantity below 1 should be ignored, got %d body=%s", resp.Code, resp.Body.String())
		}

		var envelope struct {
			Data cartsvc.View `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(envelope.Data.Items) != 1 || envelope.Data.Items[0].Quantity != 1 {
			t.Fatalf("expected untouched line got %+v", envelope.Data.Items)
		}
	}

	resp = httptest.NewRecorder()
	update.ServeHTTP(resp, authedRequest(http.MethodPatch, "/api/v1/cart/items", userID, []byte(`{"product_id":1,"color":"Navy","size":"M","quantity":3}`)))
	var envelope struct {
		Data cartsvc.View `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Items) != 1 || envelope.Data.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3 got %+v", envelope.Data.Items)
	}
}

func TestCartAddRejectsMissingSelection(t *testing.T) {
	svc := newCartService(t)
	handler := CartAddItem(svc, nil)

	payload := []byte(`{"product_id":1}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", uuid.New(), payload))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartClear(t *testing.T) {
	svc := newCartService(t)
	userID := uuid.New()

	add := CartAddItem(svc, nil)
	resp := httptest.NewRecorder()
	add.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", userID, []byte(`{"product_id":1,"color":"Navy","size":"M"}`)))
	if resp.Code != http.StatusOK {
		t.Fatalf("seed add failed: %d", resp.Code)
	}

	clear := CartClear(svc, nil)
	resp = httptest.NewRecorder()
	clear.ServeHTTP(resp, authedRequest(http.MethodDelete, "/api/v1/cart", userID, nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	get := CartGet(svc, nil)
	resp = httptest.NewRecorder()
	get.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/v1/cart", userID, nil))
	var envelope struct {
		Data cartsvc.View `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Items) != 0 {
		t.Fatalf("expected empty cart got %+v", envelope.Data.Items)
	}
}
