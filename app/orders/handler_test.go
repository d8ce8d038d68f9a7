package orders

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleCreateOrder(t *testing.T) {
	t.Run("returns the hydrated order as Pending", func(t *testing.T) {
		handler := NewHandler(NewService(newStore()))
		body := `{"products": [{"product_id": "prod-1", "ingredients": ["Cheese"]}]}`
		req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(body))
		req.Header.Set("X-User-Id", "user-1")
		rec := httptest.NewRecorder()

		handler.HandleCreate(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp Order
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Pending", resp.Status)
		assert.Equal(t, "user-1", resp.CreatorID)
		assert.Len(t, resp.Products, 1)
		assert.Equal(t, "Margherita", resp.Products[0].Name)
	})

	t.Run("rejects a request without a user", func(t *testing.T) {
		handler := NewHandler(NewService(newStore()))
		req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(`{"products": [{"product_id": "prod-1"}]}`))
		rec := httptest.NewRecorder()

		handler.HandleCreate(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects an empty order", func(t *testing.T) {
		handler := NewHandler(NewService(newStore()))
		req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(`{"products": []}`))
		req.Header.Set("X-User-Id", "user-1")
		rec := httptest.NewRecorder()

		handler.HandleCreate(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleApproveOrder(t *testing.T) {
	t.Run("approves an existing order", func(t *testing.T) {
		store := newStore()
		service := NewService(store)
		order, err := service.CreateOrder("user-1", []LineInput{{ProductID: "prod-1"}})
		assert.NoError(t, err)
		handler := NewHandler(service)

		req := httptest.NewRequest("POST", "/api/admin/orders/"+order.ID+"/approve", nil)
		req.SetPathValue("orderId", order.ID)
		rec := httptest.NewRecorder()

		handler.HandleApprove(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("returns not found for an unknown order", func(t *testing.T) {
		handler := NewHandler(NewService(newStore()))
		req := httptest.NewRequest("POST", "/api/admin/orders/missing/approve", nil)
		req.SetPathValue("orderId", "missing")
		rec := httptest.NewRecorder()

		handler.HandleApprove(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
