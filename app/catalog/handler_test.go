package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pizzalab/pizzalab-api/models"
)

func postJSON(handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleCreateProduct(t *testing.T) {
	validBody := `{
		"name": "Margherita",
		"description": "Tomato, mozzarella and basil",
		"price": 8.50,
		"weight": 450,
		"image": "margherita.jpg",
		"category": "Classic",
		"ingredients": ["Cheese"]
	}`

	testCases := []struct {
		name               string
		body               string
		setup              func(f *fixture)
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:               "Success",
			body:               validBody,
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Product
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "Margherita", resp.Name)
				assert.Equal(t, 8.50, resp.Price)
				assert.Equal(t, "Classic", resp.Category.Name)
				assert.Equal(t, []string{"Cheese"}, resp.Ingredients)
			},
		},
		{
			name: "Duplicate name",
			body: validBody,
			setup: func(f *fixture) {
				f.products.Products = []models.Product{{ID: "prod-1", Name: "Margherita"}}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "already exists")
			},
		},
		{
			name:               "Unknown ingredient names the offender",
			body:               strings.Replace(validBody, `["Cheese"]`, `["Pineapple"]`, 1),
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "Pineapple ingredient not found")
			},
		},
		{
			name:               "Missing name",
			body:               `{"category": "Classic"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Invalid JSON body",
			body:               `{`,
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			f := newFixture()
			if tc.setup != nil {
				tc.setup(f)
			}
			handler := NewHandler(f.service)

			// Act
			rec := postJSON(handler.HandleCreate, "/api/admin/products", tc.body)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

func TestHandleGetProduct(t *testing.T) {
	f := newFixture()
	handler := NewHandler(f.service)

	req := httptest.NewRequest("GET", "/api/products/missing", nil)
	req.SetPathValue("productId", "missing")
	rec := httptest.NewRecorder()

	handler.HandleGet(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeleteProduct(t *testing.T) {
	f := newFixture()
	f.products.Products = []models.Product{{ID: "prod-1", Name: "Margherita"}}
	handler := NewHandler(f.service)

	req := httptest.NewRequest("DELETE", "/api/admin/products/prod-1", nil)
	req.SetPathValue("productId", "prod-1")
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"prod-1"}, f.products.Deleted)
}
