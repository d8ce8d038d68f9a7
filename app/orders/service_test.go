package orders

import (
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pizzalab/pizzalab-api/models"
)

// --- Mock store ---

// MockOrderStore keeps orders in memory and hydrates reads from a product
// catalog map, the way the real repository preloads product rows.
type MockOrderStore struct {
	Orders    []models.Order
	Catalog   map[string]models.Product
	CreateErr error
	nextID    int
}

func (m *MockOrderStore) hydrate(o models.Order) models.Order {
	for i := range o.Products {
		if p, ok := m.Catalog[o.Products[i].ProductID]; ok {
			cp := p
			o.Products[i].Product = &cp
		}
	}
	return o
}

func (m *MockOrderStore) Create(o *models.Order) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	o.ID = "order-" + strconv.Itoa(m.nextID)
	m.Orders = append(m.Orders, *o)
	return nil
}

func (m *MockOrderStore) GetByID(id string) (*models.Order, error) {
	for i := range m.Orders {
		if m.Orders[i].ID == id {
			hydrated := m.hydrate(m.Orders[i])
			return &hydrated, nil
		}
	}
	return nil, models.ErrOrderNotFound
}

func (m *MockOrderStore) Exists(id string) (bool, error) {
	for i := range m.Orders {
		if m.Orders[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockOrderStore) SetStatus(id string, status models.OrderStatus) (bool, error) {
	for i := range m.Orders {
		if m.Orders[i].ID == id {
			m.Orders[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

func (m *MockOrderStore) ListByStatus(status models.OrderStatus) ([]models.Order, error) {
	var out []models.Order
	for i := range m.Orders {
		if m.Orders[i].Status == status {
			out = append(out, m.hydrate(m.Orders[i]))
		}
	}
	return out, nil
}

func (m *MockOrderStore) ListByCreator(userID string) ([]models.Order, error) {
	var out []models.Order
	for i := range m.Orders {
		if m.Orders[i].CreatorID == userID {
			out = append(out, m.hydrate(m.Orders[i]))
		}
	}
	return out, nil
}

func newStore() *MockOrderStore {
	return &MockOrderStore{
		Catalog: map[string]models.Product{
			"prod-1": {ID: "prod-1", Name: "Margherita", Price: decimal.NewFromFloat(8.50)},
			"prod-2": {ID: "prod-2", Name: "Capricciosa", Price: decimal.NewFromFloat(10.00)},
		},
	}
}

// --- Tests ---

func TestCreateOrder(t *testing.T) {
	store := newStore()
	service := NewService(store)

	order, err := service.CreateOrder("user-1", []LineInput{
		{ProductID: "prod-1", Ingredients: []string{"Cheese", "Basil"}},
		{ProductID: "prod-2", Ingredients: nil},
	})

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "user-1", order.CreatorID)
	assert.False(t, order.CreationDate.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), order.CreationDate, time.Minute)

	// Every line comes back hydrated, never as a bare foreign key.
	assert.Len(t, order.Products, 2)
	assert.Equal(t, "Margherita", order.Products[0].Product.Name)
	assert.Equal(t, []string{"Cheese", "Basil"}, []string(order.Products[0].Ingredients))
	assert.Equal(t, "Capricciosa", order.Products[1].Product.Name)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	store := newStore()
	service := NewService(store)

	// Product existence is not validated here; the line survives with a
	// nil product payload.
	order, err := service.CreateOrder("user-1", []LineInput{
		{ProductID: "prod-gone"},
	})

	assert.NoError(t, err)
	assert.Len(t, order.Products, 1)
	assert.Equal(t, "prod-gone", order.Products[0].ProductID)
	assert.Nil(t, order.Products[0].Product)
}

func TestApproveOrder(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		store := newStore()
		service := NewService(store)
		order, err := service.CreateOrder("user-1", []LineInput{{ProductID: "prod-1"}})
		assert.NoError(t, err)

		assert.NoError(t, service.ApproveOrder(order.ID))
		assert.NoError(t, service.ApproveOrder(order.ID))

		approved, err := service.ListApproved()
		assert.NoError(t, err)
		assert.Len(t, approved, 1)
		assert.Equal(t, models.OrderStatusApproved, approved[0].Status)
	})

	t.Run("fails with not found for an unknown order", func(t *testing.T) {
		service := NewService(newStore())

		err := service.ApproveOrder("missing")

		assert.ErrorIs(t, err, models.ErrOrderNotFound)
	})
}

func TestListByStatus(t *testing.T) {
	store := newStore()
	service := NewService(store)
	order, err := service.CreateOrder("user-1", []LineInput{
		{ProductID: "prod-1"},
		{ProductID: "prod-2"},
	})
	assert.NoError(t, err)

	pending, err := service.ListPending()
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	approved, err := service.ListApproved()
	assert.NoError(t, err)
	assert.Empty(t, approved)

	assert.NoError(t, service.ApproveOrder(order.ID))

	pending, err = service.ListPending()
	assert.NoError(t, err)
	assert.Empty(t, pending)
	approved, err = service.ListApproved()
	assert.NoError(t, err)
	assert.Len(t, approved, 1)
	assert.Equal(t, order.ID, approved[0].ID)
}

func TestListByUser(t *testing.T) {
	store := newStore()
	service := NewService(store)
	_, err := service.CreateOrder("user-1", []LineInput{{ProductID: "prod-1"}})
	assert.NoError(t, err)
	_, err = service.CreateOrder("user-2", []LineInput{{ProductID: "prod-2"}})
	assert.NoError(t, err)

	mine, err := service.ListByUser("user-1")

	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "user-1", mine[0].CreatorID)
}

func TestExists(t *testing.T) {
	store := newStore()
	service := NewService(store)
	order, err := service.CreateOrder("user-1", []LineInput{{ProductID: "prod-1"}})
	assert.NoError(t, err)

	ok, err := service.Exists(order.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Exists("missing")
	assert.NoError(t, err)
	assert.False(t, ok)
}
