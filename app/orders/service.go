package orders

import (
	"time"

	"github.com/lib/pq"

	"github.com/pizzalab/pizzalab-api/models"
)

// OrderStore is the slice of the orders repository the service consumes.
// Reads return orders hydrated with the product data each line references.
type OrderStore interface {
	Create(o *models.Order) error
	GetByID(id string) (*models.Order, error)
	Exists(id string) (bool, error)
	SetStatus(id string, status models.OrderStatus) (bool, error)
	ListByStatus(status models.OrderStatus) ([]models.Order, error)
	ListByCreator(userID string) ([]models.Order, error)
}

// LineInput is one requested order line: a product and the ingredient
// selection made for it. Product existence is the calling layer's concern.
type LineInput struct {
	ProductID   string
	Ingredients []string
}

// Service drives the order lifecycle: creation snapshots the selection as
// Pending, approval moves it to Approved.
type Service struct {
	orders OrderStore
}

func NewService(orders OrderStore) *Service {
	return &Service{orders: orders}
}

// CreateOrder persists a Pending order with one line per input entry and
// re-reads it so the caller always gets hydrated product data, never bare
// foreign keys.
func (s *Service) CreateOrder(creatorID string, lines []LineInput) (*models.Order, error) {
	products := make([]models.OrderProduct, 0, len(lines))
	for _, line := range lines {
		products = append(products, models.OrderProduct{
			ProductID:   line.ProductID,
			Ingredients: pq.StringArray(line.Ingredients),
		})
	}

	order := &models.Order{
		CreatorID:    creatorID,
		CreationDate: time.Now().UTC(),
		Status:       models.OrderStatusPending,
		Products:     products,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	return s.orders.GetByID(order.ID)
}

// ApproveOrder marks the order Approved. Approving an already-approved
// order succeeds and leaves it Approved.
func (s *Service) ApproveOrder(orderID string) error {
	found, err := s.orders.SetStatus(orderID, models.OrderStatusApproved)
	if err != nil {
		return err
	}
	if !found {
		return models.ErrOrderNotFound
	}
	return nil
}

func (s *Service) ListApproved() ([]models.Order, error) {
	return s.orders.ListByStatus(models.OrderStatusApproved)
}

func (s *Service) ListPending() ([]models.Order, error) {
	return s.orders.ListByStatus(models.OrderStatusPending)
}

func (s *Service) ListByUser(userID string) ([]models.Order, error) {
	return s.orders.ListByCreator(userID)
}

// Exists is a side-effect-free probe used by callers before mutating
// operations.
func (s *Service) Exists(orderID string) (bool, error) {
	return s.orders.Exists(orderID)
}
