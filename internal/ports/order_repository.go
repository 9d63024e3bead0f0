package ports

import (
	"context"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
)

// Port: a boundary for storing and retrieving shipment orders.
type OrderRepository interface {
	// Retrieve orders, newest first, optionally filtered by status.
	ListOrders(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]*domain.Order, error)

	// Retrieve all orders whose status is pending, confirmed or in_transit.
	ListOpenOrders(ctx context.Context) ([]*domain.Order, error)

	// Retrieve one order by its database identifier.
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)

	// Retrieve one order by its business order number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)

	// Persist a new order and return it with identifiers populated.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// Persist changes to an existing order.
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// Persist a status change only.
	UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus) error

	// Remove an order permanently.
	DeleteOrder(ctx context.Context, orderID int) error
}
