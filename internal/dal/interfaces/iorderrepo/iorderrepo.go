package iorderrepo

import (
	"context"

	"github.com/beanhaus/coffeepos/internal/service/models/order"
)

// IOrderRepository is an interface for the order postgres repository.
type IOrderRepository interface {
	List(ctx context.Context) ([]order.OrderRow, error)
	Insert(ctx context.Context, productID int64) error
	Delete(ctx context.Context, id int64) error
}
