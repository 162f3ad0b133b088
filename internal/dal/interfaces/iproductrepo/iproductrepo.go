package iproductrepo

import (
	"context"

	"github.com/beanhaus/coffeepos/internal/service/models/price"
	"github.com/beanhaus/coffeepos/internal/service/models/product"
)

// IProductRepository is an interface for the product postgres repository.
type IProductRepository interface {
	List(ctx context.Context) ([]product.Product, error)
	Insert(ctx context.Context, name string, priceCents price.Cents) error
	Update(ctx context.Context, id int64, name string, priceCents price.Cents) error
	Delete(ctx context.Context, id int64) error
}
