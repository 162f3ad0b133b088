package index

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/beanhaus/coffeepos/internal/service/models/order"
	"github.com/beanhaus/coffeepos/internal/service/models/product"
	"github.com/beanhaus/coffeepos/internal/transport/http/view"
)

// service is an interface for the service layer.
type service interface {
	GetOrders(ctx context.Context) ([]order.OrderRow, error)
	GetProducts(ctx context.Context) ([]product.Product, error)
}

// Index renders the full page with both the order and product lists.
func Index(w http.ResponseWriter, r *http.Request, service service, renderer *view.Renderer) {
	orders, err := service.GetOrders(r.Context())
	if err != nil {
		slog.Error("Error getting orders for index", "error", err)
		renderer.Error(w)

		return
	}

	products, err := service.GetProducts(r.Context())
	if err != nil {
		slog.Error("Error getting products for index", "error", err)
		renderer.Error(w)

		return
	}

	renderer.Index(w, view.PageData{Orders: orders, Products: products})
}
