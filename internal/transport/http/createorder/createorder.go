package createorder

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/beanhaus/coffeepos/internal/service/models/order"
	"github.com/beanhaus/coffeepos/internal/transport/http/view"
	"github.com/go-playground/validator/v10"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, productID int64) error
	GetOrders(ctx context.Context) ([]order.OrderRow, error)
}

// createOrderRequest represents a create order form submission.
type createOrderRequest struct {
	Product int64 `validate:"gt=0"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// CreateOrder places an order for the submitted product and responds with
// the re-rendered order list fragment.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service, renderer *view.Renderer) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		slog.Error("Error parsing create order form", "error", err)

		return
	}

	productID, err := strconv.ParseInt(r.PostFormValue("product"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		slog.Error("Error parsing product id for create order", "error", err)

		return
	}

	req := createOrderRequest{Product: productID}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating create order request", "error", err)

		return
	}

	if err := service.CreateOrder(r.Context(), req.Product); err != nil {
		slog.Error("Error creating order", "error", err)
		renderer.Error(w)

		return
	}

	orders, err := service.GetOrders(r.Context())
	if err != nil {
		slog.Error("Error getting orders after create", "error", err)
		renderer.Error(w)

		return
	}

	renderer.OrderList(w, orders)
}
