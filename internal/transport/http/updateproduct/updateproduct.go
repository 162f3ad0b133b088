package updateproduct

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/beanhaus/coffeepos/internal/service/models/order"
	"github.com/beanhaus/coffeepos/internal/service/models/price"
	"github.com/beanhaus/coffeepos/internal/service/models/product"
	"github.com/beanhaus/coffeepos/internal/transport/http/view"
	"github.com/go-playground/validator/v10"
)

// service is an interface for the service layer.
type service interface {
	UpdateProduct(ctx context.Context, id int64, name string, priceCents price.Cents) error
	GetOrders(ctx context.Context) ([]order.OrderRow, error)
	GetProducts(ctx context.Context) ([]product.Product, error)
}

// updateProductRequest represents an update product form submission.
type updateProductRequest struct {
	Product int64  `validate:"gt=0"`
	Name    string `validate:"required"`
	Price   string `validate:"required"`
}

// Validate validates the update product request.
func (r *updateProductRequest) Validate() error {
	return validator.New().Struct(r)
}

// UpdateProduct overwrites a product's name and price and responds with the
// re-rendered content fragment, since a price edit changes both lists.
func UpdateProduct(w http.ResponseWriter, r *http.Request, service service, renderer *view.Renderer) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		slog.Error("Error parsing update product form", "error", err)

		return
	}

	productID, err := strconv.ParseInt(r.PostFormValue("product"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		slog.Error("Error parsing product id for update", "error", err)

		return
	}

	req := updateProductRequest{
		Product: productID,
		Name:    r.PostFormValue("name"),
		Price:   r.PostFormValue("price"),
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating update product request", "error", err)

		return
	}

	priceCents, err := price.Parse(req.Price)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error parsing product price", "price", req.Price, "error", err)

		return
	}

	if err := service.UpdateProduct(r.Context(), req.Product, req.Name, priceCents); err != nil {
		slog.Error("Error updating product", "error", err)
		renderer.Error(w)

		return
	}

	orders, err := service.GetOrders(r.Context())
	if err != nil {
		slog.Error("Error getting orders after product update", "error", err)
		renderer.Error(w)

		return
	}

	products, err := service.GetProducts(r.Context())
	if err != nil {
		slog.Error("Error getting products after product update", "error", err)
		renderer.Error(w)

		return
	}

	renderer.Content(w, view.PageData{Orders: orders, Products: products})
}
