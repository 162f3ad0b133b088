package createproduct

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/beanhaus/coffeepos/internal/service/models/price"
	"github.com/beanhaus/coffeepos/internal/service/models/product"
	"github.com/beanhaus/coffeepos/internal/transport/http/view"
	"github.com/go-playground/validator/v10"
)

// service is an interface for the service layer.
type service interface {
	CreateProduct(ctx context.Context, name string, priceCents price.Cents) error
	GetProducts(ctx context.Context) ([]product.Product, error)
}

// createProductRequest represents a create product form submission. The
// price arrives as a human-entered decimal string.
type createProductRequest struct {
	Name  string `validate:"required"`
	Price string `validate:"required"`
}

// Validate validates the create product request.
func (r *createProductRequest) Validate() error {
	return validator.New().Struct(r)
}

// CreateProduct adds a product to the catalogue and responds with the
// re-rendered product list fragment.
func CreateProduct(w http.ResponseWriter, r *http.Request, service service, renderer *view.Renderer) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		slog.Error("Error parsing create product form", "error", err)

		return
	}

	req := createProductRequest{
		Name:  r.PostFormValue("name"),
		Price: r.PostFormValue("price"),
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating create product request", "error", err)

		return
	}

	priceCents, err := price.Parse(req.Price)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error parsing product price", "price", req.Price, "error", err)

		return
	}

	if err := service.CreateProduct(r.Context(), req.Name, priceCents); err != nil {
		slog.Error("Error creating product", "error", err)
		renderer.Error(w)

		return
	}

	products, err := service.GetProducts(r.Context())
	if err != nil {
		slog.Error("Error getting products after create", "error", err)
		renderer.Error(w)

		return
	}

	renderer.ProductList(w, products)
}
