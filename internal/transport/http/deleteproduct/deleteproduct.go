package deleteproduct

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/beanhaus/coffeepos/internal/transport/http/view"
)

// service is an interface for the service layer.
type service interface {
	DeleteProduct(ctx context.Context, id int64) error
}

// DeleteProduct removes a product by id and responds with an empty 200.
// Existing orders referencing the product are left in place.
func DeleteProduct(w http.ResponseWriter, r *http.Request, service service, renderer *view.Renderer) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		slog.Error("Error parsing product id for delete", "error", err)

		return
	}

	if err := service.DeleteProduct(r.Context(), id); err != nil {
		slog.Error("Error deleting product", "error", err)
		renderer.Error(w)

		return
	}

	w.WriteHeader(http.StatusOK)
}
