package deleteorder

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/beanhaus/coffeepos/internal/transport/http/view"
)

// service is an interface for the service layer.
type service interface {
	DeleteOrder(ctx context.Context, id int64) error
}

// DeleteOrder removes an order by id and responds with an empty 200.
// Deleting a nonexistent id still succeeds.
func DeleteOrder(w http.ResponseWriter, r *http.Request, service service, renderer *view.Renderer) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		slog.Error("Error parsing order id for delete", "error", err)

		return
	}

	if err := service.DeleteOrder(r.Context(), id); err != nil {
		slog.Error("Error deleting order", "error", err)
		renderer.Error(w)

		return
	}

	w.WriteHeader(http.StatusOK)
}
