package getcsv

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/beanhaus/coffeepos/internal/transport/http/view"
)

// service is an interface for the service layer.
type service interface {
	ExportOrdersCSV(ctx context.Context) (string, error)
}

// ExportCSV streams the order history as CSV text.
func ExportCSV(w http.ResponseWriter, r *http.Request, service service, renderer *view.Renderer) {
	body, err := service.ExportOrdersCSV(r.Context())
	if err != nil {
		slog.Error("Error exporting orders CSV", "error", err)
		renderer.Error(w)

		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")

	if _, err := w.Write([]byte(body)); err != nil {
		slog.Error("Error writing CSV response", "error", err)
	}
}
