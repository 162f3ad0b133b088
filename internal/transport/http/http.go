package httptransport

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/beanhaus/coffeepos/internal/service/models/order"
	"github.com/beanhaus/coffeepos/internal/service/models/price"
	"github.com/beanhaus/coffeepos/internal/service/models/product"
	"github.com/beanhaus/coffeepos/internal/transport/http/createorder"
	"github.com/beanhaus/coffeepos/internal/transport/http/createproduct"
	"github.com/beanhaus/coffeepos/internal/transport/http/deleteorder"
	"github.com/beanhaus/coffeepos/internal/transport/http/deleteproduct"
	"github.com/beanhaus/coffeepos/internal/transport/http/getcsv"
	"github.com/beanhaus/coffeepos/internal/transport/http/index"
	"github.com/beanhaus/coffeepos/internal/transport/http/updateproduct"
	"github.com/beanhaus/coffeepos/internal/transport/http/view"
	"github.com/beanhaus/coffeepos/pkg/http/middleware/metricsmw"
	"github.com/beanhaus/coffeepos/pkg/http/middleware/trace"
	"github.com/beanhaus/coffeepos/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
)

//go:embed assets/icons.ttf
var iconFont []byte

type service interface {
	GetOrders(ctx context.Context) ([]order.OrderRow, error)
	GetProducts(ctx context.Context) ([]product.Product, error)
	CreateOrder(ctx context.Context, productID int64) error
	DeleteOrder(ctx context.Context, id int64) error
	CreateProduct(ctx context.Context, name string, priceCents price.Cents) error
	UpdateProduct(ctx context.Context, id int64, name string, priceCents price.Cents) error
	DeleteProduct(ctx context.Context, id int64) error
	ExportOrdersCSV(ctx context.Context) (string, error)
}

type HTTPTransport struct {
	server   *http.Server
	router   *chi.Mux
	service  service
	renderer *view.Renderer
}

func NewHTTPTransport(service service) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:   server,
		router:   router,
		service:  service,
		renderer: view.MustNewRenderer(),
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// Handler exposes the routed handler, mainly for tests.
func (h *HTTPTransport) Handler() http.Handler {
	return h.router
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Get("/", h.index)
	h.router.Get("/get_csv", h.exportCSV)
	h.router.Get("/icons.ttf", h.iconFont)
	h.router.Get("/metrics", promhttp.Handler().ServeHTTP)

	h.router.Route("/hx", func(r chi.Router) {
		r.Post("/create_order", h.createOrder)
		r.Delete("/delete_order", h.deleteOrder)
		r.Post("/create_product", h.createProduct)
		r.Post("/update_product", h.updateProduct)
		r.Delete("/delete_product", h.deleteProduct)
	})

	h.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.renderer.NotFound(w)
	})
}

func (h *HTTPTransport) index(w http.ResponseWriter, r *http.Request) {
	index.Index(w, r, h.service, h.renderer)
}

func (h *HTTPTransport) exportCSV(w http.ResponseWriter, r *http.Request) {
	getcsv.ExportCSV(w, r, h.service, h.renderer)
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.service, h.renderer)
}

func (h *HTTPTransport) deleteOrder(w http.ResponseWriter, r *http.Request) {
	deleteorder.DeleteOrder(w, r, h.service, h.renderer)
}

func (h *HTTPTransport) createProduct(w http.ResponseWriter, r *http.Request) {
	createproduct.CreateProduct(w, r, h.service, h.renderer)
}

func (h *HTTPTransport) updateProduct(w http.ResponseWriter, r *http.Request) {
	updateproduct.UpdateProduct(w, r, h.service, h.renderer)
}

func (h *HTTPTransport) deleteProduct(w http.ResponseWriter, r *http.Request) {
	deleteproduct.DeleteProduct(w, r, h.service, h.renderer)
}

func (h *HTTPTransport) iconFont(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "font/ttf")

	if _, err := w.Write(iconFont); err != nil {
		slog.Error("Error writing icon font response", "error", err)
	}
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)
	router.Use(metricsmw.NewMetricsMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
