package possvc

import (
	"context"
	"fmt"
	"strings"

	"github.com/beanhaus/coffeepos/internal/dal/interfaces/iorderrepo"
	"github.com/beanhaus/coffeepos/internal/dal/interfaces/iproductrepo"
	"github.com/beanhaus/coffeepos/internal/dal/postgres"
	orderrepo "github.com/beanhaus/coffeepos/internal/dal/repositories/order/postgres"
	productrepo "github.com/beanhaus/coffeepos/internal/dal/repositories/product/postgres"
	"github.com/beanhaus/coffeepos/internal/metrics"
	"github.com/beanhaus/coffeepos/internal/service/models/order"
	"github.com/beanhaus/coffeepos/internal/service/models/price"
	"github.com/beanhaus/coffeepos/internal/service/models/product"
	"github.com/samber/lo"
)

const csvHeader = "created,price,product_name"

const csvTimeLayout = "2006-01-02 15:04:05"

// PosService is a service for managing the product catalogue and the orders
// placed against it. It holds no state across requests beyond the pool.
type PosService struct {
	pgClient    *postgres.Client
	orderRepo   iorderrepo.IOrderRepository
	productRepo iproductrepo.IProductRepository
}

// option is a function that configures the PosService.
type option func(*PosService)

// MustNewPosService creates a new PosService.
func MustNewPosService(opts ...option) *PosService {
	s := &PosService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.pgClient == nil {
		panic("possvc: postgres client is required")
	}

	s.orderRepo = orderrepo.NewPostgresOrderRepository(s.pgClient.Pool())
	s.productRepo = productrepo.NewPostgresProductRepository(s.pgClient.Pool())

	return s
}

// WithPostgresClient sets the Postgres client for the PosService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *PosService) {
		s.pgClient = pgClient
	}
}

// GetOrders returns all orders, newest first.
func (s *PosService) GetOrders(ctx context.Context) ([]order.OrderRow, error) {
	return s.orderRepo.List(ctx)
}

// GetProducts returns the catalogue with derived order counts.
func (s *PosService) GetProducts(ctx context.Context) ([]product.Product, error) {
	return s.productRepo.List(ctx)
}

// CreateOrder places an order for productID, capturing the product's current
// price at insert time.
func (s *PosService) CreateOrder(ctx context.Context, productID int64) error {
	if err := s.orderRepo.Insert(ctx, productID); err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()

	return nil
}

// DeleteOrder removes an order. Deleting a nonexistent id still succeeds.
func (s *PosService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.OrdersDeletedTotal.Inc()

	return nil
}

// CreateProduct adds a product to the catalogue.
func (s *PosService) CreateProduct(ctx context.Context, name string, priceCents price.Cents) error {
	if err := s.productRepo.Insert(ctx, name, priceCents); err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()

	return nil
}

// UpdateProduct overwrites a product's name and price. Captured prices on
// existing orders are not touched.
func (s *PosService) UpdateProduct(ctx context.Context, id int64, name string, priceCents price.Cents) error {
	if err := s.productRepo.Update(ctx, id, name, priceCents); err != nil {
		return err
	}

	metrics.ProductsUpdatedTotal.Inc()

	return nil
}

// DeleteProduct removes a product. Orders referencing it are kept.
func (s *PosService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.ProductsDeletedTotal.Inc()

	return nil
}

// ExportOrdersCSV renders the order history as CSV text.
func (s *PosService) ExportOrdersCSV(ctx context.Context) (string, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return "", err
	}

	metrics.CSVExportsTotal.Inc()

	return OrdersCSV(orders), nil
}

// OrdersCSV formats orders as CSV: the fixed header, then one row per order
// with the price at exactly two decimals and the product name quoted.
func OrdersCSV(orders []order.OrderRow) string {
	lines := append(
		[]string{csvHeader},
		lo.Map(orders, func(row order.OrderRow, _ int) string {
			return fmt.Sprintf("%s,%s,%q",
				row.Created.Format(csvTimeLayout),
				row.PriceCents.String(),
				row.ProductName,
			)
		})...,
	)

	return strings.Join(lines, "\n")
}
