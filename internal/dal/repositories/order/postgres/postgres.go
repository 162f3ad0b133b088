package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/beanhaus/coffeepos/internal/service/models/order"
	"github.com/beanhaus/coffeepos/internal/service/models/price"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// OrderDal represents order data access layer model.
type OrderDal struct {
	Id          int64     `db:"id"`
	CreatedAt   time.Time `db:"created_at"`
	PriceCents  int64     `db:"price_cents"`
	ProductName string    `db:"product_name"`
}

// ToModel converts OrderDal to service layer OrderRow model.
func (o *OrderDal) ToModel() *order.OrderRow {
	return &order.OrderRow{
		ID:          o.Id,
		Created:     o.CreatedAt,
		PriceCents:  price.Cents(o.PriceCents),
		ProductName: o.ProductName,
	}
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn GenericConn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// List retrieves all orders joined to their product name, newest first.
// Orders sharing a creation timestamp have no secondary sort key.
func (r *PostgresOrderRepository) List(ctx context.Context) ([]order.OrderRow, error) {
	query, args, err := r.sb.
		Select(
			"o.id",
			"o.created_at",
			"o.price_cents",
			"COALESCE(p.name, '(deleted)') AS product_name",
		).
		From("orders o").
		LeftJoin("products p ON p.id = o.product_id").
		OrderBy("o.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list orders query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	result := []order.OrderRow{}
	for rows.Next() {
		var dal OrderDal
		if err := rows.Scan(&dal.Id, &dal.CreatedAt, &dal.PriceCents, &dal.ProductName); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Insert creates an order for productID, capturing the product's current
// price inside the same statement so there is no second round trip. The id
// and creation timestamp are assigned by the database.
func (r *PostgresOrderRepository) Insert(ctx context.Context, productID int64) error {
	sql := `
		INSERT INTO orders (product_id, price_cents)
		VALUES ($1, (SELECT price_cents FROM products WHERE id = $1))
	`

	if _, err := r.conn.Exec(ctx, sql, productID); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// Delete removes an order by id. Deleting a nonexistent id is a no-op.
func (r *PostgresOrderRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.
		Delete("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete order query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
