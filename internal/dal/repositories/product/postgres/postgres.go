package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/beanhaus/coffeepos/internal/service/models/price"
	"github.com/beanhaus/coffeepos/internal/service/models/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ProductDal represents product data access layer model.
type ProductDal struct {
	Id         int64  `db:"id"`
	Name       string `db:"name"`
	PriceCents int64  `db:"price_cents"`
	OrderCount int64  `db:"order_count"`
}

// ToModel converts ProductDal to service layer Product model.
func (p *ProductDal) ToModel() *product.Product {
	return &product.Product{
		ID:         p.Id,
		Name:       p.Name,
		PriceCents: price.Cents(p.PriceCents),
		OrderCount: p.OrderCount,
	}
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresProductRepository represents a Postgres product repository.
type PostgresProductRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresProductRepository creates a new Postgres product repository.
func NewPostgresProductRepository(conn GenericConn) *PostgresProductRepository {
	return &PostgresProductRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// List retrieves all products with their derived order count. Products with
// zero orders appear with count 0.
func (r *PostgresProductRepository) List(ctx context.Context) ([]product.Product, error) {
	query, args, err := r.sb.
		Select(
			"p.id",
			"p.name",
			"p.price_cents",
			"COUNT(o.id) AS order_count",
		).
		From("products p").
		LeftJoin("orders o ON o.product_id = p.id").
		GroupBy("p.id", "p.name", "p.price_cents").
		OrderBy("p.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list products query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	result := []product.Product{}
	for rows.Next() {
		var dal ProductDal
		if err := rows.Scan(&dal.Id, &dal.Name, &dal.PriceCents, &dal.OrderCount); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Insert creates a product. The id is assigned by the database.
func (r *PostgresProductRepository) Insert(ctx context.Context, name string, priceCents price.Cents) error {
	query, args, err := r.sb.
		Insert("products").
		Columns("name", "price_cents").
		Values(name, int64(priceCents)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert product query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// Update overwrites both mutable fields of a product. No partial update.
func (r *PostgresProductRepository) Update(ctx context.Context, id int64, name string, priceCents price.Cents) error {
	query, args, err := r.sb.
		Update("products").
		Set("name", name).
		Set("price_cents", int64(priceCents)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update product query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// Delete removes a product by id. Deleting a nonexistent id is a no-op, and
// existing orders referencing the product are left in place.
func (r *PostgresProductRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.
		Delete("products").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete product query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
