package postgresrepo_test

import (
	"context"
	"testing"
	"time"

	productrepo "github.com/beanhaus/coffeepos/internal/dal/repositories/product/postgres"
	"github.com/beanhaus/coffeepos/internal/service/models/price"
	"github.com/beanhaus/coffeepos/internal/service/models/product"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/goleak"
)

const migrationsDir = "../../../../../migrations"

type productRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	repo      *productrepo.PostgresProductRepository
	container testcontainers.Container
}

// entry point to run the tests in the suite
func TestProductRepositorySuite(t *testing.T) {
	// Verifies no leaks after all tests in the suite run.
	defer goleak.VerifyNone(t)

	suite.Run(t, new(productRepositorySuite))
}

// before all tests in the suite
func (suite *productRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.NoError(migrateUp(suite.pool))

	suite.repo = productrepo.NewPostgresProductRepository(suite.pool)
}

// after all tests in the suite
func (suite *productRepositorySuite) TearDownSuite() {
	ctx := suite.T().Context()

	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

// before each test
func (suite *productRepositorySuite) SetupTest() {
	_, err := suite.pool.Exec(suite.T().Context(),
		"TRUNCATE orders, products RESTART IDENTITY")
	suite.NoError(err)
}

func (suite *productRepositorySuite) TestInsertAndList() {
	t := suite.T()
	ctx := t.Context()

	name := gofakeit.ProductName()
	cents := price.Cents(gofakeit.Number(1, int(price.MaxCents)))

	require.NoError(t, suite.repo.Insert(ctx, name, cents))

	products, err := suite.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	got := products[0]
	require.NotZero(t, got.ID)
	require.Equal(t, name, got.Name)
	require.Equal(t, cents, got.PriceCents)
	require.Equal(t, int64(0), got.OrderCount)
}

func (suite *productRepositorySuite) TestListEmpty() {
	t := suite.T()

	products, err := suite.repo.List(t.Context())
	require.NoError(t, err)
	require.Empty(t, products)
}

func (suite *productRepositorySuite) TestUpdateOverwritesBothFields() {
	t := suite.T()
	ctx := t.Context()

	require.NoError(t, suite.repo.Insert(ctx, "Espresso", 250))

	products, err := suite.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	id := products[0].ID
	require.NoError(t, suite.repo.Update(ctx, id, "Doppio", 320))

	products, err = suite.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, product.Product{
		ID:         id,
		Name:       "Doppio",
		PriceCents: 320,
		OrderCount: 0,
	}, products[0])
}

func (suite *productRepositorySuite) TestDeleteIsIdempotent() {
	t := suite.T()
	ctx := t.Context()

	// Deleting an id that never existed still succeeds.
	require.NoError(t, suite.repo.Delete(ctx, 123456))

	require.NoError(t, suite.repo.Insert(ctx, "Cortado", 300))

	products, err := suite.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	require.NoError(t, suite.repo.Delete(ctx, products[0].ID))
	require.NoError(t, suite.repo.Delete(ctx, products[0].ID))

	products, err = suite.repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, products)
}

func startPostgres(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := tcpostgres.Run(ctx, "postgres:17-alpine",
		tcpostgres.WithDatabase("coffeepos"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, "", err
	}

	return container, connStr, nil
}

func migrateUp(pool *pgxpool.Pool) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := goose.Up(db, migrationsDir); err != nil {
		return err
	}

	return db.Close()
}
