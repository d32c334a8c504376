package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) createOrder(items ...*order.Item) *order.Order {
	if len(items) == 0 {
		item, err := order.NewItem(kernel.NewUUID(), "SKU-1", 2, decimal.RequireFromString("9.99"))
		suite.Require().NoError(err)
		items = []*order.Item{item}
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), "customer-1", items, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsSnapshot() {
	item1, err := order.NewItem(kernel.NewUUID(), "SKU-1", 2, decimal.RequireFromString("9.99"))
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), "SKU-2", 1, decimal.RequireFromString("5.30"))
	suite.Require().NoError(err)
	aggregate := suite.createOrder(item1, item2)

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().NotNil(resp)

	suite.True(resp.ID.IsEqual(aggregate.ID()))
	suite.Equal("customer-1", resp.CustomerID)
	suite.Equal("Draft", resp.Status)
	suite.True(resp.TotalAmount.Equal(decimal.RequireFromString("25.28")))
	suite.Equal(int64(1), resp.Version)
	suite.Len(resp.Items, 2)

	skus := make(map[string]queries.GetOrderItemResponse)
	for _, it := range resp.Items {
		skus[it.Sku] = it
	}
	suite.Equal(2, skus["SKU-1"].Quantity)
	suite.True(skus["SKU-1"].UnitPrice.Equal(decimal.RequireFromString("9.99")))
	suite.Equal(1, skus["SKU-2"].Quantity)
	suite.True(skus["SKU-2"].UnitPrice.Equal(decimal.RequireFromString("5.30")))
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNil() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Nil(resp)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ConfirmedOrder_ReflectsStatusAndVersion() {
	aggregate := suite.createOrder()

	loaded, err := suite.orderRepo.Get(context.Background(), aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Confirm(time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), loaded))

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("Confirmed", resp.Status)
	suite.Equal(int64(2), resp.Version)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	resp, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Nil(resp)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
