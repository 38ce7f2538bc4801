package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"homekitchen/internal/common"
	"homekitchen/internal/models"

	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type OrderRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    OrderRepository
	context context.Context
}

func (suite *OrderRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewOrderRepo(mock)
	suite.context = context.Background()
}

func (suite *OrderRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}

func (suite *OrderRepoTestSuite) sampleOrder() (*models.Order, []*models.OrderItem) {
	order := &models.Order{
		CustomerName:    "Priya Sharma",
		CustomerEmail:   "priya@example.com",
		CustomerPhone:   "+1 555 0100",
		CustomerAddress: "12 Main St",
		TotalAmount:     decimal.RequireFromString("31.98"),
		Status:          "pending",
		PaymentMethod:   "cash",
	}
	items := []*models.OrderItem{
		{ItemName: "Butter Chicken", Quantity: 1, Price: decimal.RequireFromString("18.99")},
		{ItemName: "Samosas", Quantity: 1, Price: decimal.RequireFromString("12.99")},
	}
	return order, items
}

func (suite *OrderRepoTestSuite) TestCreateWithItems_Success() {
	order, items := suite.sampleOrder()
	createdAt := time.Now()

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.CustomerAddress,
			order.TotalAmount, order.Status, order.PaymentMethod).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))
	suite.mock.ExpectQuery(`INSERT INTO order_items`).
		WithArgs(int64(7), items[0].ItemName, items[0].Quantity, items[0].Price).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
	suite.mock.ExpectQuery(`INSERT INTO order_items`).
		WithArgs(int64(7), items[1].ItemName, items[1].Quantity, items[1].Price).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))
	suite.mock.ExpectCommit()

	err := suite.repo.CreateWithItems(suite.context, order, items)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), order.ID)
	assert.Equal(suite.T(), int64(7), items[0].OrderID)
	assert.Equal(suite.T(), int64(12), items[1].ID)
	assert.Len(suite.T(), order.Items, 2)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestCreateWithItems_RollbackOnItemFailure() {
	order, items := suite.sampleOrder()

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.CustomerAddress,
			order.TotalAmount, order.Status, order.PaymentMethod).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), time.Now()))
	suite.mock.ExpectQuery(`INSERT INTO order_items`).
		WithArgs(int64(7), items[0].ItemName, items[0].Quantity, items[0].Price).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
	suite.mock.ExpectQuery(`INSERT INTO order_items`).
		WithArgs(int64(7), items[1].ItemName, items[1].Quantity, items[1].Price).
		WillReturnError(errors.New("connection reset"))
	suite.mock.ExpectRollback()

	err := suite.repo.CreateWithItems(suite.context, order, items)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "insert order item")
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestCreateWithItems_RollbackOnOrderFailure() {
	order, items := suite.sampleOrder()

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.CustomerAddress,
			order.TotalAmount, order.Status, order.PaymentMethod).
		WillReturnError(errors.New("out of disk"))
	suite.mock.ExpectRollback()

	err := suite.repo.CreateWithItems(suite.context, order, items)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "insert order")
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestGetByID_Success() {
	createdAt := time.Now()
	suite.mock.ExpectQuery(`SELECT id, customer_name, customer_email, customer_phone, customer_address, total_amount, status, payment_method, created_at\s+FROM orders`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "customer_name", "customer_email", "customer_phone", "customer_address",
			"total_amount", "status", "payment_method", "created_at",
		}).AddRow(int64(7), "Priya Sharma", "priya@example.com", "+1 555 0100", "12 Main St",
			decimal.RequireFromString("31.98"), "pending", "cash", createdAt))
	suite.mock.ExpectQuery(`SELECT id, order_id, item_name, quantity, price\s+FROM order_items`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "item_name", "quantity", "price"}).
			AddRow(int64(11), int64(7), "Butter Chicken", 1, decimal.RequireFromString("18.99")).
			AddRow(int64(12), int64(7), "Samosas", 1, decimal.RequireFromString("12.99")))

	order, err := suite.repo.GetByID(suite.context, 7)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), order.ID)
	assert.Equal(suite.T(), "pending", order.Status)
	assert.Len(suite.T(), order.Items, 2)
	assert.Equal(suite.T(), "Butter Chicken", order.Items[0].ItemName)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`SELECT id, customer_name`).
		WithArgs(int64(999)).
		WillReturnError(pgx.ErrNoRows)

	order, err := suite.repo.GetByID(suite.context, 999)
	assert.Nil(suite.T(), order)
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestUpdateStatus_Success() {
	suite.mock.ExpectExec(`UPDATE orders SET status = \$1 WHERE id = \$2`).
		WithArgs("confirmed", int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdateStatus(suite.context, 7, "confirmed")
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestUpdateStatus_NotFound() {
	suite.mock.ExpectExec(`UPDATE orders SET status = \$1 WHERE id = \$2`).
		WithArgs("confirmed", int64(999)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.UpdateStatus(suite.context, 999, "confirmed")
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}
