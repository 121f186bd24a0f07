package postgres_test

import (
	"context"
	"testing"
	"time"

	"pickpoint/internal/adapters/out/postgres"
	"pickpoint/internal/adapters/out/postgres/productrepo"
	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics: work done
// through a unit of work either lands completely or not at all.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders, products CASCADE").Error)
	for i, name := range []string{"prod1", "prod2"} {
		p, err := product.NewProduct(int64(i+1), name, 10, decimal.NewFromInt(100))
		suite.Require().NoError(err)
		dto := productrepo.FromDomain(p)
		suite.Require().NoError(suite.db.Create(&dto).Error)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(number int) *order.Order {
	phone, err := kernel.NewPhone("+79991234567")
	suite.Require().NoError(err)
	locker, err := kernel.NewLockerNumber("1111-1111")
	suite.Require().NoError(err)
	item, err := order.NewItem(1, "prod1")
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		number,
		order.Registered,
		decimal.NewFromInt(500),
		"Ivan Petrov",
		phone,
		locker,
		[]order.Item{item},
	)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) rowCount(table string) int64 {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder(42)))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.rowCount("orders"))
	suite.Equal(int64(1), suite.rowCount("order_items"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_LeavesNoOrphanedItems() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder(42)))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.rowCount("orders"))
	suite.Equal(int64(0), suite.rowCount("order_items"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_Fails() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// Repositories from separate units of work must not observe each other's
// uncommitted changes.
func (suite *UnitOfWorkIntegrationTestSuite) TestIsolation_UncommittedChangesInvisible() {
	ctx := context.Background()
	writer := suite.factory.Create()
	suite.Require().NoError(writer.Begin(ctx))
	suite.Require().NoError(writer.OrderRepository().Add(ctx, suite.createTestOrder(42)))

	reader := suite.factory.Create()
	exists, err := reader.OrderRepository().Exists(ctx, 42)
	suite.Require().NoError(err)
	suite.False(exists)

	suite.Require().NoError(writer.Commit(ctx))

	exists, err = reader.OrderRepository().Exists(ctx, 42)
	suite.Require().NoError(err)
	suite.True(exists)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
