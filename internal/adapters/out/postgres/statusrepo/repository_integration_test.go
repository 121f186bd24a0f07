package statusrepo_test

import (
	"context"
	"testing"
	"time"

	"pickpoint/internal/adapters/out/postgres"
	"pickpoint/internal/adapters/out/postgres/statusrepo"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderStatusRepositoryIntegrationTestSuite verifies status lookups against
// the reference rows seeded by Migrate.
type OrderStatusRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *statusrepo.GormOrderStatusRepository
}

func (suite *OrderStatusRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.repository = statusrepo.NewGormOrderStatusRepository(db)
}

func (suite *OrderStatusRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderStatusRepositoryIntegrationTestSuite) TestGetByID_SeededStatuses() {
	ctx := context.Background()
	for _, expected := range order.AllStatuses() {
		status, err := suite.repository.GetByID(ctx, int(expected))
		suite.Require().NoError(err)
		suite.Equal(expected, status)
	}
}

func (suite *OrderStatusRepositoryIntegrationTestSuite) TestGetByID_UnknownStatus_ReturnsNotFound() {
	for _, id := range []int{0, 7, 99} {
		_, err := suite.repository.GetByID(context.Background(), id)

		var notFoundErr *errs.ObjectNotFoundError
		suite.Require().ErrorAs(err, &notFoundErr)
	}
}

// Migrate runs the seed with an on-conflict guard, so starting the service
// twice against the same database must not fail or duplicate rows.
func (suite *OrderStatusRepositoryIntegrationTestSuite) TestMigrate_SeedIsIdempotent() {
	suite.Require().NoError(postgres.Migrate(suite.db))

	var count int64
	suite.Require().NoError(suite.db.Table("order_statuses").Count(&count).Error)
	suite.Equal(int64(len(order.AllStatuses())), count)
}

func TestOrderStatusRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderStatusRepositoryIntegrationTestSuite))
}
