package queries_test

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/adapters/out/postgres/capacityrepo"
	"bakehouse/internal/adapters/out/postgres/orderrepo"
	"bakehouse/internal/core/application/usecases/queries"
	"bakehouse/internal/core/domain/model/capacity"
	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CheckCapacityQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.CheckCapacityQueryHandler
}

func (suite *CheckCapacityQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &capacityrepo.DayCapacityDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewCheckCapacityQueryHandler(db)
}

func (suite *CheckCapacityQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CheckCapacityQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE daily_capacities CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *CheckCapacityQueryHandlerTestSuite) TestHandle_EmptyDay_UsesDefaultLimit() {
	date := suite.date("2026-09-10")

	query, err := queries.NewCheckCapacityQuery(date, 15, nil)
	suite.Require().NoError(err)

	check, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(check.HasCapacity)
	suite.Equal(0, check.CurrentUnits)
	suite.Equal(15, check.ProposedUnits)
	suite.Equal(capacity.DefaultMaxUnits, check.MaxUnits)
	suite.Equal(capacity.DefaultMaxUnits, check.AvailableUnits)
}

func (suite *CheckCapacityQueryHandlerTestSuite) TestHandle_CountsExistingOrders() {
	date := suite.date("2026-09-10")
	suite.seedOrder(date, 60)
	suite.seedOrder(date, 30)

	query, err := queries.NewCheckCapacityQuery(date, 5, nil)
	suite.Require().NoError(err)

	check, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(check.HasCapacity)
	suite.Equal(90, check.CurrentUnits)
	suite.Equal(10, check.AvailableUnits)
}

func (suite *CheckCapacityQueryHandlerTestSuite) TestHandle_OverCapacity_ReportsNoRoom() {
	date := suite.date("2026-09-10")
	suite.seedOrder(date, 96)

	query, err := queries.NewCheckCapacityQuery(date, 5, nil)
	suite.Require().NoError(err)

	check, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.False(check.HasCapacity)
	suite.Equal(96, check.CurrentUnits)
	suite.Equal(4, check.AvailableUnits)
}

func (suite *CheckCapacityQueryHandlerTestSuite) TestHandle_ConfiguredLimitOverridesDefault() {
	date := suite.date("2026-09-10")
	suite.seedCapacity(date, 20)
	suite.seedOrder(date, 18)

	query, err := queries.NewCheckCapacityQuery(date, 5, nil)
	suite.Require().NoError(err)

	check, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.False(check.HasCapacity)
	suite.Equal(20, check.MaxUnits)
	suite.Equal(2, check.AvailableUnits)
}

func (suite *CheckCapacityQueryHandlerTestSuite) TestHandle_BlockedDay_RejectsEverything() {
	date := suite.date("2026-09-10")
	suite.seedCapacity(date, 0)

	query, err := queries.NewCheckCapacityQuery(date, 1, nil)
	suite.Require().NoError(err)

	check, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.False(check.HasCapacity)
	suite.Equal(0, check.MaxUnits)
	suite.Equal(0, check.AvailableUnits)
}

func (suite *CheckCapacityQueryHandlerTestSuite) TestHandle_IgnoresCancelledOrders() {
	date := suite.date("2026-09-10")
	cancelled := suite.seedOrder(date, 50)
	suite.cancelOrder(cancelled)
	suite.seedOrder(date, 30)

	query, err := queries.NewCheckCapacityQuery(date, 5, nil)
	suite.Require().NoError(err)

	check, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(30, check.CurrentUnits)
}

func (suite *CheckCapacityQueryHandlerTestSuite) TestHandle_IgnoresOtherDays() {
	date := suite.date("2026-09-10")
	suite.seedOrder(suite.date("2026-09-09"), 100)
	suite.seedOrder(suite.date("2026-09-11"), 100)
	suite.seedOrder(date, 40)

	query, err := queries.NewCheckCapacityQuery(date, 5, nil)
	suite.Require().NoError(err)

	check, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(40, check.CurrentUnits)
}

func (suite *CheckCapacityQueryHandlerTestSuite) TestHandle_ExcludeOrderID_LeavesOwnUnitsOut() {
	date := suite.date("2026-09-10")
	existing := suite.seedOrder(date, 95)
	excludeID := existing.ID()

	query, err := queries.NewCheckCapacityQuery(date, 98, &excludeID)
	suite.Require().NoError(err)

	check, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(check.HasCapacity)
	suite.Equal(0, check.CurrentUnits)
	suite.Equal(98, check.ProposedUnits)
}

func (suite *CheckCapacityQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.CheckCapacityQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewCheckCapacityQuery constructor")
}

func (suite *CheckCapacityQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	date := suite.date("2026-09-10")
	suite.seedOrder(date, 10)

	query, err := queries.NewCheckCapacityQuery(date, 5, nil)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
}

func (suite *CheckCapacityQueryHandlerTestSuite) date(value string) kernel.Date {
	date, err := kernel.DateFromString(value)
	suite.Require().NoError(err)
	return date
}

func (suite *CheckCapacityQueryHandlerTestSuite) seedOrder(date kernel.Date, units int) *order.Order {
	item, err := order.NewItem("Sourdough Loaf", units, decimal.NewFromFloat(6.50))
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		"Marta Silva",
		"+351912000001",
		"marta@example.com",
		[]order.Item{item},
		date,
		"",
		order.SourceManual,
		"",
		time.Now(),
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *CheckCapacityQueryHandlerTestSuite) cancelOrder(aggregate *order.Order) {
	err := aggregate.ChangeStatus(order.Cancelled, time.Now())
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = repo.Update(context.Background(), aggregate)
	suite.Require().NoError(err)
}

func (suite *CheckCapacityQueryHandlerTestSuite) seedCapacity(date kernel.Date, maxUnits int) {
	record, err := capacity.NewDayCapacity(date, maxUnits, "")
	suite.Require().NoError(err)

	repo := capacityrepo.NewGormCapacityRepository(suite.db)
	err = repo.Upsert(context.Background(), record)
	suite.Require().NoError(err)
}

// mockAggregateTracker satisfies the repositories' tracker dependency
// without a surrounding unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for tests
}

func TestCheckCapacityQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CheckCapacityQueryHandlerTestSuite))
}
