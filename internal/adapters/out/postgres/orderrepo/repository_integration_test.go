package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/core/domain/model/craftsman"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderRejectionDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_rejections, orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	// Create valid order
	testOrder := suite.createTestOrder("001")

	// Set expectations on mock
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	// Add order to repository
	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order was persisted
	suite.assertOrderCount(1)

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_ReturnsConflict() {
	ctx := context.Background()

	// Persist an order under a number
	first := suite.createTestOrder("042")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// A second aggregate under the same number must lose to the unique index
	second := suite.createTestOrder("042")
	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, ports.ErrOrderNumberConflict)
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	// Create and add order carrying every optional attribute
	id := kernel.NewUUID()
	orderNo, err := kernel.NewOrderNumber("007")
	suite.Require().NoError(err)

	details, err := order.NewDetails("necklace", "N-77", "916", "matte finish", 1)
	suite.Require().NoError(err)

	orderDate := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
	dueDate := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	createdBy := kernel.NewUUID()
	partnerCode, err := kernel.NewPartnerCode("GLD")
	suite.Require().NoError(err)

	originalOrder, err := order.NewOrder(id, orderNo, details, orderDate, &dueDate, createdBy, &partnerCode)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	// Retrieve order by its number
	retrievedOrder, err := suite.repository.GetByNumber(ctx, orderNo)
	suite.Require().NoError(err)

	// Verify order attributes survived the round trip
	suite.True(id.IsEqual(retrievedOrder.ID()))
	suite.True(orderNo.IsEqual(retrievedOrder.OrderNo()))
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Equal("necklace", retrievedOrder.Details().Product())
	suite.Equal("N-77", retrievedOrder.Details().Design())
	suite.Equal("916", retrievedOrder.Details().Purity())
	suite.Equal("matte finish", retrievedOrder.Details().Narration())
	suite.Equal(1, retrievedOrder.Details().Quantity())
	suite.WithinDuration(orderDate, retrievedOrder.OrderDate(), time.Second)
	suite.Require().NotNil(retrievedOrder.DueDate())
	suite.WithinDuration(dueDate, *retrievedOrder.DueDate(), time.Second)
	suite.True(createdBy.IsEqual(retrievedOrder.CreatedBy()))
	suite.Require().NotNil(retrievedOrder.PartnerCode())
	suite.True(partnerCode.IsEqual(*retrievedOrder.PartnerCode()))
	suite.Nil(retrievedOrder.Craftsman())
	suite.Nil(retrievedOrder.RejectedBy())

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	// Try to get an order under a number nothing was stored for
	orderNo, err := kernel.NewOrderNumber("404")
	suite.Require().NoError(err)

	retrievedOrder, err := suite.repository.GetByNumber(ctx, orderNo)

	// Verify error and result
	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// Assert no unexpected calls
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_RestoresStamps() {
	ctx := context.Background()

	// Build an order that went through approval and verification
	testOrder := suite.createTestOrder("010")
	approver := kernel.NewUUID()
	verifier := kernel.NewUUID()
	approvedAt := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	verifiedAt := time.Date(2025, 4, 3, 11, 0, 0, 0, time.UTC)

	suite.Require().NoError(testOrder.Approve(approver, "cleared for production", approvedAt))
	suite.Require().NoError(testOrder.Verify(verifier, "materials checked", verifiedAt))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Retrieve and inspect the stamp bundle
	retrievedOrder, err := suite.repository.GetByNumber(ctx, testOrder.OrderNo())
	suite.Require().NoError(err)

	stamps := retrievedOrder.Stamps()
	suite.Require().NotNil(stamps.Approval)
	suite.True(approver.IsEqual(stamps.Approval.By()))
	suite.Equal("cleared for production", stamps.Approval.Notes())
	suite.WithinDuration(approvedAt, stamps.Approval.At(), time.Second)

	suite.Require().NotNil(stamps.Verification)
	suite.True(verifier.IsEqual(stamps.Verification.By()))
	suite.Equal("materials checked", stamps.Verification.Notes())
	suite.WithinDuration(verifiedAt, stamps.Verification.At(), time.Second)

	// Steps that never happened restore as absent
	suite.Nil(stamps.Screening)
	suite.Nil(stamps.AdminRejection)
	suite.Nil(stamps.CompletionApproval)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RejectionClearsCraftsman() {
	ctx := context.Background()

	// Persist an assigned order
	assignee := suite.createTestCraftsman("GLD", "Golden Hands")
	testOrder := suite.createVerifiedOrder("020")
	suite.Require().NoError(testOrder.AssignCraftsman(assignee, nil))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// The craftsman rejects the assignment
	rejectedAt := time.Date(2025, 4, 5, 8, 0, 0, 0, time.UTC)
	suite.Require().NoError(testOrder.RejectAssignment(assignee.ID(), assignee.Code(), rejectedAt))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// The craftsman column must come back NULL, not stale
	retrievedOrder, err := suite.repository.GetByNumber(ctx, testOrder.OrderNo())
	suite.Require().NoError(err)

	suite.Equal(order.Rejected, retrievedOrder.Status())
	suite.Nil(retrievedOrder.Craftsman())
	suite.Require().NotNil(retrievedOrder.RejectedBy())
	suite.True(assignee.ID().IsEqual(*retrievedOrder.RejectedBy()))
	suite.Require().Len(retrievedOrder.Rejections(), 1)
	suite.True(assignee.ID().IsEqual(retrievedOrder.Rejections()[0].CraftsmanID()))
	suite.True(assignee.Code().IsEqual(retrievedOrder.Rejections()[0].PartnerCode()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReassignmentKeepsHistoryWithoutDuplication() {
	ctx := context.Background()

	// Persist an assigned order and run it through a rejection
	firstCraftsman := suite.createTestCraftsman("GLD", "Golden Hands")
	secondCraftsman := suite.createTestCraftsman("SLV", "Silver Works")

	testOrder := suite.createVerifiedOrder("030")
	suite.Require().NoError(testOrder.AssignCraftsman(firstCraftsman, nil))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	firstRejectedAt := time.Date(2025, 4, 5, 8, 0, 0, 0, time.UTC)
	suite.Require().NoError(testOrder.RejectAssignment(firstCraftsman.ID(), firstCraftsman.Code(), firstRejectedAt))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// Reassign to the next candidate and persist again; the existing history
	// row must be upserted, not duplicated
	suite.Require().NoError(testOrder.AssignCraftsman(secondCraftsman, nil))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.GetByNumber(ctx, testOrder.OrderNo())
	suite.Require().NoError(err)

	suite.Equal(order.Assigned, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.Craftsman())
	suite.True(secondCraftsman.ID().IsEqual(*retrievedOrder.Craftsman()))
	suite.Nil(retrievedOrder.RejectedBy())
	suite.Require().Len(retrievedOrder.Rejections(), 1)
	suite.assertRejectionCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_RejectionHistoryOrderedOldestFirst() {
	ctx := context.Background()

	// Two craftsmen reject the same order in sequence
	firstCraftsman := suite.createTestCraftsman("GLD", "Golden Hands")
	secondCraftsman := suite.createTestCraftsman("SLV", "Silver Works")

	testOrder := suite.createVerifiedOrder("031")
	suite.Require().NoError(testOrder.AssignCraftsman(firstCraftsman, nil))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.RejectAssignment(
		firstCraftsman.ID(), firstCraftsman.Code(), time.Date(2025, 4, 5, 8, 0, 0, 0, time.UTC)))
	suite.Require().NoError(testOrder.AssignCraftsman(secondCraftsman, nil))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.Require().NoError(testOrder.RejectAssignment(
		secondCraftsman.ID(), secondCraftsman.Code(), time.Date(2025, 4, 6, 9, 0, 0, 0, time.UTC)))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.GetByNumber(ctx, testOrder.OrderNo())
	suite.Require().NoError(err)

	rejections := retrievedOrder.Rejections()
	suite.Require().Len(rejections, 2)
	suite.True(firstCraftsman.ID().IsEqual(rejections[0].CraftsmanID()))
	suite.True(secondCraftsman.ID().IsEqual(rejections[1].CraftsmanID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndRejectionHistory() {
	ctx := context.Background()

	// Persist an order that accumulated a rejection
	assignee := suite.createTestCraftsman("GLD", "Golden Hands")
	testOrder := suite.createVerifiedOrder("040")
	suite.Require().NoError(testOrder.AssignCraftsman(assignee, nil))
	suite.Require().NoError(testOrder.RejectAssignment(
		assignee.ID(), assignee.Code(), time.Date(2025, 4, 5, 8, 0, 0, 0, time.UTC)))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.assertRejectionCount(1)

	// Delete the order
	suite.Require().NoError(suite.repository.Delete(ctx, testOrder))

	// Both the order and its history are gone
	suite.assertOrderCount(0)
	suite.assertRejectionCount(0)

	_, err := suite.repository.GetByNumber(ctx, testOrder.OrderNo())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderNumber_EmptyTable_ReturnsFirstNumber() {
	ctx := context.Background()

	next, err := suite.repository.NextOrderNumber(ctx)
	suite.Require().NoError(err)
	suite.Equal("001", next.String())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderNumber_DerivesSuccessorOfGreatest() {
	testCases := []struct {
		name     string
		existing []string
		expected string
	}{
		{
			name:     "successor within same width",
			existing: []string{"006", "007"},
			expected: "008",
		},
		{
			name:     "width grows when the value outgrows it",
			existing: []string{"099"},
			expected: "100",
		},
		{
			name:     "numeric order beats lexicographic order",
			existing: []string{"9", "10"},
			expected: "11",
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.setupSubtest()
			for _, orderNo := range tc.existing {
				suite.addTestOrder(ctx, orderNo)
			}

			next, err := suite.repository.NextOrderNumber(ctx)
			suite.Require().NoError(err)
			suite.Equal(tc.expected, next.String())

			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCreatorWithoutPartnerCode_FiltersByCreatorAndCode() {
	ctx := context.Background()

	creator := kernel.NewUUID()
	otherCreator := kernel.NewUUID()

	// Two uncoded orders by the creator, one coded, one by somebody else
	uncodedFirst := suite.createTestOrderBy("050", creator, nil)
	uncodedSecond := suite.createTestOrderBy("051", creator, nil)
	partnerCode, err := kernel.NewPartnerCode("GLD")
	suite.Require().NoError(err)
	coded := suite.createTestOrderBy("052", creator, &partnerCode)
	foreign := suite.createTestOrderBy("053", otherCreator, nil)

	for _, o := range []*order.Order{uncodedFirst, uncodedSecond, coded, foreign} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	// Only the creator's uncoded orders come back
	orders, err := suite.repository.GetAllByCreatorWithoutPartnerCode(ctx, creator)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 2)
	returned := map[string]bool{}
	for _, o := range orders {
		returned[o.OrderNo().String()] = true
		suite.Nil(o.PartnerCode())
		suite.True(creator.IsEqual(o.CreatedBy()))
	}
	suite.True(returned["050"])
	suite.True(returned["051"])

	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with zero order number",
			operation: func() error {
				_, err := suite.repository.GetByNumber(context.Background(), kernel.OrderNumber{})
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				orderNo, _ := kernel.NewOrderNumber("999")
				_, err := suite.repository.GetByNumber(context.Background(), orderNo)
				return err
			},
			expected: "not found",
		},
		{
			name: "delete non-existent order",
			operation: func() error {
				return suite.repository.Delete(context.Background(), suite.createTestOrder("998"))
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// setupSubtest prepares a clean environment for each subtest.
func (suite *OrderRepositoryIntegrationTestSuite) setupSubtest() {
	// Clean the database at the start of each subtest to ensure isolation
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_rejections, orders").Error)

	// Recreate fresh repository and tracker for each subtest
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

// addTestOrder persists a fresh pending order under the given number.
func (suite *OrderRepositoryIntegrationTestSuite) addTestOrder(ctx context.Context, orderNo string) {
	testOrder := suite.createTestOrder(orderNo)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
}

// createTestOrder creates a pending order with default details under the given number.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(orderNo string) *order.Order {
	return suite.createTestOrderBy(orderNo, kernel.NewUUID(), nil)
}

// createTestOrderBy creates a pending order with the given creator and optional partner code.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderBy(
	orderNo string, createdBy kernel.UUID, partnerCode *kernel.PartnerCode,
) *order.Order {
	number, err := kernel.NewOrderNumber(orderNo)
	suite.Require().NoError(err)

	details, err := order.NewDetails("ring", "R-102", "750", "engrave initials", 2)
	suite.Require().NoError(err)

	orderDate := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
	testOrder, err := order.NewOrder(kernel.NewUUID(), number, details, orderDate, nil, createdBy, partnerCode)
	suite.Require().NoError(err)

	return testOrder
}

// createVerifiedOrder creates an order that passed approval and verification,
// ready for assignment.
func (suite *OrderRepositoryIntegrationTestSuite) createVerifiedOrder(orderNo string) *order.Order {
	testOrder := suite.createTestOrder(orderNo)
	suite.Require().NoError(testOrder.Approve(
		kernel.NewUUID(), "cleared for production", time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)))
	suite.Require().NoError(testOrder.Verify(
		kernel.NewUUID(), "materials checked", time.Date(2025, 4, 3, 11, 0, 0, 0, time.UTC)))
	return testOrder
}

// createTestCraftsman creates a craftsman directory entry for assignment flows.
func (suite *OrderRepositoryIntegrationTestSuite) createTestCraftsman(code string, businessName string) *craftsman.Craftsman {
	partnerCode, err := kernel.NewPartnerCode(code)
	suite.Require().NoError(err)

	entry, err := craftsman.NewCraftsman(kernel.NewUUID(), partnerCode, businessName)
	suite.Require().NoError(err)

	return entry
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertRejectionCount verifies the number of rejection history rows in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertRejectionCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderRejectionDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
