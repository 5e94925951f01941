package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/api"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/tokenstore"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) GetAllStockProducts(ctx context.Context) ([]models.StockItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StockItem), args.Error(1)
}

func (m *MockInventory) GetIssuances(ctx context.Context) ([]models.StockIssuance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StockIssuance), args.Error(1)
}

func (m *MockInventory) GetMovements(ctx context.Context) ([]models.StockMovement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StockMovement), args.Error(1)
}

type MockOperators struct {
	mock.Mock
}

func (m *MockOperators) GetAllOperators(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type stubLeave struct {
	requests []models.LeaveRequest
	err      error
}

func (s stubLeave) GetRequests(context.Context) ([]models.LeaveRequest, error) {
	return s.requests, s.err
}

type stubTasks struct {
	tasks []models.Task
	err   error
}

func (s stubTasks) GetAll(context.Context) ([]models.Task, error) {
	return s.tasks, s.err
}

func price(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestInventoryOverviewAggregates(t *testing.T) {
	inventory := new(MockInventory)
	operators := new(MockOperators)

	inventory.On("GetAllStockProducts", mock.Anything).Return([]models.StockItem{
		{ID: "I1", ItemName: "ONU", Quantity: 4, UnitPrice: price("25.00")},
		{ID: "I2", ItemName: "Fiber drum", Quantity: 12, UnitPrice: price("10.50")},
	}, nil)
	inventory.On("GetIssuances", mock.Anything).Return([]models.StockIssuance{
		{ID: "S1", Status: metadata.IssuancePending, Items: []models.IssuanceLine{{ItemID: "I1", Quantity: 2, UnitPrice: price("25")}}},
		{ID: "S2", Status: metadata.IssuanceDelivered, Items: []models.IssuanceLine{{ItemID: "I2", Quantity: 1, UnitPrice: price("10.50")}}},
		{ID: "S3", Status: metadata.IssuanceCancelled, Items: []models.IssuanceLine{{ItemID: "I2", Quantity: 9, UnitPrice: price("10.50")}}},
	}, nil)
	inventory.On("GetMovements", mock.Anything).Return([]models.StockMovement{}, nil)
	operators.On("GetAllOperators", mock.Anything).Return([]models.User{{UserID: "OP1"}}, nil)

	svc := &Service{Inventory: inventory, Operators: operators}
	overview := svc.InventoryOverview(context.Background())

	assert.Empty(t, overview.Failed)
	assert.Equal(t, 2, overview.TotalItems)
	assert.Equal(t, 16, overview.TotalQuantity)
	assert.True(t, price("226.00").Equal(overview.StockValue), overview.StockValue.String())
	require.Len(t, overview.LowStock, 1)
	assert.Equal(t, "I1", overview.LowStock[0].ID)
	assert.True(t, price("60.50").Equal(overview.IssuedValue), overview.IssuedValue.String())
	assert.Equal(t, 1, overview.IssuancesByStatus[metadata.IssuancePending])
	assert.Equal(t, 1, overview.IssuancesByStatus[metadata.IssuanceCancelled])
	assert.Equal(t, 1, overview.OperatorCount)

	inventory.AssertExpectations(t)
	operators.AssertExpectations(t)
}

func TestInventoryOverviewToleratesFailures(t *testing.T) {
	inventory := new(MockInventory)
	operators := new(MockOperators)

	inventory.On("GetAllStockProducts", mock.Anything).Return(nil, api.ErrServerError)
	inventory.On("GetIssuances", mock.Anything).Return([]models.StockIssuance{{ID: "S1", Status: metadata.IssuancePending}}, nil)
	inventory.On("GetMovements", mock.Anything).Return(nil, errors.New("connection reset"))
	operators.On("GetAllOperators", mock.Anything).Return(nil, nil)

	svc := &Service{Inventory: inventory, Operators: operators}
	overview := svc.InventoryOverview(context.Background())

	assert.Equal(t, []string{"movements", "stock"}, overview.Failed)
	assert.NotNil(t, overview.Stock)
	assert.Empty(t, overview.Stock)
	assert.NotNil(t, overview.Operators)
	assert.Len(t, overview.Issuances, 1)
	assert.True(t, overview.StockValue.IsZero())
	assert.Equal(t, 0, overview.TotalItems)
}

func TestInventoryOverviewAgainstFailingBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/inventory/stock":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"down"}`))
		case "/api/operator/all":
			_, _ = w.Write([]byte(`{"success":true,"data":[{"user_id":"OP1","role":"operator"}]}`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	client := api.New(api.Config{BaseURL: server.URL + "/api", Tokens: tokenstore.NewMemoryStore("tok")})
	overview := NewService(client, nil).InventoryOverview(context.Background())

	assert.Equal(t, []models.StockItem{}, overview.Stock)
	assert.Equal(t, []string{"stock"}, overview.Failed)
	assert.Equal(t, 1, overview.OperatorCount)
	_, held := client.CurrentToken()
	assert.True(t, held)
}

func TestLeaveSummary(t *testing.T) {
	svc := &Service{Leave: stubLeave{requests: []models.LeaveRequest{
		{ID: "L1", Status: metadata.LeavePending},
		{ID: "L2", Status: metadata.LeaveApproved},
		{ID: "L3", Status: metadata.LeavePending},
	}}}

	summary := svc.LeaveSummary(context.Background())

	assert.Equal(t, 2, summary.ByStatus[metadata.LeavePending])
	assert.Len(t, summary.Pending, 2)
	assert.Empty(t, summary.Failed)

	failing := (&Service{Leave: stubLeave{err: api.ErrAccessDenied}}).LeaveSummary(context.Background())
	assert.Equal(t, []string{"leave"}, failing.Failed)
	assert.Empty(t, failing.Pending)
}

func TestTaskBoardFoldsStatusSpellings(t *testing.T) {
	svc := &Service{Tasks: stubTasks{tasks: []models.Task{
		{ID: "T1", Status: "Pending", Priority: metadata.PriorityHigh},
		{ID: "T2", Status: "pending", Priority: metadata.PriorityHigh},
		{ID: "T3", Status: "In Progress", Priority: metadata.PriorityLow},
		{ID: "T4", Status: "completed", Priority: metadata.PriorityCritical},
	}}}

	board := svc.TaskBoard(context.Background())

	assert.Equal(t, 2, board.ByStatus[metadata.TaskPending])
	assert.Equal(t, 1, board.ByStatus[metadata.TaskCompleted])
	assert.Equal(t, 2, board.ByPriority[metadata.PriorityHigh])
	assert.Equal(t, 3, board.Open)
}
