package admin

import (
	"context"
	"testing"
	"time"

	"guestnest/internal/domain"
	"guestnest/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderReporter struct {
	mock.Mock
}

func (m *MockOrderReporter) List(ctx context.Context, f repository.OrderFilter) ([]repository.OrderDetails, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.OrderDetails), args.Error(1)
}

func (m *MockOrderReporter) Export(ctx context.Context, f repository.OrderFilter) ([]repository.ExportRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ExportRow), args.Error(1)
}

func (m *MockOrderReporter) SummarizeCommissions(ctx context.Context, partnerID *int64, start, end *time.Time) ([]repository.CommissionRow, error) {
	args := m.Called(ctx, partnerID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CommissionRow), args.Error(1)
}

func (m *MockOrderReporter) ListCompletedBetween(ctx context.Context, partnerID *int64, start, end time.Time) ([]repository.CompletedOrderRow, error) {
	args := m.Called(ctx, partnerID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CompletedOrderRow), args.Error(1)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) List(ctx context.Context, role string) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserReader) CountByRole(ctx context.Context) ([]repository.RoleCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.RoleCount), args.Error(1)
}

func (m *MockUserReader) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_SummarizeCommissions_TotalsMatchGroups(t *testing.T) {
	mockOrders := new(MockOrderReporter)

	rows := []repository.CommissionRow{
		{PartnerID: 1, PartnerName: "Algarve Eats", ServiceType: "food_delivery", TotalOrders: 4, TotalRevenue: 140, TotalCommission: 16.8},
		{PartnerID: 2, PartnerName: "Faro Rides", ServiceType: "taxi", TotalOrders: 6, TotalRevenue: 0, TotalCommission: 15},
		{PartnerID: 3, PartnerName: "Ria Formosa Tours", ServiceType: "excursion", TotalOrders: 2, TotalRevenue: 120, TotalCommission: 18},
	}
	mockOrders.On("SummarizeCommissions", mock.Anything, (*int64)(nil), (*time.Time)(nil), (*time.Time)(nil)).Return(rows, nil)

	service := NewService(mockOrders, new(MockUserReader))

	summary, err := service.SummarizeCommissions(context.Background(), nil, nil, nil)

	assert.NoError(t, err)
	assert.Len(t, summary.Summary, 3)
	assert.Equal(t, int64(12), summary.Totals.TotalOrders)
	assert.InDelta(t, 260.0, summary.Totals.TotalRevenue, 0.001)
	assert.InDelta(t, 49.8, summary.Totals.TotalCommission, 0.001)
}

func TestService_SummarizeCommissions_Empty(t *testing.T) {
	mockOrders := new(MockOrderReporter)
	mockOrders.On("SummarizeCommissions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]repository.CommissionRow{}, nil)

	service := NewService(mockOrders, new(MockUserReader))

	summary, err := service.SummarizeCommissions(context.Background(), nil, nil, nil)

	assert.NoError(t, err)
	assert.Empty(t, summary.Summary)
	assert.Equal(t, int64(0), summary.Totals.TotalOrders)
	assert.Equal(t, 0.0, summary.Totals.TotalCommission)
}

func TestService_MonthlyCommissions_GroupsByPartnerAndMonth(t *testing.T) {
	mockOrders := new(MockOrderReporter)

	jan5 := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)
	jan20 := time.Date(2026, time.January, 20, 9, 0, 0, 0, time.UTC)
	mar2 := time.Date(2026, time.March, 2, 18, 0, 0, 0, time.UTC)
	price1, price2 := 35.0, 60.0

	rows := []repository.CompletedOrderRow{
		{PartnerID: 1, PartnerName: "Algarve Eats", CompletedAt: &jan5, Price: &price1, CommissionAmount: 4.2},
		{PartnerID: 1, PartnerName: "Algarve Eats", CompletedAt: &jan20, Price: &price2, CommissionAmount: 7.2},
		{PartnerID: 2, PartnerName: "Faro Rides", CompletedAt: &jan20, CommissionAmount: 2.5},
		{PartnerID: 1, PartnerName: "Algarve Eats", CompletedAt: &mar2, Price: &price1, CommissionAmount: 4.2},
	}
	mockOrders.On("ListCompletedBetween", mock.Anything, (*int64)(nil),
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)).Return(rows, nil)

	service := NewService(mockOrders, new(MockUserReader))

	monthly, err := service.MonthlyCommissions(context.Background(), nil, 2026)

	assert.NoError(t, err)
	assert.Len(t, monthly, 3)

	// sorted by month, then partner name
	assert.Equal(t, "Algarve Eats", monthly[0].PartnerName)
	assert.Equal(t, 1, monthly[0].Month)
	assert.Equal(t, int64(2), monthly[0].OrderCount)
	assert.InDelta(t, 95.0, monthly[0].Revenue, 0.001)
	assert.InDelta(t, 11.4, monthly[0].Commission, 0.001)

	assert.Equal(t, "Faro Rides", monthly[1].PartnerName)
	assert.Equal(t, 1, monthly[1].Month)
	assert.Equal(t, 0.0, monthly[1].Revenue)
	assert.InDelta(t, 2.5, monthly[1].Commission, 0.001)

	assert.Equal(t, 3, monthly[2].Month)
	assert.Equal(t, int64(1), monthly[2].OrderCount)
}

func TestService_ExportOrders_Metadata(t *testing.T) {
	mockOrders := new(MockOrderReporter)

	rows := []repository.ExportRow{{ID: 1}, {ID: 2}}
	mockOrders.On("Export", mock.Anything, mock.Anything).Return(rows, nil)

	service := NewService(mockOrders, new(MockUserReader))

	export, err := service.ExportOrders(context.Background(), repository.OrderFilter{})

	assert.NoError(t, err)
	assert.Equal(t, 2, export.TotalRecords)
	assert.Len(t, export.Data, 2)
	assert.WithinDuration(t, time.Now().UTC(), export.ExportDate, 5*time.Second)
}

func TestService_ListUsers_Statistics(t *testing.T) {
	mockOrders := new(MockOrderReporter)
	mockUsers := new(MockUserReader)

	mockUsers.On("List", mock.Anything, "guest").Return([]domain.User{{ID: 3, Role: domain.RoleGuest}}, nil)
	mockUsers.On("Count", mock.Anything).Return(int64(6), nil)
	mockUsers.On("CountByRole", mock.Anything).Return([]repository.RoleCount{
		{Role: "admin", Count: 1},
		{Role: "host", Count: 1},
		{Role: "guest", Count: 3},
		{Role: "partner", Count: 1},
	}, nil)

	service := NewService(mockOrders, mockUsers)

	list, err := service.ListUsers(context.Background(), "guest")

	assert.NoError(t, err)
	assert.Len(t, list.Users, 1)
	// statistics cover the whole table regardless of the role filter
	assert.Equal(t, int64(6), list.Statistics.Total)
	assert.Equal(t, int64(3), list.Statistics.Guest)
	assert.Equal(t, int64(1), list.Statistics.Host)
}
