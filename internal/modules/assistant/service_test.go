package assistant

import (
	"context"
	"testing"

	"guestnest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	args := m.Called(ctx, system, user, temperature, maxTokens)
	return args.String(0), args.Error(1)
}

type MockPropertyReader struct {
	mock.Mock
}

func (m *MockPropertyReader) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyReader) ListEquipment(ctx context.Context, propertyID int64) ([]domain.EquipmentInstruction, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.EquipmentInstruction), args.Error(1)
}

func (m *MockPropertyReader) ListHouseRules(ctx context.Context, propertyID int64) ([]domain.HouseRule, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.HouseRule), args.Error(1)
}

type MockLocationLister struct {
	mock.Mock
}

func (m *MockLocationLister) ListLocations(ctx context.Context, propertyID int64, locType string) ([]domain.MapLocation, error) {
	args := m.Called(ctx, propertyID, locType)
	return args.Get(0).([]domain.MapLocation), args.Error(1)
}

func TestService_Chat_Unconfigured(t *testing.T) {
	service := NewService(nil, new(MockPropertyReader), new(MockLocationLister))

	_, err := service.Chat(context.Background(), "hello", nil)

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestService_Chat_WithoutProperty(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, "What beaches are nearby?", 0.7, 500).
		Return("Praia de Faro is a good pick.", nil)

	service := NewService(completer, new(MockPropertyReader), new(MockLocationLister))

	result, err := service.Chat(context.Background(), "What beaches are nearby?", nil)

	assert.NoError(t, err)
	assert.Equal(t, "Praia de Faro is a good pick.", result.Response)
	assert.NotEmpty(t, result.Timestamp)
}

func TestService_Chat_PropertyContextInPrompt(t *testing.T) {
	completer := new(MockCompleter)
	properties := new(MockPropertyReader)
	locations := new(MockLocationLister)

	properties.On("GetByID", mock.Anything, int64(1)).Return(&domain.Property{
		ID:   1,
		Name: "Casa do Mar",
	}, nil)
	properties.On("ListEquipment", mock.Anything, int64(1)).Return([]domain.EquipmentInstruction{
		{EquipmentName: "Pool heater", Instructions: "Switch in the garage"},
	}, nil)
	properties.On("ListHouseRules", mock.Anything, int64(1)).Return([]domain.HouseRule{
		{RuleText: "No smoking indoors"},
	}, nil)
	locations.On("ListLocations", mock.Anything, int64(1), "").Return([]domain.MapLocation{
		{Name: "Praia de Faro", Type: "beach"},
	}, nil)

	var capturedSystem string
	completer.On("Complete", mock.Anything, mock.Anything, "How does the pool heater work?", 0.7, 500).
		Run(func(args mock.Arguments) {
			capturedSystem = args.String(1)
		}).
		Return("Use the switch in the garage.", nil)

	service := NewService(completer, properties, locations)

	propertyID := int64(1)
	result, err := service.Chat(context.Background(), "How does the pool heater work?", &propertyID)

	assert.NoError(t, err)
	assert.Equal(t, "Use the switch in the garage.", result.Response)
	assert.Contains(t, capturedSystem, "Casa do Mar")
	assert.Contains(t, capturedSystem, "Pool heater")
	assert.Contains(t, capturedSystem, "No smoking indoors")
	assert.Contains(t, capturedSystem, "Praia de Faro")
}

func TestService_GenerateItinerary_UsesLocations(t *testing.T) {
	completer := new(MockCompleter)
	locations := new(MockLocationLister)

	locations.On("ListLocations", mock.Anything, int64(1), "").Return([]domain.MapLocation{
		{Name: "Ria Formosa", Type: "activity", Description: "Kayak tours"},
		{Name: "O Castelo", Type: "restaurant"},
	}, nil)

	var capturedPrompt string
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, 0.8, 800).
		Run(func(args mock.Arguments) {
			capturedPrompt = args.String(2)
		}).
		Return("09:00 kayak, 13:00 lunch at O Castelo", nil)

	service := NewService(completer, new(MockPropertyReader), locations)

	result, err := service.GenerateItinerary(context.Background(), 1, "2026-09-02", "outdoors, seafood")

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-02", result.Date)
	assert.Contains(t, capturedPrompt, "2026-09-02")
	assert.Contains(t, capturedPrompt, "Ria Formosa")
	assert.Contains(t, capturedPrompt, "outdoors, seafood")
}

func TestService_GenerateItinerary_Unconfigured(t *testing.T) {
	service := NewService(nil, new(MockPropertyReader), new(MockLocationLister))

	_, err := service.GenerateItinerary(context.Background(), 1, "2026-09-02", "")

	assert.ErrorIs(t, err, ErrUnavailable)
}
