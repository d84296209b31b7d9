package weather

import (
	"context"
	"errors"
	"testing"

	"guestnest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CurrentWeather(ctx context.Context, lat, lon float64) (*ProviderWeather, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProviderWeather), args.Error(1)
}

func (m *MockProvider) UVIndex(ctx context.Context, lat, lon float64) (float64, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(float64), args.Error(1)
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

func coordProperty() *domain.Property {
	lat, lon := 37.0179, -7.9304
	return &domain.Property{ID: 1, Latitude: &lat, Longitude: &lon}
}

func sunny() *ProviderWeather {
	var w ProviderWeather
	w.Main.Temp = 28.5
	w.Main.FeelsLike = 30.1
	w.Main.Humidity = 55
	w.Main.Pressure = 1015
	w.Weather = []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}{{Description: "clear sky", Icon: "01d"}}
	w.Wind.Speed = 4.2
	w.Wind.Deg = 270
	return &w
}

func TestService_GetWeather_FullReport(t *testing.T) {
	provider := new(MockProvider)
	properties := new(MockPropertyReader)

	properties.On("GetByID", mock.Anything, int64(1)).Return(coordProperty(), nil)
	provider.On("CurrentWeather", mock.Anything, 37.0179, -7.9304).Return(sunny(), nil)
	provider.On("UVIndex", mock.Anything, 37.0179, -7.9304).Return(7.3, nil)

	service := NewService(provider, properties, nil, zap.NewNop())

	report, err := service.GetWeather(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 28.5, report.Temperature)
	assert.Equal(t, "clear sky", report.Description)
	assert.Equal(t, 4.2, report.WindSpeed)
	assert.NotNil(t, report.UVIndex)
	assert.Equal(t, 7.3, *report.UVIndex)
}

func TestService_GetWeather_UVFailureDegrades(t *testing.T) {
	provider := new(MockProvider)
	properties := new(MockPropertyReader)

	properties.On("GetByID", mock.Anything, int64(1)).Return(coordProperty(), nil)
	provider.On("CurrentWeather", mock.Anything, mock.Anything, mock.Anything).Return(sunny(), nil)
	provider.On("UVIndex", mock.Anything, mock.Anything, mock.Anything).Return(0.0, errors.New("uv endpoint down"))

	service := NewService(provider, properties, nil, zap.NewNop())

	report, err := service.GetWeather(context.Background(), 1)

	// the UV field is dropped; the rest of the report is still served
	assert.NoError(t, err)
	assert.Nil(t, report.UVIndex)
	assert.Equal(t, 28.5, report.Temperature)
}

func TestService_GetWeather_NoCoordinates(t *testing.T) {
	provider := new(MockProvider)
	properties := new(MockPropertyReader)

	properties.On("GetByID", mock.Anything, int64(2)).Return(&domain.Property{ID: 2}, nil)

	service := NewService(provider, properties, nil, zap.NewNop())

	_, err := service.GetWeather(context.Background(), 2)

	assert.ErrorIs(t, err, ErrNoCoordinates)
	provider.AssertNotCalled(t, "CurrentWeather")
}

func TestService_GetWeather_PropertyMissing(t *testing.T) {
	provider := new(MockProvider)
	properties := new(MockPropertyReader)

	properties.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(provider, properties, nil, zap.NewNop())

	_, err := service.GetWeather(context.Background(), 404)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestService_GetWeather_ProviderError(t *testing.T) {
	provider := new(MockProvider)
	properties := new(MockPropertyReader)

	properties.On("GetByID", mock.Anything, int64(1)).Return(coordProperty(), nil)
	provider.On("CurrentWeather", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("provider down"))

	service := NewService(provider, properties, nil, zap.NewNop())

	_, err := service.GetWeather(context.Background(), 1)

	assert.Error(t, err)
	provider.AssertNotCalled(t, "UVIndex")
}
