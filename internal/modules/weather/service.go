package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"guestnest/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrNoCoordinates = errors.New("property coordinates not set")

const cacheTTL = 10 * time.Minute

type PropertyReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// Report is the weather payload served to clients. UVIndex is nil when the
// UV endpoint failed; the rest of the report is still served.
type Report struct {
	Temperature   float64  `json:"temperature"`
	FeelsLike     float64  `json:"feels_like"`
	Humidity      int      `json:"humidity"`
	Pressure      int      `json:"pressure"`
	Description   string   `json:"description"`
	Icon          string   `json:"icon"`
	WindSpeed     float64  `json:"wind_speed"`
	WindDirection float64  `json:"wind_direction"`
	UVIndex       *float64 `json:"uv_index"`
	Timestamp     string   `json:"timestamp"`
}

// Service resolves property coordinates and queries the weather provider.
// cache may be nil; lookups then always hit the provider.
type Service struct {
	provider   Provider
	properties PropertyReader
	cache      *redis.Client
	logger     *zap.Logger
}

func NewService(provider Provider, properties PropertyReader, cache *redis.Client, logger *zap.Logger) *Service {
	return &Service{provider: provider, properties: properties, cache: cache, logger: logger}
}

func (s *Service) GetWeather(ctx context.Context, propertyID int64) (*Report, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p.Latitude == nil || p.Longitude == nil {
		return nil, ErrNoCoordinates
	}

	key := fmt.Sprintf("weather:property:%d", propertyID)
	if cached := s.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	current, err := s.provider.CurrentWeather(ctx, *p.Latitude, *p.Longitude)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Temperature:   current.Main.Temp,
		FeelsLike:     current.Main.FeelsLike,
		Humidity:      current.Main.Humidity,
		Pressure:      current.Main.Pressure,
		WindSpeed:     current.Wind.Speed,
		WindDirection: current.Wind.Deg,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	if len(current.Weather) > 0 {
		report.Description = current.Weather[0].Description
		report.Icon = current.Weather[0].Icon
	}

	// UV index is an optional enrichment: a provider failure drops the
	// field instead of failing the whole report.
	if uv, err := s.provider.UVIndex(ctx, *p.Latitude, *p.Longitude); err == nil {
		report.UVIndex = &uv
	} else {
		s.logger.Debug("uv index not available", zap.Int64("property_id", propertyID), zap.Error(err))
	}

	s.toCache(ctx, key, report)
	return report, nil
}

func (s *Service) fromCache(ctx context.Context, key string) *Report {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var report Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil
	}
	return &report
}

func (s *Service) toCache(ctx context.Context, key string, report *Report) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		s.logger.Debug("weather cache write failed", zap.Error(err))
	}
}
