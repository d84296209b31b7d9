package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Provider fetches current conditions and UV index for a coordinate pair.
type Provider interface {
	CurrentWeather(ctx context.Context, lat, lon float64) (*ProviderWeather, error)
	UVIndex(ctx context.Context, lat, lon float64) (float64, error)
}

// ProviderWeather is the subset of the OpenWeatherMap current-weather
// response this service reads.
type ProviderWeather struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64) (*ProviderWeather, error) {
	var out ProviderWeather
	if err := c.get(ctx, "/weather", lat, lon, url.Values{"units": {"metric"}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UVIndex(ctx context.Context, lat, lon float64) (float64, error) {
	var out struct {
		Value float64 `json:"value"`
	}
	if err := c.get(ctx, "/uvi", lat, lon, nil, &out); err != nil {
		return 0, err
	}
	return out.Value, nil
}

func (c *Client) get(ctx context.Context, path string, lat, lon float64, extra url.Values, out any) error {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("appid", c.apiKey)
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("weather provider returned %d: %s", resp.StatusCode, body)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
