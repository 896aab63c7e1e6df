package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"Relief_Link/internal/apperror"
	"Relief_Link/internal/repository/redis"
)

// FeedCache is the TTL cache in front of the third-party feeds. Satisfied
// by redis.FeedCacheRepository.
type FeedCache interface {
	Get(ctx context.Context, kind, key string) ([]byte, error)
	Set(ctx context.Context, kind, key string, payload []byte, ttl time.Duration) error
}

type FeedConfig struct {
	WeatherAPIURL string
	QuakeFeedURL  string
	GeocodeAPIURL string
}

// FeedService proxies the weather, earthquake, and geocoding feeds the
// browser used to poll directly, so API keys stay server-side and hot
// queries are served from cache.
type FeedService struct {
	cache  FeedCache
	client *http.Client
	cfg    FeedConfig
}

func NewFeedService(cache FeedCache, cfg FeedConfig) *FeedService {
	return &FeedService{
		cache:  cache,
		client: &http.Client{Timeout: 10 * time.Second},
		cfg:    cfg,
	}
}

// Weather returns current conditions plus the 5-day forecast for a
// coordinate pair, cached per coordinate.
func (s *FeedService) Weather(ctx context.Context, lat, lon string) ([]byte, error) {
	if _, err := strconv.ParseFloat(lat, 64); err != nil {
		return nil, apperror.Validation("lat must be a number")
	}
	if _, err := strconv.ParseFloat(lon, 64); err != nil {
		return nil, apperror.Validation("lon must be a number")
	}

	u := fmt.Sprintf("%s?latitude=%s&longitude=%s&current_weather=true&daily=temperature_2m_max,temperature_2m_min,weathercode&forecast_days=5&timezone=auto",
		s.cfg.WeatherAPIURL, lat, lon)
	return s.fetch(ctx, "weather", lat+","+lon, u, redis.WeatherTTL)
}

// Earthquakes returns the recent-quake GeoJSON summary feed.
func (s *FeedService) Earthquakes(ctx context.Context) ([]byte, error) {
	return s.fetch(ctx, "quakes", "all", s.cfg.QuakeFeedURL, redis.QuakeTTL)
}

// Geocode forward-geocodes a free-form place query.
func (s *FeedService) Geocode(ctx context.Context, query string) ([]byte, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.Validation("q is required")
	}

	u := fmt.Sprintf("%s?q=%s&format=json&limit=5", s.cfg.GeocodeAPIURL, url.QueryEscape(query))
	return s.fetch(ctx, "geocode", strings.ToLower(query), u, redis.GeocodeTTL)
}

func (s *FeedService) fetch(ctx context.Context, kind, key, rawURL string, ttl time.Duration) ([]byte, error) {
	if payload, err := s.cache.Get(ctx, kind, key); err == nil {
		return payload, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s feed: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s feed: upstream status %d", kind, resp.StatusCode)
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s feed: %w", kind, err)
	}

	// A cache write failure only costs the next caller a refetch.
	_ = s.cache.Set(ctx, kind, key, payload, ttl)
	return payload, nil
}
