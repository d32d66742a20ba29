package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"service/internal/entities"
	"service/internal/service/tracking"
	retrierconfig "service/pkg/retrier"
	"service/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "maps-provider"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// retryableStatusError сигнализирует ретраеру, что ответ провайдера временный.
type retryableStatusError struct {
	statusCode int
}

func (e *retryableStatusError) Error() string {
	return fmt.Sprintf("maps provider returned status %d", e.statusCode)
}

type MapsGateway struct {
	client  httpDoer
	baseURL string
	apiKey  string
	retrier retrier
}

func New(client httpDoer, baseURL string, apiKey string) *MapsGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &MapsGateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// PlanRoute запрашивает маршрут у провайдера направлений. Путь провайдера
// нормализуется во внутренний порядок координат.
func (g *MapsGateway) PlanRoute(ctx context.Context, origin, destination entities.Coordinate, waypoints []entities.Coordinate) (*entities.RouteInfo, error) {
	requestURL := g.directionsURL(origin, destination, waypoints)

	var directions directionsResponse
	err := g.executeWithMetrics(ctx, "Directions", func(ctx context.Context) error {
		return g.fetchDirections(ctx, requestURL, &directions)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway maps, plan route: %w: %w", tracking.ErrRouteProvider, err)
	}

	if len(directions.Routes) == 0 {
		return nil, fmt.Errorf("gateway maps, plan route: %w: empty response", tracking.ErrRouteProvider)
	}

	route := toDomain(&directions.Routes[0])
	if len(route.Path) == 0 {
		// провайдер без геометрии, достраиваем путь по концам
		route.Path = append([]entities.Coordinate{origin}, waypoints...)
		route.Path = append(route.Path, destination)
	}
	return route, nil
}

func (g *MapsGateway) fetchDirections(ctx context.Context, requestURL string, out *directionsResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("call provider: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return &retryableStatusError{statusCode: resp.StatusCode}
		}
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (g *MapsGateway) directionsURL(origin, destination entities.Coordinate, waypoints []entities.Coordinate) string {
	query := url.Values{}
	query.Set("origin", formatCoordinate(origin))
	query.Set("destination", formatCoordinate(destination))
	if len(waypoints) > 0 {
		parts := make([]string, 0, len(waypoints))
		for _, wp := range waypoints {
			parts = append(parts, formatCoordinate(wp))
		}
		query.Set("waypoints", strings.Join(parts, "|"))
	}
	if g.apiKey != "" {
		query.Set("key", g.apiKey)
	}
	query.Set("departure_time", "now")

	return g.baseURL + "/directions?" + query.Encode()
}

func formatCoordinate(c entities.Coordinate) string {
	return strconv.FormatFloat(c.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lng, 'f', 6, 64)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *retryableStatusError
	if errors.As(err, &statusErr) {
		return true
	}

	// сетевые ошибки транспорта
	return strings.Contains(err.Error(), "call provider")
}

func (g *MapsGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}
	var statusErr *retryableStatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.statusCode)
	}
	return "error"
}
