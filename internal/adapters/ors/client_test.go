package ors

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"route-directions/internal/domain"
	"route-directions/internal/ports"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedMetrics struct {
	mu    sync.Mutex
	calls []string
	codes []int
}

func (m *recordedMetrics) ObserveORSRequest(endpoint string, code int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, endpoint)
	m.codes = append(m.codes, code)
}

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-key", append([]Option{WithBaseURL(srv.URL)}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)

	_, err = NewClient("k", WithProfile(""))
	assert.Error(t, err)
}

func TestGeocodeRequest(t *testing.T) {
	var got *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		_, _ = io.WriteString(w, `{"features":[{"geometry":{"coordinates":[2.35,48.85]}},{"geometry":{"coordinates":[0,0]}}]}`)
	})

	coords, err := c.Geocode(context.Background(), "Paris Nord")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lon: 2.35, Lat: 48.85}, coords)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/geocode/search", got.URL.Path)
	assert.Equal(t, "test-key", got.URL.Query().Get("api_key"))
	assert.Equal(t, "Paris Nord", got.URL.Query().Get("text"))
	assert.Empty(t, got.Header.Get("Authorization"))
}

func TestGeocodeNoResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"features":[]}`)
	})

	_, err := c.Geocode(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, ports.ErrNoResults)
}

func TestGeocodeOutOfBounds(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"features":[{"geometry":{"coordinates":[200,10]}}]}`)
	})

	_, err := c.Geocode(context.Background(), "Atlantis")

	var invalid *ports.InvalidCoordinatesError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "Atlantis", invalid.Address)
	assert.Equal(t, domain.Coordinates{Lon: 200, Lat: 10}, invalid.Coordinates)
}

func TestGeocodeStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":"Access to this API has been disallowed"}`)
	})

	_, err := c.Geocode(context.Background(), "Paris")

	var se *ports.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusForbidden, se.Code)
	assert.Equal(t, `{"error":"Access to this API has been disallowed"}`, se.Body)
}

func TestGeocodeMalformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>oops</html>`)
	})

	_, err := c.Geocode(context.Background(), "Paris")

	var me *ports.MalformedResponseError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, endpointGeocode, me.Endpoint)
}

func TestGeocodeTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	m := &recordedMetrics{}
	c, err := NewClient("k", WithBaseURL(srv.URL), WithMetrics(m))
	require.NoError(t, err)

	_, err = c.Geocode(context.Background(), "Paris")
	require.Error(t, err)
	assert.Equal(t, []int{0}, m.codes)
}

func TestRouteRequest(t *testing.T) {
	var (
		got  *http.Request
		body directionsRequest
	)
	m := &recordedMetrics{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"routes":[{"segments":[{"duration":36000,"distance":1050000.5,
			"steps":[{"instruction":"Head north","distance":120.4},{"instruction":"Arrive"}]}]}]}`)
	}, WithMetrics(m))

	seg, err := c.Route(context.Background(),
		domain.Coordinates{Lon: 2.35, Lat: 48.85},
		domain.Coordinates{Lon: 13.4, Lat: 52.52},
	)
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/v2/directions/driving-car", got.URL.Path)
	assert.Equal(t, "test-key", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, [][]float64{{2.35, 48.85}, {13.4, 52.52}}, body.Coordinates)

	assert.Equal(t, domain.Segment{
		Duration: "36000",
		Distance: "1050000.5",
		HasSteps: true,
		Steps: []domain.Step{
			{Instruction: "Head north", Distance: "120.4"},
			{Instruction: "Arrive", Distance: "N/A"},
		},
	}, seg)
	assert.Equal(t, []string{endpointDirections}, m.calls)
}

func TestRouteProfile(t *testing.T) {
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = io.WriteString(w, `{"routes":[{"segments":[{}]}]}`)
	}, WithProfile("cycling-regular"))

	seg, err := c.Route(context.Background(), domain.Coordinates{}, domain.Coordinates{Lon: 1, Lat: 1})
	require.NoError(t, err)
	assert.Equal(t, "/v2/directions/cycling-regular", path)
	assert.Equal(t, domain.Segment{Duration: "N/A", Distance: "N/A"}, seg)
	assert.False(t, seg.HasSteps)
}

func TestRouteFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "no routes",
			status: http.StatusOK,
			body:   `{"routes":[]}`,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, ports.ErrNoRoutes) },
		},
		{
			name:   "routes missing",
			status: http.StatusOK,
			body:   `{}`,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, ports.ErrNoRoutes) },
		},
		{
			name:   "no segments",
			status: http.StatusOK,
			body:   `{"routes":[{"segments":[]}]}`,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, ports.ErrNoSegments) },
		},
		{
			name:   "status error",
			status: http.StatusBadRequest,
			body:   `{"error":{"code":2003,"message":"Parameter 'coordinates' has incorrect value"}}`,
			check: func(t *testing.T, err error) {
				var se *ports.StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, http.StatusBadRequest, se.Code)
			},
		},
		{
			name:   "non json error body",
			status: http.StatusBadGateway,
			body:   `<html>Bad Gateway</html>`,
			check: func(t *testing.T, err error) {
				var me *ports.MalformedResponseError
				require.True(t, errors.As(err, &me))
				assert.Equal(t, endpointDirections, me.Endpoint)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.Route(context.Background(), domain.Coordinates{}, domain.Coordinates{Lon: 1, Lat: 1})
			tt.check(t, err)
		})
	}
}
