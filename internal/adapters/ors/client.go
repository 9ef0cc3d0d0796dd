package ors

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.openrouteservice.org"
	DefaultProfile = "driving-car"

	endpointGeocode    = "geocode"
	endpointDirections = "directions"
)

// Metrics receives one observation per upstream call. code is 0 when the
// request failed before a response arrived.
type Metrics interface {
	ObserveORSRequest(endpoint string, code int, d time.Duration)
}

// Client talks to the OpenRouteService geocoding and directions APIs.
//
// It implements both ports.Geocoder and ports.DirectionsProvider. Calls are
// made exactly once: there is no retry and no caching.
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
	logger  *zap.Logger
	metrics Metrics
}

type Option func(*Client)

// WithBaseURL points the client at another ORS deployment.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithProfile selects the directions profile, e.g. "cycling-regular".
func WithProfile(p string) Option {
	return func(c *Client) { c.profile = p }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.session.Timeout = d }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.session = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithMetrics(m Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	c := &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		profile: DefaultProfile,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		return nil, errors.New("ORS base url is empty")
	}
	if c.profile == "" {
		return nil, errors.New("ORS profile is empty")
	}

	return c, nil
}
