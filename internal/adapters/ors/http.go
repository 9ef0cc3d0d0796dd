package ors

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type response struct {
	status int
	body   []byte
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	url string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do executes req once and reads the whole body. Status codes are left to
// the caller; only transport and read failures are returned as errors.
func (c *Client) do(req *http.Request, endpoint string) (*response, error) {
	start := time.Now()

	resp, err := c.session.Do(req)
	if err != nil {
		c.observe(endpoint, 0, start)
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	c.observe(endpoint, resp.StatusCode, start)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	c.logger.Debug("ors response",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(b)),
	)

	return &response{status: resp.StatusCode, body: b}, nil
}

func (c *Client) observe(endpoint string, code int, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveORSRequest(endpoint, code, time.Since(start))
	}
}
