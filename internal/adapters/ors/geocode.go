package ors

import (
	"context"
	"encoding/json"
	"net/http"
	"route-directions/internal/domain"
	"route-directions/internal/platform/obs"
	"route-directions/internal/ports"

	"github.com/pkg/errors"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves address with a single GET to /geocode/search.
//
// Failures are tagged: ports.ErrNoResults, *ports.InvalidCoordinatesError (which still
// carries the resolved pair), *ports.StatusError and *ports.MalformedResponseError.
func (c *Client) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, c.logger, "ors.Geocode")(&err)

	endpoint := c.baseURL + "/geocode/search"

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Coordinates{}, errors.Wrap(err, "geocode request")
	}

	q := req.URL.Query()
	q.Set("api_key", c.apiKey)
	q.Set("text", address)
	req.URL.RawQuery = q.Encode()

	resp, err := c.do(req, endpointGeocode)
	if err != nil {
		return domain.Coordinates{}, errors.Wrap(err, "execute geocode request")
	}

	if resp.status != http.StatusOK {
		return domain.Coordinates{}, &ports.StatusError{Code: resp.status, Body: string(resp.body)}
	}

	var decoded geocodeResponse
	if err := json.Unmarshal(resp.body, &decoded); err != nil {
		return domain.Coordinates{}, &ports.MalformedResponseError{Endpoint: endpointGeocode, Err: err}
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, errors.Wrapf(ports.ErrNoResults, "address %q", address)
	}

	coords, err := domain.CoordinatesFromList(decoded.Features[0].Geometry.Coordinates)
	if err != nil {
		return domain.Coordinates{}, &ports.MalformedResponseError{Endpoint: endpointGeocode, Err: err}
	}

	if !coords.Valid() {
		return domain.Coordinates{}, &ports.InvalidCoordinatesError{Address: address, Coordinates: coords}
	}

	return coords, nil
}
