package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"route-directions/internal/domain"
	"route-directions/internal/platform/obs"
	"route-directions/internal/ports"

	"github.com/pkg/errors"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Segments []segmentJSON `json:"segments"`
	} `json:"routes"`
}

type segmentJSON struct {
	Duration *json.Number `json:"duration"`
	Distance *json.Number `json:"distance"`
	Steps    *[]stepJSON  `json:"steps"`
}

type stepJSON struct {
	Instruction *string      `json:"instruction"`
	Distance    *json.Number `json:"distance"`
}

// Route posts both coordinates to /v2/directions/{profile} and returns the
// first segment of the first route.
//
// The body is decoded before the status code is inspected, so a non-JSON
// body is reported as *ports.MalformedResponseError whatever the status.
func (c *Client) Route(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ domain.Segment, err error) {
	defer obs.Time(ctx, c.logger, "ors.Route")(&err)

	endpoint := fmt.Sprintf("%s/v2/directions/%s", c.baseURL, c.profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{origin.CoordsToList(), destination.CoordsToList()},
	})
	if err != nil {
		return domain.Segment{}, errors.Wrap(err, "marshal directions request")
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.Segment{}, errors.Wrap(err, "directions request")
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.do(req, endpointDirections)
	if err != nil {
		return domain.Segment{}, errors.Wrap(err, "execute directions request")
	}

	var decoded directionsResponse
	if err := json.Unmarshal(resp.body, &decoded); err != nil {
		return domain.Segment{}, &ports.MalformedResponseError{Endpoint: endpointDirections, Err: err}
	}

	if resp.status != http.StatusOK {
		return domain.Segment{}, &ports.StatusError{Code: resp.status, Body: string(resp.body)}
	}

	if len(decoded.Routes) == 0 {
		return domain.Segment{}, ports.ErrNoRoutes
	}

	segments := decoded.Routes[0].Segments
	if len(segments) == 0 {
		return domain.Segment{}, ports.ErrNoSegments
	}

	return segments[0].toDomain(), nil
}

func (s segmentJSON) toDomain() domain.Segment {
	out := domain.Segment{
		Duration: numberOrNA(s.Duration),
		Distance: numberOrNA(s.Distance),
	}

	if s.Steps == nil {
		return out
	}

	out.HasSteps = true
	out.Steps = make([]domain.Step, 0, len(*s.Steps))
	for _, st := range *s.Steps {
		instruction := domain.NotAvailable
		if st.Instruction != nil {
			instruction = *st.Instruction
		}

		out.Steps = append(out.Steps, domain.Step{
			Instruction: instruction,
			Distance:    numberOrNA(st.Distance),
		})
	}

	return out
}

func numberOrNA(n *json.Number) string {
	if n == nil {
		return domain.NotAvailable
	}
	return n.String()
}
