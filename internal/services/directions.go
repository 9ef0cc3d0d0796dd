package services

import (
	"context"
	"fmt"
	"route-directions/internal/domain"
	"route-directions/internal/platform/obs"
	"route-directions/internal/ports"
	"route-directions/internal/render"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const geocodeFailedMessage = "Unable to geocode one or both addresses. Please try again.\n"

// ValidationObserver is notified of every validation outcome.
type ValidationObserver interface {
	ObserveValidation(err error)
}

// Planner runs the geocode -> directions -> render pipeline for one address pair.
// It keeps no state between calls.
type Planner struct {
	Geocoder   ports.Geocoder
	Directions ports.DirectionsProvider
	Logger     *zap.Logger
	Observer   ValidationObserver
}

func NewPlanner(geocoder ports.Geocoder, directions ports.DirectionsProvider, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{Geocoder: geocoder, Directions: directions, Logger: logger}
}

// ValidationMessage returns the user-facing text for a validation error.
func ValidationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrSameAddress):
		return "Error: Origin and destination addresses are the same."
	case errors.Is(err, domain.ErrInvalidCharacters):
		return "Error: Origin and destination addresses should contain only alphanumeric characters and spaces."
	default:
		return "Error: " + err.Error()
	}
}

// Run validates the pair, then renders the header and the directions.
//
// A validation error is rendered and returned before any network call;
// domain.IsValidationError identifies it. Upstream failures with a known shape
// are rendered and Run returns nil. Transport failures and undecodable bodies
// are returned.
func (p *Planner) Run(ctx context.Context, origin, destination string, r *render.Renderer) error {
	err := domain.ValidateAddresses(origin, destination)
	if p.Observer != nil {
		p.Observer.ObserveValidation(err)
	}
	if err != nil {
		r.Error(ValidationMessage(err))
		return err
	}

	r.Header(origin, destination)
	return p.Plan(ctx, origin, destination, r)
}

// Plan geocodes both addresses and renders the first route segment between
// them. Input is expected to be validated.
//
// When either address fails to geocode the directions call is skipped.
func (p *Planner) Plan(ctx context.Context, origin, destination string, r *render.Renderer) (err error) {
	defer obs.Time(ctx, p.Logger, "planner.Plan")(&err)

	originCoords, originOK, err := p.geocode(ctx, origin, r)
	if err != nil {
		return err
	}

	destCoords, destOK, err := p.geocode(ctx, destination, r)
	if err != nil {
		return err
	}

	if !originOK || !destOK {
		r.Error(geocodeFailedMessage)
		return r.Err()
	}

	seg, err := p.Directions.Route(ctx, originCoords, destCoords)

	var status *ports.StatusError
	switch {
	case err == nil:
		r.Segment(origin, destination, seg)
	case errors.Is(err, ports.ErrNoRoutes):
		r.Error("Error: No routes found in the response.")
	case errors.Is(err, ports.ErrNoSegments):
		r.Error("Error: No segments found in the response.")
	case errors.As(err, &status):
		r.Error(statusMessage(status))
	default:
		return errors.Wrap(err, "plan: route")
	}

	if err != nil {
		p.Logger.Info("directions unavailable", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
	}

	return r.Err()
}

// geocode resolves one address and renders its debug or error line.
// ok is false for the rendered, tagged failures; err is set only for
// failures that abort the pipeline.
func (p *Planner) geocode(ctx context.Context, address string, r *render.Renderer) (_ domain.Coordinates, ok bool, err error) {
	coords, err := p.Geocoder.Geocode(ctx, address)

	var (
		invalid *ports.InvalidCoordinatesError
		status  *ports.StatusError
	)
	switch {
	case err == nil:
		r.Paragraph(coordinatesMessage(address, coords))
		return coords, true, nil
	case errors.As(err, &invalid):
		r.Paragraph(coordinatesMessage(address, invalid.Coordinates))
		r.Error(fmt.Sprintf("Error: Invalid coordinates for address '%s'", address))
	case errors.Is(err, ports.ErrNoResults):
		r.Error(fmt.Sprintf("Error: No results found for address '%s'", address))
	case errors.As(err, &status):
		r.Error(statusMessage(status))
	default:
		return domain.Coordinates{}, false, errors.Wrapf(err, "plan: geocode %q", address)
	}

	p.Logger.Info("geocoding failed",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.String("address", address),
		zap.Error(err),
	)
	return domain.Coordinates{}, false, nil
}

func coordinatesMessage(address string, c domain.Coordinates) string {
	return fmt.Sprintf("Geocoded coordinates for '%s': %s", address, c)
}

func statusMessage(e *ports.StatusError) string {
	return fmt.Sprintf("Error: %d - %s", e.Code, e.Body)
}
