package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/evyataryagoni/iptracker/internal/geo"
	"github.com/evyataryagoni/iptracker/internal/input"
	"github.com/evyataryagoni/iptracker/internal/logger"
	"github.com/evyataryagoni/iptracker/internal/metrics"
	"github.com/evyataryagoni/iptracker/internal/models"
	"github.com/evyataryagoni/iptracker/internal/state"
	"github.com/google/uuid"
)

// Status lines for failures that carry no message of their own
const (
	StatusNetworkError = "Network error or service unavailable"
	StatusIncomplete   = "Location data unavailable for this address"
)

// Lookuper resolves an identifier to a location record
type Lookuper interface {
	Lookup(ctx context.Context, mode geo.Mode, value string) (models.LocationRecord, error)
}

// MapUpdater shows coordinates on the map
type MapUpdater interface {
	Update(lat, lng float64)
}

// Controller drives validate -> classify -> lookup -> state -> map for each
// user action. It is the only writer of the AppState.
//
// Lookup failures never leave the Controller: they end up in the status
// line and the log.
type Controller struct {
	state   *state.AppState
	client  Lookuper
	mapView MapUpdater
	metrics *metrics.Metrics
	logger  *logger.Logger

	// settleMu makes applying a result and moving the map one step
	settleMu sync.Mutex
}

// New creates a controller. m and log may be nil.
func New(st *state.AppState, client Lookuper, mapView MapUpdater, m *metrics.Metrics, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Controller{
		state:   st,
		client:  client,
		mapView: mapView,
		metrics: m,
		logger:  log.WithComponent("Controller"),
	}
}

// Startup resolves the caller's own address
func (c *Controller) Startup(ctx context.Context) {
	c.run(ctx, geo.Bare, "")
}

// LoadSample shows the built-in sample record without a network call
func (c *Controller) LoadSample(ctx context.Context) {
	c.run(ctx, geo.Mock, "")
}

// Search validates raw and, if it passes, looks it up as an IP or a domain
func (c *Controller) Search(ctx context.Context, raw string) {
	value := strings.TrimSpace(raw)

	kind, err := input.Validate(value)
	if err != nil {
		ticket := c.state.Begin()
		c.logger.Debug().Str("input", value).Str("reason", err.Error()).Msg("Search rejected")
		c.settle(ticket, "validation", func() bool { return c.state.SetStatus(ticket, err.Error()) })
		return
	}

	// stale errors must not linger while the new request is in flight
	c.state.ClearStatus()

	mode := geo.ByDomain
	if kind == input.IP {
		mode = geo.ByIP
	}
	c.run(ctx, mode, value)
}

// Snapshot returns the current record and status
func (c *Controller) Snapshot() models.Snapshot {
	return c.state.Snapshot()
}

func (c *Controller) run(ctx context.Context, mode geo.Mode, value string) {
	ticket := c.state.Begin()
	log := c.logger.WithLookup(uuid.NewString(), uint64(ticket), mode.String())

	log.Debug().Str("value", value).Msg("Lookup started")
	record, err := c.client.Lookup(ctx, mode, value)

	if err != nil {
		msg := StatusMessage(err)
		event := log.Warn()
		if errors.Is(err, geo.ErrNetwork) {
			event = log.Error()
		}
		event.Err(err).Str("value", value).Str("status", msg).Msg("Lookup failed")

		c.settle(ticket, "failure", func() bool { return c.state.SetStatus(ticket, msg) })
		return
	}

	applied := c.settle(ticket, "success", func() bool {
		if !c.state.Apply(ticket, record) {
			return false
		}
		c.mapView.Update(record.Coordinates.Lat, record.Coordinates.Lng)
		return true
	})

	if applied {
		log.Info().
			Str("ip", record.IP).
			Str("city", record.City).
			Str("region", record.Region).
			Msg("Lookup applied")
	}
}

// settle runs write under settleMu and records dropped stale results
func (c *Controller) settle(ticket state.Ticket, outcome string, write func() bool) bool {
	c.settleMu.Lock()
	defer c.settleMu.Unlock()

	if write() {
		return true
	}

	c.logger.Debug().Uint64("seq", uint64(ticket)).Str("outcome", outcome).Msg("Dropped stale result")
	if c.metrics != nil {
		c.metrics.StaleResults.WithLabelValues(outcome).Inc()
	}
	return false
}

// StatusMessage maps a lookup or validation error to the status line
func StatusMessage(err error) string {
	var httpErr *geo.HTTPError
	switch {
	case input.IsValidationError(err):
		return err.Error()
	case errors.As(err, &httpErr):
		return httpErr.Error()
	case errors.Is(err, geo.ErrIncomplete):
		return StatusIncomplete
	default:
		return StatusNetworkError
	}
}
