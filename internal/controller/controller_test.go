package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/evyataryagoni/iptracker/internal/geo"
	"github.com/evyataryagoni/iptracker/internal/input"
	"github.com/evyataryagoni/iptracker/internal/logger"
	"github.com/evyataryagoni/iptracker/internal/mapview"
	"github.com/evyataryagoni/iptracker/internal/metrics"
	"github.com/evyataryagoni/iptracker/internal/models"
	"github.com/evyataryagoni/iptracker/internal/state"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var brisbane = models.LocationRecord{
	IP:          "1.1.1.1",
	ISP:         "Cloudflare, Inc.",
	City:        "South Brisbane",
	Region:      "Queensland",
	Coordinates: models.Coordinates{Lat: -27.47, Lng: 153.02},
	PostalCode:  "4101",
	Timezone:    "+10:00",
}

var mountainView = models.LocationRecord{
	IP:          "142.250.72.14",
	ISP:         "Google LLC",
	City:        "Mountain View",
	Region:      "California",
	Coordinates: models.Coordinates{Lat: 37.38, Lng: -122.08},
	PostalCode:  "94035",
	Timezone:    "-07:00",
}

type fixture struct {
	state  *state.AppState
	client *geo.MockClient
	engine *mapview.MockEngine
	ctrl   *Controller
}

func newFixture(m *metrics.Metrics) *fixture {
	st := state.New()
	client := geo.NewMockClient()
	client.Records[""] = mountainView
	client.Records["1.1.1.1"] = brisbane
	client.Records["google.com"] = mountainView

	engine := mapview.NewMockEngine()
	view := mapview.NewView(engine, nil, logger.Nop())

	return &fixture{
		state:  st,
		client: client,
		engine: engine,
		ctrl:   New(st, client, view, m, logger.Nop()),
	}
}

// TestController_Startup tests the bare lookup at process start
func TestController_Startup(t *testing.T) {
	f := newFixture(nil)

	f.ctrl.Startup(context.Background())

	if len(f.client.Calls) != 1 || f.client.Calls[0].Mode != geo.Bare {
		t.Fatalf("expected one bare lookup, got %+v", f.client.Calls)
	}
	if diff := cmp.Diff(mountainView, f.state.Record()); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	if f.engine.Marker != mountainView.Coordinates {
		t.Errorf("expected marker at %+v, got %+v", mountainView.Coordinates, f.engine.Marker)
	}
}

// TestController_LoadSample tests the mock lookup
func TestController_LoadSample(t *testing.T) {
	f := newFixture(nil)
	f.ctrl.Search(context.Background(), "1.1.1.1")

	f.ctrl.LoadSample(context.Background())

	if diff := cmp.Diff(models.DefaultRecord(), f.state.Record()); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	if f.engine.Marker != models.DefaultRecord().Coordinates {
		t.Errorf("expected marker at sample coordinates, got %+v", f.engine.Marker)
	}
	if f.state.Status() != "" {
		t.Errorf("expected empty status, got '%s'", f.state.Status())
	}
}

// TestController_Search_Routing tests IP vs domain lookups and trimming
func TestController_Search_Routing(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantMode  geo.Mode
		wantValue string
		want      models.LocationRecord
	}{
		{"ip", "1.1.1.1", geo.ByIP, "1.1.1.1", brisbane},
		{"domain", "google.com", geo.ByDomain, "google.com", mountainView},
		{"trimmed", "  1.1.1.1\t", geo.ByIP, "1.1.1.1", brisbane},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(nil)

			f.ctrl.Search(context.Background(), tt.raw)

			if len(f.client.Calls) != 1 {
				t.Fatalf("expected 1 lookup, got %d", len(f.client.Calls))
			}
			call := f.client.Calls[0]
			if call.Mode != tt.wantMode || call.Value != tt.wantValue {
				t.Errorf("expected %s(%s), got %s(%s)", tt.wantMode, tt.wantValue, call.Mode, call.Value)
			}
			if diff := cmp.Diff(tt.want, f.state.Record()); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
			if f.state.Status() != "" {
				t.Errorf("expected empty status, got '%s'", f.state.Status())
			}
		})
	}
}

// TestController_Search_ValidationFailure tests that no lookup is issued
func TestController_Search_ValidationFailure(t *testing.T) {
	tests := []struct {
		raw     string
		wantMsg string
	}{
		{"", "Please enter something"},
		{"   ", "Please enter something"},
		{"exa mple.com", "Remove any spaces"},
		{"a.b", "Input seems too short or too long"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.raw), func(t *testing.T) {
			f := newFixture(nil)
			f.ctrl.LoadSample(context.Background())
			callsBefore := f.client.CallCount()

			f.ctrl.Search(context.Background(), tt.raw)

			if f.client.CallCount() != callsBefore {
				t.Error("expected no lookup for invalid input")
			}
			if f.state.Status() != tt.wantMsg {
				t.Errorf("expected status '%s', got '%s'", tt.wantMsg, f.state.Status())
			}
			if diff := cmp.Diff(models.DefaultRecord(), f.state.Record()); diff != "" {
				t.Errorf("record changed (-want +got):\n%s", diff)
			}
		})
	}
}

// TestController_Search_LookupFailure tests that failures only touch the status
func TestController_Search_LookupFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"provider message", &geo.HTTPError{StatusCode: 422, Message: "Input correct domain."}, "Input correct domain."},
		{"generic http", &geo.HTTPError{StatusCode: 500}, "HTTP error, status 500"},
		{"network", fmt.Errorf("%w: dial tcp: refused", geo.ErrNetwork), StatusNetworkError},
		{"incomplete", geo.ErrIncomplete, StatusIncomplete},
		{"unknown", errors.New("boom"), StatusNetworkError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(nil)
			f.ctrl.Search(context.Background(), "1.1.1.1")
			f.client.Errors["bad.example"] = tt.err

			f.ctrl.Search(context.Background(), "bad.example")

			if f.state.Status() != tt.wantMsg {
				t.Errorf("expected status '%s', got '%s'", tt.wantMsg, f.state.Status())
			}
			if diff := cmp.Diff(brisbane, f.state.Record()); diff != "" {
				t.Errorf("record changed on failure (-want +got):\n%s", diff)
			}
			if f.engine.Marker != brisbane.Coordinates {
				t.Errorf("expected marker to stay at %+v, got %+v", brisbane.Coordinates, f.engine.Marker)
			}
		})
	}
}

// TestController_Search_SuccessClearsStatus tests recovery after an error
func TestController_Search_SuccessClearsStatus(t *testing.T) {
	f := newFixture(nil)
	f.ctrl.Search(context.Background(), "no")
	if f.state.Status() == "" {
		t.Fatal("expected a status after invalid input")
	}

	f.ctrl.Search(context.Background(), "1.1.1.1")

	if f.state.Status() != "" {
		t.Errorf("expected status cleared, got '%s'", f.state.Status())
	}
}

// TestController_Search_ClearsStatusBeforeLookup tests that an old error is gone while the lookup is in flight
func TestController_Search_ClearsStatusBeforeLookup(t *testing.T) {
	client := &gatedClient{
		gates:   map[string]chan struct{}{"1.1.1.1": make(chan struct{})},
		records: map[string]models.LocationRecord{"1.1.1.1": brisbane},
	}
	st := state.New()
	ctrl := New(st, client, mapview.NewView(mapview.NewMockEngine(), nil, logger.Nop()), nil, logger.Nop())

	ctrl.Search(context.Background(), "no")
	if st.Status() == "" {
		t.Fatal("expected a status after invalid input")
	}

	done := make(chan struct{})
	client.started.Add(1)
	go func() {
		defer close(done)
		ctrl.Search(context.Background(), "1.1.1.1")
	}()
	client.started.Wait()

	if st.Status() != "" {
		t.Errorf("expected status cleared while the lookup is pending, got '%s'", st.Status())
	}
	if st.Record() != models.DefaultRecord() {
		t.Errorf("expected the record unchanged while pending, got %+v", st.Record())
	}

	close(client.gates["1.1.1.1"])
	<-done

	if st.Record() != brisbane {
		t.Errorf("expected %+v after settle, got %+v", brisbane, st.Record())
	}
}

// TestController_MapCreatedOnce tests that repeated lookups reuse the map
func TestController_MapCreatedOnce(t *testing.T) {
	f := newFixture(nil)

	f.ctrl.Startup(context.Background())
	f.ctrl.Search(context.Background(), "1.1.1.1")
	f.ctrl.LoadSample(context.Background())

	inits, sets, pans := f.engine.Calls()
	if inits != 1 {
		t.Errorf("expected one view creation, got %d", inits)
	}
	if sets != 3 || pans != 2 {
		t.Errorf("expected 3 marker updates and 2 pans, got %d and %d", sets, pans)
	}
	if f.engine.Markers != 1 {
		t.Errorf("expected one marker, got %d", f.engine.Markers)
	}
}

// gatedClient blocks each lookup until its gate is released
type gatedClient struct {
	gates   map[string]chan struct{}
	records map[string]models.LocationRecord
	started sync.WaitGroup
}

func (g *gatedClient) Lookup(ctx context.Context, mode geo.Mode, value string) (models.LocationRecord, error) {
	g.started.Done()
	<-g.gates[value]
	return g.records[value], nil
}

// TestController_LatestLookupWins tests that an older lookup settling last is dropped
func TestController_LatestLookupWins(t *testing.T) {
	client := &gatedClient{
		gates: map[string]chan struct{}{
			"1.1.1.1":    make(chan struct{}),
			"google.com": make(chan struct{}),
		},
		records: map[string]models.LocationRecord{
			"1.1.1.1":    brisbane,
			"google.com": mountainView,
		},
	}
	m := metrics.New(prometheus.NewRegistry())
	st := state.New()
	engine := mapview.NewMockEngine()
	ctrl := New(st, client, mapview.NewView(engine, nil, logger.Nop()), m, logger.Nop())

	var done sync.WaitGroup
	done.Add(2)

	// older lookup
	client.started.Add(1)
	go func() {
		defer done.Done()
		ctrl.Search(context.Background(), "1.1.1.1")
	}()
	client.started.Wait()

	// newer lookup
	client.started.Add(1)
	go func() {
		defer done.Done()
		ctrl.Search(context.Background(), "google.com")
	}()
	client.started.Wait()

	// newer settles first, older settles last
	close(client.gates["google.com"])
	for st.Record() != mountainView {
		time.Sleep(time.Millisecond)
	}
	close(client.gates["1.1.1.1"])
	done.Wait()

	if diff := cmp.Diff(mountainView, st.Record()); diff != "" {
		t.Errorf("expected newest lookup to win (-want +got):\n%s", diff)
	}
	if engine.Marker != mountainView.Coordinates {
		t.Errorf("expected marker at %+v, got %+v", mountainView.Coordinates, engine.Marker)
	}
	if got := testutil.ToFloat64(m.StaleResults.WithLabelValues("success")); got != 1 {
		t.Errorf("expected 1 stale result, got %v", got)
	}
}

// TestStatusMessage tests error to status mapping
func TestStatusMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{input.ErrEmpty, "Please enter something"},
		{input.ErrSpaces, "Remove any spaces"},
		{input.ErrLength, "Input seems too short or too long"},
		{&geo.HTTPError{StatusCode: 401, Message: "Access restricted."}, "Access restricted."},
		{fmt.Errorf("wrapped: %w", &geo.HTTPError{StatusCode: 404}), "HTTP error, status 404"},
		{geo.ErrNetwork, StatusNetworkError},
		{geo.ErrIncomplete, StatusIncomplete},
	}

	for _, tt := range tests {
		if got := StatusMessage(tt.err); got != tt.want {
			t.Errorf("StatusMessage(%v) = '%s', want '%s'", tt.err, got, tt.want)
		}
	}
}
