package weather

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// ErrSuperseded is returned when a newer forecast request for the same trip
// was issued while this one was in flight. The stale result is discarded;
// callers should simply drop the response.
var ErrSuperseded = errors.New("forecast request superseded")

// Fetcher is the forecast source the service depends on.
// *Client satisfies it; tests inject a stub.
type Fetcher interface {
	FetchForecast(ctx context.Context, destination string) ([]Day, error)
}

// requestKey identifies one forecast request. A trip whose destination or
// dates change produces a new key, which is what makes the old in-flight
// request stale.
type requestKey struct {
	destination string
	start, end  string
}

// handle tracks one in-flight fetch so a newer request can cancel it.
type handle struct {
	key    requestKey
	gen    uint64
	cancel context.CancelFunc
}

// Service derives the forecast report for a trip: fetch up to 16 days for the
// destination, filter to the trip's date window, and run the advisory rules.
//
// At most one fetch per trip is in flight: issuing a new request cancels and
// invalidates any pending one for the same trip, and a result arriving for an
// invalidated handle is discarded rather than delivered.
type Service struct {
	fetcher Fetcher

	mu       sync.Mutex
	gen      uint64
	inflight map[string]*handle // keyed by trip ID
}

// NewService constructs a Service backed by the provided Fetcher.
func NewService(f Fetcher) *Service {
	return &Service{fetcher: f, inflight: make(map[string]*handle)}
}

// TripForecast fetches and derives the weather report for a trip.
//
// Returns ErrLocationNotFound / ErrForecastUnavailable from the fetch step,
// ErrSuperseded if a newer request for the same trip overtook this one, and
// an empty (but fully shaped) report when the forecast horizon does not cover
// any of the trip's dates.
func (s *Service) TripForecast(ctx context.Context, trip domain.Trip) (Report, error) {
	key := requestKey{destination: trip.Destination, start: trip.StartDate, end: trip.EndDate}

	fetchCtx, h := s.begin(ctx, trip.ID, key)
	defer h.cancel()

	days, err := s.fetcher.FetchForecast(fetchCtx, trip.Destination)

	if !s.finish(trip.ID, h) {
		return Report{}, ErrSuperseded
	}
	if err != nil {
		return Report{}, fmt.Errorf("weather.Service.TripForecast: %w", err)
	}

	return BuildReport(filterToWindow(days, trip.StartDate, trip.EndDate)), nil
}

// begin registers a new in-flight request for the trip, cancelling any prior
// one. The returned context is cancelled either way when the request ends.
func (s *Service) begin(ctx context.Context, tripID string, key requestKey) (context.Context, *handle) {
	fetchCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.inflight[tripID]; ok {
		prev.cancel()
	}
	s.gen++
	h := &handle{key: key, gen: s.gen, cancel: cancel}
	s.inflight[tripID] = h
	return fetchCtx, h
}

// finish reports whether h is still the current request for the trip, and
// deregisters it if so. A false return means a newer request superseded h.
func (s *Service) finish(tripID string, h *handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.inflight[tripID]
	if !ok || cur.gen != h.gen {
		return false
	}
	delete(s.inflight, tripID)
	return true
}

// filterToWindow keeps only the forecast days that fall inside the trip's
// inclusive date range, in trip-date order. Days beyond the forecast horizon
// are simply absent from the result.
func filterToWindow(days []Day, start, end string) []Day {
	byDate := make(map[string]Day, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	var window []Day
	for _, date := range domain.DatesBetween(start, end) {
		if d, ok := byDate[date]; ok {
			window = append(window, d)
		}
	}
	return window
}
