package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/apex/log"

	"retail-analytics/models"
	"retail-analytics/store"
)

// AnalyticsService owns a record store and memoizes the aggregations
// derived from it. All derived views are computed at most once per store
// snapshot; there is no invalidation other than constructing a new
// service over a new store.
type AnalyticsService struct {
	store *store.Store

	mu               sync.Mutex
	retailerProfiles []models.RetailerProfile
	filterOptions    *models.FilterOptions
	productCache     []models.ProductAnalytics
	inflight         chan struct{}
	onReady          func(products int)

	productComputations int64
}

// NewAnalyticsService creates a service over an immutable record store.
func NewAnalyticsService(st *store.Store) *AnalyticsService {
	return &AnalyticsService{store: st}
}

// SetReadyCallback registers a hook invoked once the full product
// aggregation finishes and is cached. Must be set before the first
// analytics request.
func (s *AnalyticsService) SetReadyCallback(fn func(products int)) {
	s.mu.Lock()
	s.onReady = fn
	s.mu.Unlock()
}

// GetRetailerProfiles returns the per-retailer analytical views,
// computing them on first call.
func (s *AnalyticsService) GetRetailerProfiles() []models.RetailerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.retailerProfiles == nil {
		start := time.Now()
		s.retailerProfiles = ComputeRetailerProfiles(s.store.Records())
		log.Infof("Computed %d retailer profiles in %v", len(s.retailerProfiles), time.Since(start))
	}
	return s.retailerProfiles
}

// GetFilterOptions returns the distinct value sets, computing them on
// first call.
func (s *AnalyticsService) GetFilterOptions() models.FilterOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filterOptions == nil {
		opts := ComputeFilterOptions(s.store.Records())
		s.filterOptions = &opts
	}
	return *s.filterOptions
}

// GetProductAnalytics returns the full per-product analytical views,
// waiting for the shared computation if one is needed. Concurrent
// callers before the first result is cached share a single in-flight
// computation; once cached, calls return the same slice immediately.
func (s *AnalyticsService) GetProductAnalytics(ctx context.Context) ([]models.ProductAnalytics, error) {
	s.mu.Lock()
	if s.productCache != nil {
		cached := s.productCache
		s.mu.Unlock()
		return cached, nil
	}
	done := s.startComputationLocked()
	s.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		// The computation keeps running and populates the cache for
		// future callers.
		return nil, ctx.Err()
	}

	s.mu.Lock()
	cached := s.productCache
	s.mu.Unlock()
	return cached, nil
}

// GetProductAnalyticsLite is the cheap read path: it returns the cached
// full result when available, otherwise movement timelines only, and
// kicks the full computation off in the background without blocking.
// The second return reports whether the data is partial.
func (s *AnalyticsService) GetProductAnalyticsLite() ([]models.ProductAnalytics, bool) {
	s.mu.Lock()
	if s.productCache != nil {
		cached := s.productCache
		s.mu.Unlock()
		return cached, false
	}
	s.startComputationLocked()
	s.mu.Unlock()

	records := s.store.Records()
	lite := make(map[string]*models.ProductAnalytics)
	var seen []string
	for _, rec := range records {
		p, ok := lite[rec.ProductName]
		if !ok {
			p = &models.ProductAnalytics{Name: rec.ProductName}
			lite[rec.ProductName] = p
			seen = append(seen, rec.ProductName)
		}
		p.MovementTimeline = append(p.MovementTimeline, models.MovementEntry{
			Date:     rec.OrderDate,
			Quantity: rec.Quantity,
			Retailer: rec.RetailerName,
			Value:    rec.Value,
		})
	}

	out := make([]models.ProductAnalytics, 0, len(seen))
	for _, name := range seen {
		out = append(out, *lite[name])
	}
	return out, true
}

// Warm starts the product aggregation in the background so the cache is
// populated before the first full request arrives.
func (s *AnalyticsService) Warm() {
	s.mu.Lock()
	if s.productCache == nil {
		s.startComputationLocked()
	}
	s.mu.Unlock()
}

// ExportData returns the raw record sequence in store order. Actual
// file serialization is performed by out-of-scope collaborators.
func (s *AnalyticsService) ExportData() []models.OrderLineRecord {
	return s.store.Records()
}

// Stats reports the record count, whether the product analytics cache
// is populated, and how many full computations have run.
func (s *AnalyticsService) Stats() (records int, cached bool, computations int64) {
	s.mu.Lock()
	cached = s.productCache != nil
	s.mu.Unlock()
	return s.store.Len(), cached, atomic.LoadInt64(&s.productComputations)
}

// startComputationLocked starts the full product aggregation unless one
// is already in flight. The in-flight channel doubles as the
// de-duplication token: it is created once and closed on completion.
// Caller must hold s.mu.
func (s *AnalyticsService) startComputationLocked() chan struct{} {
	if s.inflight != nil {
		return s.inflight
	}
	done := make(chan struct{})
	s.inflight = done

	go func() {
		atomic.AddInt64(&s.productComputations, 1)
		start := time.Now()
		result := ComputeProductAnalytics(s.store.Records())

		s.mu.Lock()
		s.productCache = result
		onReady := s.onReady
		s.mu.Unlock()
		close(done)

		log.Infof("Computed analytics for %d products in %v", len(result), time.Since(start))
		if onReady != nil {
			onReady(len(result))
		}
	}()
	return done
}
