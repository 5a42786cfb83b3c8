package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

// RouteMetrics aggregates metrics for a specific route
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsSummary is the payload served by the metrics endpoint
type MetricsSummary struct {
	WindowStart   time.Time      `json:"windowStart"`
	TotalRequests int64          `json:"totalRequests"`
	TotalErrors   int64          `json:"totalErrors"`
	Routes        []RouteMetrics `json:"routes"`
}

// MetricsCollector collects and aggregates request metrics per route
type MetricsCollector struct {
	mu            sync.RWMutex
	routeMetrics  map[string]*RouteMetrics
	windowStart   time.Time
	totalRequests int64
	totalErrors   int64
}

// NewMetricsCollector creates an empty collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		routeMetrics: make(map[string]*RouteMetrics),
		windowStart:  time.Now(),
	}
}

// Record adds one finished request. Status codes of 400 and above count as errors.
func (m *MetricsCollector) Record(method, path string, status int, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := method + " " + path
	rm, ok := m.routeMetrics[key]
	if !ok {
		rm = &RouteMetrics{Method: method, Path: path, MinTime: d}
		m.routeMetrics[key] = rm
	}
	rm.Count++
	rm.TotalTime += d
	rm.AvgTime = rm.TotalTime / time.Duration(rm.Count)
	if d < rm.MinTime {
		rm.MinTime = d
	}
	if d > rm.MaxTime {
		rm.MaxTime = d
	}
	rm.LastRequest = time.Now()

	m.totalRequests++
	if status >= http.StatusBadRequest {
		rm.ErrorCount++
		m.totalErrors++
	}
}

// Summary returns a copy of the collected metrics sorted by route
func (m *MetricsCollector) Summary() MetricsSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	routes := make([]RouteMetrics, 0, len(m.routeMetrics))
	for _, rm := range m.routeMetrics {
		routes = append(routes, *rm)
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	return MetricsSummary{
		WindowStart:   m.windowStart,
		TotalRequests: m.totalRequests,
		TotalErrors:   m.totalErrors,
		Routes:        routes,
	}
}

// MetricsMiddleware tracks request timing per mux route template
func (m *MetricsCollector) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				path = tmpl
			}
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.Record(r.Method, path, rec.statusCode, time.Since(start))
	})
}

// MetricsHandler serves the collected metrics as json
func (m *MetricsCollector) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(m.Summary())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
