package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	itineraries   *prometheus.CounterVec
	selections    *prometheus.CounterVec
	savedTripOps  *prometheus.CounterVec
	requestsTotal *prometheus.CounterVec
}

// New registers the service collectors on a private registry so tests can build as many as they need.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		itineraries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travelai",
			Subsystem: "planner",
			Name:      "itineraries_total",
			Help:      "Itineraries generated, by budget tier and whether the destination had its own catalog.",
		}, []string{"budget", "catalog"}),
		selections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travelai",
			Subsystem: "planner",
			Name:      "slot_selections_total",
			Help:      "Filled time slots, by time of day and source (catalog or fallback).",
		}, []string{"time_of_day", "source"}),
		savedTripOps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travelai",
			Subsystem: "saved_trips",
			Name:      "operations_total",
			Help:      "Saved trip store operations, by operation and outcome.",
		}, []string{"op", "outcome"}),
		requestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travelai",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"route", "status"}),
	}
}

func (m *Metrics) ItineraryGenerated(budget string, ownCatalog bool) {
	catalog := "generic"
	if ownCatalog {
		catalog = "destination"
	}
	m.itineraries.WithLabelValues(budget, catalog).Inc()
}

func (m *Metrics) SlotFilled(timeOfDay string, fromCatalog bool) {
	source := "fallback"
	if fromCatalog {
		source = "catalog"
	}
	m.selections.WithLabelValues(timeOfDay, source).Inc()
}

func (m *Metrics) SavedTripOp(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.savedTripOps.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) RequestServed(route, status string) {
	m.requestsTotal.WithLabelValues(route, status).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
