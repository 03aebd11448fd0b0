package planner

import "fmt"

// SelectionObserver is told about every slot the generator fills. fromCatalog is false when the
// generic fallback table was used.
type SelectionObserver func(theme Theme, tod TimeOfDay, fromCatalog bool)

type Option func(*Generator)

func WithRand(rng RandSource) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

func WithSelectionObserver(fn SelectionObserver) Option {
	return func(g *Generator) {
		g.observe = fn
	}
}

// Generator assembles itineraries from a catalog. It holds no per-call state and is safe for
// concurrent use as long as its RandSource is.
type Generator struct {
	catalog *Catalog
	rng     RandSource
	observe SelectionObserver
}

func NewGenerator(catalog *Catalog, opts ...Option) *Generator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	g := &Generator{catalog: catalog, rng: DefaultRand()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Catalog() *Catalog {
	return g.catalog
}

// Generate builds one plan per day. It never fails for a request built by NewTripRequest.
func (g *Generator) Generate(req TripRequest) Itinerary {
	destEntries := g.catalog.Resolve(req.Destination)

	days := make([]DayPlan, 0, max(req.Duration, 0))
	for d := 1; d <= req.Duration; d++ {
		theme := SelectTheme(d, req.Duration, req.Interests)
		plan := DayPlan{Day: d, Theme: theme}

		entries := destEntries
		if len(req.Cities) > 0 {
			city := req.Cities[(d-1)%len(req.Cities)]
			plan.City = city
			plan.Title = fmt.Sprintf("Day %d in %s", d, city)
			plan.Snippet = fmt.Sprintf("Explore the best of %s with curated activities", city)
			if own, ok := g.catalog.Lookup(city); ok {
				entries = own
			}
		}

		plan.Activities = make([]ScheduledActivity, 0, len(slots))
		for i, slot := range slots {
			tmpl, fromCatalog := g.catalog.SelectActivity(g.rng, entries, theme, slot.TimeOfDay, req.Budget, i)
			if g.observe != nil {
				g.observe(theme, slot.TimeOfDay, fromCatalog)
			}
			plan.Activities = append(plan.Activities, scheduled(slot, tmpl))
		}
		days = append(days, plan)
	}

	return Itinerary{
		Destination:   req.Destination,
		Duration:      req.Duration,
		Days:          days,
		Tips:          Tips(req.Interests, req.Budget, req.Travelers),
		EstimatedCost: EstimateCost(len(days), req.Budget, req.Travelers),
	}
}
