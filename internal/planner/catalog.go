package planner

import (
	"slices"
	"sort"
	"strings"
)

// ActivityTemplate is one candidate activity of a catalog.
type ActivityTemplate struct {
	Title       string
	Description string
	Duration    string
	Cost        string
	Location    string
	Themes      []Theme
	TimesOfDay  []TimeOfDay
	Budgets     []BudgetTier
}

func (a ActivityTemplate) matches(theme Theme, tod TimeOfDay, tier BudgetTier) bool {
	return slices.Contains(a.Themes, theme) && slices.Contains(a.TimesOfDay, tod) && slices.Contains(a.Budgets, tier)
}

// TieredCost is a cost label that varies with the budget tier.
type TieredCost struct {
	Budget   string
	MidRange string
	Luxury   string
}

func FlatCost(label string) TieredCost {
	return TieredCost{Budget: label, MidRange: label, Luxury: label}
}

func (c TieredCost) For(tier BudgetTier) string {
	switch tier {
	case BudgetLow:
		return c.Budget
	case BudgetLuxury:
		return c.Luxury
	default:
		return c.MidRange
	}
}

// GenericActivity is a fallback entry used when no catalog template fits a slot.
type GenericActivity struct {
	Title       string
	Description string
	Duration    string
	Cost        TieredCost
	Location    string
}

func (g GenericActivity) template(tier BudgetTier) ActivityTemplate {
	return ActivityTemplate{
		Title:       g.Title,
		Description: g.Description,
		Duration:    g.Duration,
		Cost:        g.Cost.For(tier),
		Location:    g.Location,
	}
}

// Catalog is an immutable set of activity tables. It is safe for concurrent use.
type Catalog struct {
	destinations map[string][]ActivityTemplate
	generic      []ActivityTemplate
	fallback     map[TimeOfDay][]GenericActivity
}

// NewCatalog copies the given tables. Destination keys are matched case-insensitively.
// A time of day without fallback entries borrows the afternoon table.
func NewCatalog(destinations map[string][]ActivityTemplate, generic []ActivityTemplate, fallback map[TimeOfDay][]GenericActivity) *Catalog {
	c := &Catalog{
		destinations: make(map[string][]ActivityTemplate, len(destinations)),
		generic:      cloneTemplates(generic),
		fallback:     make(map[TimeOfDay][]GenericActivity, len(fallback)),
	}
	for name, entries := range destinations {
		c.destinations[normalizeName(name)] = cloneTemplates(entries)
	}
	for tod, entries := range fallback {
		c.fallback[tod] = append([]GenericActivity(nil), entries...)
	}
	return c
}

// Resolve returns the templates for a destination, or the generic catalog when it is unknown.
func (c *Catalog) Resolve(destination string) []ActivityTemplate {
	entries, _ := c.Lookup(destination)
	return entries
}

// Lookup is Resolve that also reports whether the destination had its own table.
func (c *Catalog) Lookup(destination string) ([]ActivityTemplate, bool) {
	if entries, ok := c.destinations[normalizeName(destination)]; ok {
		return entries, true
	}
	return c.generic, false
}

func (c *Catalog) Destinations() []string {
	names := make([]string, 0, len(c.destinations))
	for name := range c.destinations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) genericFor(tod TimeOfDay, slotIndex int, tier BudgetTier) ActivityTemplate {
	entries, ok := c.fallback[tod]
	if !ok || len(entries) == 0 {
		entries = c.fallback[Afternoon]
	}
	if len(entries) == 0 {
		return ActivityTemplate{Title: "Free Time", Description: "Explore at your own pace", Duration: "1 hour", Cost: "Free"}
	}
	if slotIndex < 0 {
		slotIndex = -slotIndex
	}
	return entries[slotIndex%len(entries)].template(tier)
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cloneTemplates(in []ActivityTemplate) []ActivityTemplate {
	out := make([]ActivityTemplate, len(in))
	for i, t := range in {
		t.Themes = append([]Theme(nil), t.Themes...)
		t.TimesOfDay = append([]TimeOfDay(nil), t.TimesOfDay...)
		t.Budgets = append([]BudgetTier(nil), t.Budgets...)
		out[i] = t
	}
	return out
}
