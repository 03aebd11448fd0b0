package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepRand returns draws from a fixed script, wrapping around.
type stepRand struct {
	script []int
	calls  int
}

func (s *stepRand) IntN(n int) int {
	v := s.script[s.calls%len(s.script)]
	s.calls++
	return v % n
}

func mustRequest(t *testing.T, dest string, days int, tier BudgetTier, travelers TravelerCount, interests ...string) TripRequest {
	t.Helper()
	req, err := NewTripRequest(dest, days, tier, travelers, interests, "", nil)
	require.NoError(t, err)
	return req
}

func TestGenerate_DayCountAndSlots(t *testing.T) {
	g := NewGenerator(DefaultCatalog(), WithRand(NewSeededRand(7)))
	times := SlotTimes()

	for _, dest := range []string{"Paris", "tokyo", " New York ", "Atlantis"} {
		for days := 1; days <= 10; days++ {
			it := g.Generate(mustRequest(t, dest, days, BudgetMid, TravelersPair, "food", "art"))
			require.Len(t, it.Days, days)
			for i, d := range it.Days {
				assert.Equal(t, i+1, d.Day)
				require.LessOrEqual(t, len(d.Activities), len(times))
				for j, a := range d.Activities {
					assert.Equal(t, times[j], a.Time)
					assert.NotEmpty(t, a.Title)
				}
			}
			assert.LessOrEqual(t, len(it.Tips), MaxTips)
		}
	}
}

func TestSelectTheme(t *testing.T) {
	for n := 1; n <= 12; n++ {
		assert.Equal(t, ThemeArrival, SelectTheme(1, n, nil))
		assert.Equal(t, ThemeArrival, SelectTheme(1, n, []string{"food"}))
	}
	for n := 2; n <= 12; n++ {
		assert.Equal(t, ThemeDeparture, SelectTheme(n, n, []string{"food"}))
	}

	assert.Equal(t, ThemeCulture, SelectTheme(2, 6, nil))
	assert.Equal(t, ThemeFood, SelectTheme(3, 6, nil))
	assert.Equal(t, ThemeNature, SelectTheme(4, 6, nil))
	assert.Equal(t, ThemeCulture, SelectTheme(5, 6, nil))

	interests := []string{"photography", "art"}
	assert.Equal(t, Theme("photography"), SelectTheme(2, 9, interests))
	assert.Equal(t, Theme("art"), SelectTheme(3, 9, interests))
	assert.Equal(t, Theme("photography"), SelectTheme(4, 9, interests))
}

func TestTips(t *testing.T) {
	t.Run("mid-range couple gets general tips only", func(t *testing.T) {
		tips := Tips(nil, BudgetMid, TravelersPair)
		assert.Equal(t, generalTips, tips)
	})

	t.Run("earlier groups win on overflow", func(t *testing.T) {
		tips := Tips([]string{"photography", "food", "culture"}, BudgetLow, TravelersSolo)
		require.Len(t, tips, MaxTips)
		assert.Equal(t, "Look for free walking tours and public events", tips[0])
		assert.Equal(t, "Join group tours to meet other travelers", tips[2])
		assert.Equal(t, "Try street food for authentic local flavors", tips[4])
		assert.Equal(t, "Ask locals for restaurant recommendations", tips[5])
	})

	t.Run("group descriptor", func(t *testing.T) {
		tips := Tips(nil, BudgetLuxury, TravelersGroup)
		assert.Equal(t, "Book group discounts for attractions and tours", tips[2])
		assert.Len(t, tips, MaxTips)
	})

	t.Run("unknown interests add nothing", func(t *testing.T) {
		assert.Equal(t, Tips(nil, BudgetMid, TravelersSmall), Tips([]string{"skiing"}, BudgetMid, TravelersSmall))
	})

	t.Run("never more than six", func(t *testing.T) {
		interests := []string{"food", "culture", "photography"}
		for _, tier := range budgetTiers {
			for _, tc := range travelerCounts {
				assert.LessOrEqual(t, len(Tips(interests, tier, tc)), MaxTips)
			}
		}
	})
}

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name      string
		days      int
		tier      BudgetTier
		travelers TravelerCount
		perPerson int
		total     int
	}{
		{"budget solo", 3, BudgetLow, TravelersSolo, 120, 120},
		{"mid-range solo rounds half up", 1, BudgetMid, TravelersSolo, 113, 113},
		{"luxury small group", 2, BudgetLuxury, TravelersSmall, 600, 1920},
		{"budget large group", 4, BudgetLow, TravelersGroup, 160, 720},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateCost(tc.days, tc.tier, tc.travelers)
			assert.Equal(t, CostEstimate{PerPerson: tc.perPerson, Total: tc.total, Currency: "USD"}, got)
		})
	}

	for _, tier := range budgetTiers {
		for _, tc := range travelerCounts {
			prev := EstimateCost(0, tier, tc)
			for days := 1; days <= 30; days++ {
				cur := EstimateCost(days, tier, tc)
				assert.GreaterOrEqual(t, cur.PerPerson, prev.PerPerson)
				assert.GreaterOrEqual(t, cur.Total, prev.Total)
				prev = cur
			}
		}
	}
}

func TestGenerate_BudgetSoloScenario(t *testing.T) {
	g := NewGenerator(DefaultCatalog(), WithRand(&stepRand{script: []int{0}}))
	it := g.Generate(mustRequest(t, "Lisbon", 3, BudgetLow, TravelersSolo))

	require.Len(t, it.Days, 3)
	assert.Equal(t, ThemeArrival, it.Days[0].Theme)
	assert.Equal(t, ThemeCulture, it.Days[1].Theme)
	assert.Equal(t, ThemeDeparture, it.Days[2].Theme)
	assert.Equal(t, CostEstimate{PerPerson: 120, Total: 120, Currency: "USD"}, it.EstimatedCost)
}

func TestGenerate_Deterministic(t *testing.T) {
	req := mustRequest(t, "Tokyo", 5, BudgetMid, TravelersSmall, "culture", "food")

	a := NewGenerator(DefaultCatalog(), WithRand(NewSeededRand(42))).Generate(req)
	b := NewGenerator(DefaultCatalog(), WithRand(NewSeededRand(42))).Generate(req)
	assert.Equal(t, a, b)

	c := NewGenerator(DefaultCatalog()).Generate(req)
	for i := range a.Days {
		assert.Equal(t, a.Days[i].Theme, c.Days[i].Theme)
	}
	assert.Equal(t, a.EstimatedCost, c.EstimatedCost)
	assert.Equal(t, a.Tips, c.Tips)
}

func TestSelectActivity_ParisCandidates(t *testing.T) {
	cat := DefaultCatalog()
	entries, ok := cat.Lookup("paris")
	require.True(t, ok)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		got, fromCatalog := cat.SelectActivity(NewSeededRand(uint64(i)), entries, ThemeCulture, Morning, BudgetMid, 0)
		require.True(t, fromCatalog)
		require.Contains(t, []string{"Eiffel Tower Visit", "Louvre Museum"}, got.Title)
		seen[got.Title] = true
	}
	assert.Len(t, seen, 2)

	first, _ := cat.SelectActivity(&stepRand{script: []int{0}}, entries, ThemeCulture, Morning, BudgetMid, 0)
	second, _ := cat.SelectActivity(&stepRand{script: []int{1}}, entries, ThemeCulture, Morning, BudgetMid, 0)
	assert.Equal(t, "Eiffel Tower Visit", first.Title)
	assert.Equal(t, "Louvre Museum", second.Title)
}

func TestSelectActivity_FallbackIsPositional(t *testing.T) {
	cat := DefaultCatalog()
	rng := &stepRand{script: []int{0}}

	want := []struct {
		tod   TimeOfDay
		title string
		cost  string
	}{
		{Morning, "Local Market Visit", "Free"},
		{Morning, "Walking Tour", "$5-10"},
		{Afternoon, "Museum Visit", "$5-15"},
		{Afternoon, "Local Restaurant", "$10-20"},
		{Evening, "Sunset Viewing", "Free"},
		{Evening, "Local Entertainment", "$10-20"},
	}
	for i, w := range want {
		got, fromCatalog := cat.SelectActivity(rng, cat.Resolve("Atlantis"), ThemeArrival, w.tod, BudgetLow, i)
		assert.False(t, fromCatalog)
		assert.Equal(t, w.title, got.Title)
		assert.Equal(t, w.cost, got.Cost)
	}
	assert.Zero(t, rng.calls)

	lux, _ := cat.SelectActivity(rng, nil, ThemeArrival, Afternoon, BudgetLuxury, 3)
	assert.Equal(t, "$50-80", lux.Cost)
}

func TestGenerate_UnknownDestinationUsesGeneric(t *testing.T) {
	cat := DefaultCatalog()
	entries, ok := cat.Lookup("  ATLANTIS ")
	assert.False(t, ok)
	assert.Equal(t, cat.Resolve("somewhere else"), entries)

	var fallbacks, matches int
	g := NewGenerator(cat,
		WithRand(NewSeededRand(1)),
		WithSelectionObserver(func(_ Theme, _ TimeOfDay, fromCatalog bool) {
			if fromCatalog {
				matches++
			} else {
				fallbacks++
			}
		}),
	)
	it := g.Generate(mustRequest(t, "Atlantis", 3, BudgetLow, TravelersSolo))

	assert.Equal(t, "Atlantis", it.Destination)
	assert.Equal(t, 18, matches+fallbacks)
	// culture day: two morning and two afternoon slots match the generic catalog
	assert.Equal(t, 4, matches)
	generic := map[string]bool{"City Walking Tour": true, "Local Market Visit": true}
	for _, a := range it.Days[1].Activities[:4] {
		assert.True(t, generic[a.Title], a.Title)
	}
	assert.Equal(t, "Sunset Viewing", it.Days[1].Activities[4].Title)
}

func TestGenerate_CityRotation(t *testing.T) {
	req, err := NewTripRequest("Japan", 4, BudgetMid, TravelersPair, nil, "", []string{"Tokyo", "Kyoto"})
	require.NoError(t, err)

	it := NewGenerator(DefaultCatalog(), WithRand(NewSeededRand(3))).Generate(req)
	require.Len(t, it.Days, 4)
	assert.Equal(t, []string{"Tokyo", "Kyoto", "Tokyo", "Kyoto"}, []string{it.Days[0].City, it.Days[1].City, it.Days[2].City, it.Days[3].City})
	assert.Equal(t, "Day 2 in Kyoto", it.Days[1].Title)
	assert.Equal(t, "Explore the best of Kyoto with curated activities", it.Days[1].Snippet)

	// day 3 is a food day in Tokyo, where the fish market is the only food morning entry
	assert.Equal(t, ThemeFood, it.Days[2].Theme)
	assert.Equal(t, "Tsukiji Fish Market", it.Days[2].Activities[0].Title)
}

func TestItinerary_JSONRoundTrip(t *testing.T) {
	req, err := NewTripRequest("Paris", 3, BudgetLuxury, TravelersGroup, []string{"culture", "photography"}, "anniversary", []string{"Paris"})
	require.NoError(t, err)
	it := NewGenerator(DefaultCatalog(), WithRand(NewSeededRand(9))).Generate(req)
	it.Days[0].Activities[0].ID = "1-1"
	it.Days[0].Activities[0].Status = StatusPlanned

	raw, err := json.Marshal(it)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"estimatedCost":{"perPerson":900,"total":4050,"currency":"USD"}`)

	var back Itinerary
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, it, back)
}

func TestItinerary_CloneIsIndependent(t *testing.T) {
	it := NewGenerator(DefaultCatalog(), WithRand(NewSeededRand(2))).Generate(mustRequest(t, "Paris", 2, BudgetMid, TravelersSolo))
	cp := it.Clone()
	cp.Days[0].Activities[0].Title = "changed"
	cp.Tips[0] = "changed"

	assert.NotEqual(t, "changed", it.Days[0].Activities[0].Title)
	assert.NotEqual(t, "changed", it.Tips[0])
}
