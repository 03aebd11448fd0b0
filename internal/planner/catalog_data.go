package planner

var (
	allTimes = []TimeOfDay{Morning, Afternoon, Evening}
	allTiers = []BudgetTier{BudgetLow, BudgetMid, BudgetLuxury}
)

// DefaultCatalog builds the built-in destination tables.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultDestinations(), defaultGeneric(), defaultFallback())
}

func defaultDestinations() map[string][]ActivityTemplate {
	return map[string][]ActivityTemplate{
		"paris": {
			{
				Title:       "Eiffel Tower Visit",
				Description: "Iconic landmark with breathtaking city views",
				Duration:    "2 hours",
				Cost:        "$15-25",
				Location:    "Champ de Mars",
				Themes:      []Theme{ThemeCulture, ThemePhotography},
				TimesOfDay:  allTimes,
				Budgets:     allTiers,
			},
			{
				Title:       "Louvre Museum",
				Description: "World's largest art museum with famous masterpieces",
				Duration:    "3 hours",
				Cost:        "$20-30",
				Location:    "1st Arrondissement",
				Themes:      []Theme{ThemeCulture, ThemeArt},
				TimesOfDay:  []TimeOfDay{Morning, Afternoon},
				Budgets:     []BudgetTier{BudgetMid, BudgetLuxury},
			},
			{
				Title:       "Seine River Cruise",
				Description: "Romantic boat ride along the historic Seine River",
				Duration:    "1.5 hours",
				Cost:        "$15-35",
				Location:    "Seine River",
				Themes:      []Theme{ThemeRelaxation, ThemePhotography},
				TimesOfDay:  []TimeOfDay{Afternoon, Evening},
				Budgets:     allTiers,
			},
		},
		"tokyo": {
			{
				Title:       "Senso-ji Temple",
				Description: "Ancient Buddhist temple in traditional Asakusa district",
				Duration:    "2 hours",
				Cost:        "Free",
				Location:    "Asakusa",
				Themes:      []Theme{ThemeCulture, ThemePhotography},
				TimesOfDay:  []TimeOfDay{Morning, Afternoon},
				Budgets:     allTiers,
			},
			{
				Title:       "Tsukiji Fish Market",
				Description: "Famous fish market with fresh sushi and seafood",
				Duration:    "2 hours",
				Cost:        "$20-40",
				Location:    "Tsukiji",
				Themes:      []Theme{ThemeFood, ThemeCulture},
				TimesOfDay:  []TimeOfDay{Morning},
				Budgets:     allTiers,
			},
			{
				Title:       "Shibuya Crossing",
				Description: "World's busiest pedestrian crossing",
				Duration:    "1 hour",
				Cost:        "Free",
				Location:    "Shibuya",
				Themes:      []Theme{ThemeCulture, ThemePhotography},
				TimesOfDay:  []TimeOfDay{Afternoon, Evening},
				Budgets:     allTiers,
			},
		},
		"new york": {
			{
				Title:       "Central Park Walk",
				Description: "Peaceful stroll through Manhattan's green oasis",
				Duration:    "2 hours",
				Cost:        "Free",
				Location:    "Central Park",
				Themes:      []Theme{ThemeNature, ThemeRelaxation},
				TimesOfDay:  []TimeOfDay{Morning, Afternoon},
				Budgets:     allTiers,
			},
			{
				Title:       "Broadway Show",
				Description: "World-class theater performance in the Theater District",
				Duration:    "3 hours",
				Cost:        "$75-200",
				Location:    "Theater District",
				Themes:      []Theme{ThemeCulture, ThemeEntertain},
				TimesOfDay:  []TimeOfDay{Evening},
				Budgets:     []BudgetTier{BudgetMid, BudgetLuxury},
			},
			{
				Title:       "Brooklyn Bridge Walk",
				Description: "Iconic bridge with stunning city skyline views",
				Duration:    "1.5 hours",
				Cost:        "Free",
				Location:    "Brooklyn Bridge",
				Themes:      []Theme{ThemePhotography, ThemeCulture},
				TimesOfDay:  allTimes,
				Budgets:     allTiers,
			},
		},
	}
}

func defaultGeneric() []ActivityTemplate {
	return []ActivityTemplate{
		{
			Title:       "City Walking Tour",
			Description: "Explore the main attractions and learn about local history",
			Duration:    "3 hours",
			Cost:        "$15-25",
			Location:    "City Center",
			Themes:      []Theme{ThemeCulture, ThemePhotography},
			TimesOfDay:  []TimeOfDay{Morning, Afternoon},
			Budgets:     allTiers,
		},
		{
			Title:       "Local Market Visit",
			Description: "Experience authentic local culture and try regional specialties",
			Duration:    "2 hours",
			Cost:        "$10-30",
			Location:    "Market District",
			Themes:      []Theme{ThemeFood, ThemeCulture},
			TimesOfDay:  []TimeOfDay{Morning, Afternoon},
			Budgets:     allTiers,
		},
		{
			Title:       "Scenic Viewpoint",
			Description: "Visit the best viewpoint for panoramic city or landscape views",
			Duration:    "1.5 hours",
			Cost:        "Free-$10",
			Location:    "Scenic Area",
			Themes:      []Theme{ThemePhotography, ThemeNature},
			TimesOfDay:  []TimeOfDay{Afternoon, Evening},
			Budgets:     allTiers,
		},
	}
}

func defaultFallback() map[TimeOfDay][]GenericActivity {
	return map[TimeOfDay][]GenericActivity{
		Morning: {
			{
				Title:       "Local Market Visit",
				Description: "Explore the vibrant local market and experience authentic culture",
				Duration:    "2 hours",
				Cost:        TieredCost{Budget: "Free", MidRange: "$10-20", Luxury: "$10-20"},
				Location:    "City Center",
			},
			{
				Title:       "Walking Tour",
				Description: "Discover the city's history and hidden gems on foot",
				Duration:    "2.5 hours",
				Cost:        TieredCost{Budget: "$5-10", MidRange: "$15-25", Luxury: "$15-25"},
				Location:    "Historic District",
			},
		},
		Afternoon: {
			{
				Title:       "Museum Visit",
				Description: "Immerse yourself in local art and history",
				Duration:    "2 hours",
				Cost:        TieredCost{Budget: "$5-15", MidRange: "$20-30", Luxury: "$20-30"},
				Location:    "Cultural District",
			},
			{
				Title:       "Local Restaurant",
				Description: "Enjoy authentic local cuisine at a recommended restaurant",
				Duration:    "1.5 hours",
				Cost:        TieredCost{Budget: "$10-20", MidRange: "$25-40", Luxury: "$50-80"},
				Location:    "Restaurant District",
			},
		},
		Evening: {
			{
				Title:       "Sunset Viewing",
				Description: "Watch the sunset from a scenic viewpoint",
				Duration:    "1 hour",
				Cost:        FlatCost("Free"),
				Location:    "Scenic Overlook",
			},
			{
				Title:       "Local Entertainment",
				Description: "Experience local nightlife and entertainment",
				Duration:    "2-3 hours",
				Cost:        TieredCost{Budget: "$10-20", MidRange: "$30-50", Luxury: "$30-50"},
				Location:    "Entertainment District",
			},
		},
	}
}
