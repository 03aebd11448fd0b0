package planner

var defaultThemes = []Theme{ThemeCulture, ThemeFood, ThemeNature}

// SelectTheme picks the focus of a day. The first day is always arrival, even on a one-day trip;
// the last day of a longer trip is departure; the days in between cycle through the interests in
// the order given, or through culture, food and nature when there are none.
func SelectTheme(dayIndex, totalDays int, interests []string) Theme {
	if dayIndex <= 1 {
		return ThemeArrival
	}
	if dayIndex == totalDays {
		return ThemeDeparture
	}

	pos := dayIndex - 2
	if len(interests) > 0 {
		return Theme(interests[pos%len(interests)])
	}
	return defaultThemes[pos%len(defaultThemes)]
}
