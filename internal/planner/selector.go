package planner

// SelectActivity picks one template for a slot. Matching entries are drawn uniformly with rng and
// reported with true. With no match the generic table for the time of day is indexed by slotIndex,
// which is deterministic, and the result is reported with false.
func (c *Catalog) SelectActivity(rng RandSource, entries []ActivityTemplate, theme Theme, tod TimeOfDay, tier BudgetTier, slotIndex int) (ActivityTemplate, bool) {
	candidates := make([]ActivityTemplate, 0, len(entries))
	for _, e := range entries {
		if e.matches(theme, tod, tier) {
			candidates = append(candidates, e)
		}
	}

	if len(candidates) == 0 {
		return c.genericFor(tod, slotIndex, tier), false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}
	return candidates[rng.IntN(len(candidates))], true
}
