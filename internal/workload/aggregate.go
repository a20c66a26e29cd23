package workload

// HoursIn returns the hours of a planned for days inside p. Spans only count
// their work days. A single-day allocation counts in full when p holds it,
// even on a weekend: the literal next workday after a Friday is a Saturday,
// and skipping it would drop the task's hours from every period.
func (a Allocation) HoursIn(p Period) float64 {
	if a.SingleDay() {
		if p.Contains(a.Start) {
			return a.TotalHours
		}
		return 0
	}

	overlap, ok := p.Intersect(Period{From: a.Start, To: a.End})
	if !ok {
		return 0
	}
	return a.HoursPerDay * float64(overlap.Workdays())
}

func SumHours(allocs []Allocation, p Period) float64 {
	var total float64
	for _, a := range allocs {
		total += a.HoursIn(p)
	}
	return total
}
