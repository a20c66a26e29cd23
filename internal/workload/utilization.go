package workload

import "github.com/yakoovad/workload-planner/internal/model"

// Utilization is assigned / available in percent, or 0 without availability.
func Utilization(assigned, available float64) float64 {
	if available <= 0 {
		return 0
	}
	return assigned / available * 100
}

// Classify maps a utilization percentage to its display band. 100% exactly
// is still orange; only over-assignment is red.
func Classify(pct float64) model.Band {
	switch {
	case pct > 100:
		return model.BandRed
	case pct >= 80:
		return model.BandOrange
	case pct >= 50:
		return model.BandBlue
	default:
		return model.BandGreen
	}
}

func Load(p Period, assigned, available float64) model.PeriodLoad {
	pct := Utilization(assigned, available)
	return model.PeriodLoad{
		From:           model.NewDate(p.From),
		To:             model.NewDate(p.To),
		AssignedHours:  assigned,
		AvailableHours: available,
		Utilization:    pct,
		Band:           Classify(pct),
	}
}
