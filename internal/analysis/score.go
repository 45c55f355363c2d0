package analysis

import "smurf-scan/internal/domain"

type rule struct {
	name   string
	points int
	fires  func(domain.AggregateStats) bool
}

var rules = []rule{
	{"small champion pool", 1, func(a domain.AggregateStats) bool { return a.ChampPoolSize <= MaxSmallChampPool }},
	{"high KDA", 2, func(a domain.AggregateStats) bool { return a.AvgKDA >= MinHighKDA }},
	{"high CS", 2, func(a domain.AggregateStats) bool { return a.AvgCSPerMin >= MinHighCSPerMin }},
	{"high gold", 1, func(a domain.AggregateStats) bool { return a.AvgGoldPerMin >= MinHighGoldPerMin }},
	{"early gold lead", 2, func(a domain.AggregateStats) bool {
		return a.AvgGoldDiffAt10 != nil && *a.AvgGoldDiffAt10 >= MinEarlyGoldLead
	}},
	{"high win rate", 3, func(a domain.AggregateStats) bool { return a.Winrate >= MinHighWinrate }},
	{"high damage", 1, func(a domain.AggregateStats) bool { return a.AvgDmgPerMin >= MinHighDmgPerMin }},
	{"high kill participation", 1, func(a domain.AggregateStats) bool {
		return a.AvgKillParticipation >= MinHighKillParticipation
	}},
}

// Signals returns the rules that fired for agg, in rule order.
func Signals(agg domain.AggregateStats) []domain.Signal {
	var signals []domain.Signal
	for _, r := range rules {
		if r.fires(agg) {
			signals = append(signals, domain.Signal{Name: r.name, Points: r.points})
		}
	}
	return signals
}

// Score sums the points of every fired rule. Rules are independent.
func Score(agg domain.AggregateStats) int {
	total := 0
	for _, s := range Signals(agg) {
		total += s.Points
	}
	return total
}

func VerdictFor(score int) domain.Verdict {
	switch {
	case score >= AlmostCertainlySmurfScore:
		return domain.AlmostCertainlySmurf
	case score >= LikelySmurfScore:
		return domain.LikelySmurf
	case score >= PossiblySmurfScore:
		return domain.PossiblySmurf
	default:
		return domain.LikelyLegit
	}
}
