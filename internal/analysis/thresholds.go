package analysis

// Rule thresholds. Values are heuristics, tune here rather than inline.
const (
	MaxSmallChampPool        = 3
	MinHighKDA               = 4.0
	MinHighCSPerMin          = 7.5
	MinHighGoldPerMin        = 300.0
	MinEarlyGoldLead         = 1000.0
	MinHighWinrate           = 0.65
	MinHighDmgPerMin         = 300.0
	MinHighKillParticipation = 0.55
)

// Verdict tiers, lower bounds inclusive.
const (
	AlmostCertainlySmurfScore = 14
	LikelySmurfScore          = 9
	PossiblySmurfScore        = 5
)
