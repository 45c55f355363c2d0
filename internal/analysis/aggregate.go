package analysis

import (
	"fmt"

	"smurf-scan/internal/domain"
)

// Aggregate averages metrics over the sample. GoldDiffAt10 is averaged only
// over matches that reported it and stays nil when none did.
func Aggregate(metrics []domain.ParticipantMetrics) (domain.AggregateStats, error) {
	n := len(metrics)
	if n == 0 {
		return domain.AggregateStats{}, fmt.Errorf("%w: cannot aggregate an empty sample", domain.ErrNoData)
	}

	var (
		wins, goldDiffCount          int
		kda, cs, gold, killPart, dmg float64
		goldDiffSum                  float64
	)
	champs := make(map[string]struct{}, n)

	for _, m := range metrics {
		if m.Win {
			wins++
		}
		kda += m.KDA
		cs += m.CSPerMin
		gold += m.GoldPerMin
		killPart += m.KillParticipation
		dmg += m.DmgPerMin
		if m.GoldDiffAt10 != nil {
			goldDiffSum += *m.GoldDiffAt10
			goldDiffCount++
		}
		champs[m.Champion] = struct{}{}
	}

	games := float64(n)
	stats := domain.AggregateStats{
		Games:                n,
		Winrate:              float64(wins) / games,
		AvgKDA:               kda / games,
		AvgCSPerMin:          cs / games,
		AvgGoldPerMin:        gold / games,
		AvgKillParticipation: killPart / games,
		AvgDmgPerMin:         dmg / games,
		ChampPoolSize:        len(champs),
	}
	if goldDiffCount > 0 {
		avg := goldDiffSum / float64(goldDiffCount)
		stats.AvgGoldDiffAt10 = &avg
	}

	return stats, nil
}
