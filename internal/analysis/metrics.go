// Package analysis turns match payloads into per-match metrics, aggregates
// them over a sample and scores the aggregate against the smurf heuristics.
package analysis

import (
	"math"

	"smurf-scan/internal/domain"
)

// Extract derives the per-match metrics for puuid. It reports false when the
// player is not among the match participants.
func Extract(match domain.Match, puuid string) (domain.ParticipantMetrics, bool) {
	p, ok := findParticipant(match, puuid)
	if !ok {
		return domain.ParticipantMetrics{}, false
	}

	// floor of one minute guards degenerate or remade games
	durationMin := math.Max(1, match.DurationSeconds/60)

	killsAndAssists := float64(p.Kills + p.Assists)
	kda := killsAndAssists / math.Max(1, float64(p.Deaths))

	cs := float64(p.TotalMinionsKilled + p.NeutralMinionsKilled)

	var gold float64
	switch {
	case p.GoldEarned != nil:
		gold = float64(*p.GoldEarned)
	case p.GoldPerMinute != nil:
		gold = *p.GoldPerMinute * durationMin
	}

	var killParticipation float64
	if teamKills := teamKills(match, p.TeamID); teamKills > 0 {
		killParticipation = killsAndAssists / float64(teamKills)
	}

	return domain.ParticipantMetrics{
		Win:               p.Win,
		KDA:               kda,
		Kills:             p.Kills,
		Deaths:            p.Deaths,
		Assists:           p.Assists,
		CSPerMin:          cs / durationMin,
		GoldPerMin:        gold / durationMin,
		GoldDiffAt10:      p.GoldDiffAt10,
		KillParticipation: killParticipation,
		DmgPerMin:         float64(p.DamageToChampions) / durationMin,
		Champion:          p.ChampionName,
	}, true
}

func findParticipant(match domain.Match, puuid string) (domain.Participant, bool) {
	for _, p := range match.Participants {
		if p.Puuid == puuid {
			return p, true
		}
	}
	return domain.Participant{}, false
}

func teamKills(match domain.Match, teamID int) int {
	total := 0
	for _, p := range match.Participants {
		if p.TeamID == teamID {
			total += p.Kills
		}
	}
	return total
}
