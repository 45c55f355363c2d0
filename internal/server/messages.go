package server

import "smurf-scan/internal/domain"

type ScanRequest struct {
	RiotID string `json:"riot_id"`
}

type ScanResponse struct {
	ScanID         string          `json:"scan_id"`
	GameName       string          `json:"game_name"`
	TagLine        string          `json:"tag_line"`
	Puuid          string          `json:"puuid"`
	Ranked         []RankedMessage `json:"ranked"`
	MatchesListed  int             `json:"matches_listed"`
	MatchesFetched int             `json:"matches_fetched"`
	MatchesSkipped int             `json:"matches_skipped"`
	Stats          StatsMessage    `json:"stats"`
	Signals        []SignalMessage `json:"signals"`
	Score          int             `json:"score"`
	Verdict        string          `json:"verdict"`
}

type RankedMessage struct {
	QueueType    string `json:"queue_type"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"league_points"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

type StatsMessage struct {
	Games                int      `json:"games"`
	Winrate              float64  `json:"winrate"`
	AvgKDA               float64  `json:"avg_kda"`
	AvgCSPerMin          float64  `json:"avg_cs_per_min"`
	AvgGoldPerMin        float64  `json:"avg_gold_per_min"`
	AvgGoldDiffAt10      *float64 `json:"avg_gold_diff_at_10"`
	AvgKillParticipation float64  `json:"avg_kill_participation"`
	AvgDmgPerMin         float64  `json:"avg_dmg_per_min"`
	ChampPoolSize        int      `json:"champ_pool_size"`
}

type SignalMessage struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

func toScanResponse(r *domain.Report) *ScanResponse {
	ranked := make([]RankedMessage, 0, len(r.Ranked))
	for _, e := range r.Ranked {
		ranked = append(ranked, RankedMessage{
			QueueType:    e.QueueType,
			Tier:         e.Tier,
			Rank:         e.Rank,
			LeaguePoints: e.LeaguePoints,
			Wins:         e.Wins,
			Losses:       e.Losses,
		})
	}

	signals := make([]SignalMessage, 0, len(r.Signals))
	for _, s := range r.Signals {
		signals = append(signals, SignalMessage{Name: s.Name, Points: s.Points})
	}

	return &ScanResponse{
		ScanID:         r.ScanID,
		GameName:       r.Identity.GameName,
		TagLine:        r.Identity.TagLine,
		Puuid:          r.Identity.Puuid,
		Ranked:         ranked,
		MatchesListed:  r.MatchesListed,
		MatchesFetched: r.MatchesFetched,
		MatchesSkipped: r.MatchesSkipped,
		Stats: StatsMessage{
			Games:                r.Stats.Games,
			Winrate:              r.Stats.Winrate,
			AvgKDA:               r.Stats.AvgKDA,
			AvgCSPerMin:          r.Stats.AvgCSPerMin,
			AvgGoldPerMin:        r.Stats.AvgGoldPerMin,
			AvgGoldDiffAt10:      r.Stats.AvgGoldDiffAt10,
			AvgKillParticipation: r.Stats.AvgKillParticipation,
			AvgDmgPerMin:         r.Stats.AvgDmgPerMin,
			ChampPoolSize:        r.Stats.ChampPoolSize,
		},
		Signals: signals,
		Score:   r.Score,
		Verdict: r.Verdict.String(),
	}
}
