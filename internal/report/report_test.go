package report

import (
	"bytes"
	"testing"

	"smurf-scan/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.Report {
	r := &domain.Report{
		ScanID:         "V1StGXR8_Z5jdHi6B-myT",
		Identity:       domain.PlayerIdentity{GameName: "Faker", TagLine: "KR1", Puuid: "p1"},
		MatchesListed:  10,
		MatchesFetched: 10,
		MatchesSkipped: 1,
		Signals:        []domain.Signal{{Name: "high win rate", Points: 3}},
		Score:          3,
		Verdict:        domain.LikelyLegit,
	}
	r.Stats = domain.AggregateStats{
		Games:                9,
		Winrate:              0.7,
		AvgKDA:               5,
		AvgCSPerMin:          8,
		AvgGoldPerMin:        350,
		AvgKillParticipation: 0.6,
		AvgDmgPerMin:         350,
		ChampPoolSize:        2,
	}
	return r
}

func TestWriteNilGoldDiffAndUnranked(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Faker#KR1")
	assert.Contains(t, out, "Ranked: Unranked\n")
	assert.Contains(t, out, "Matches analyzed: 9 (listed 10, skipped 1)\n")
	assert.Contains(t, out, "Winrate: 70.0%\n")
	assert.Contains(t, out, "Avg GoldDiff@10: N/A\n")
	assert.Contains(t, out, "Avg Kill Participation: 60.0%\n")
	assert.Contains(t, out, "  +3 high win rate\n")
	assert.Contains(t, out, "Smurf Index: 3 → Likely Legit\n")
}

func TestWriteRankedAndGoldDiff(t *testing.T) {
	r := sampleReport()
	diff := 1234.6
	r.Stats.AvgGoldDiffAt10 = &diff
	r.Ranked = []domain.RankedEntry{{QueueType: "RANKED_SOLO_5x5", Tier: "GOLD", Rank: "II", LeaguePoints: 40, Wins: 10, Losses: 3}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "Ranked RANKED_SOLO_5x5: GOLD II 40 LP (10W/3L)\n")
	assert.NotContains(t, out, "Unranked")
	assert.Contains(t, out, "Avg GoldDiff@10: 1235\n")
}
