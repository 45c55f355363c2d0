// Package report renders a scan result as plain text.
package report

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"smurf-scan/internal/domain"
)

func Write(w io.Writer, r *domain.Report) error {
	bw := bufio.NewWriter(w)
	s := r.Stats

	fmt.Fprintf(bw, "--- Smurf Index: %s ---\n", r.Identity.RiotID())
	fmt.Fprintf(bw, "Scan ID: %s\n", r.ScanID)

	if len(r.Ranked) == 0 {
		fmt.Fprintln(bw, "Ranked: Unranked")
	}
	for _, e := range r.Ranked {
		fmt.Fprintf(bw, "Ranked %s: %s %s %d LP (%dW/%dL)\n", e.QueueType, e.Tier, e.Rank, e.LeaguePoints, e.Wins, e.Losses)
	}

	fmt.Fprintf(bw, "Matches analyzed: %d (listed %d, skipped %d)\n", s.Games, r.MatchesListed, r.MatchesSkipped)
	fmt.Fprintf(bw, "Winrate: %.1f%%\n", s.Winrate*100)
	fmt.Fprintf(bw, "Avg KDA: %.2f\n", s.AvgKDA)
	fmt.Fprintf(bw, "Avg CS/min: %.2f\n", s.AvgCSPerMin)
	fmt.Fprintf(bw, "Avg Gold/min: %.1f\n", s.AvgGoldPerMin)
	if s.AvgGoldDiffAt10 == nil {
		fmt.Fprintln(bw, "Avg GoldDiff@10: N/A")
	} else {
		fmt.Fprintf(bw, "Avg GoldDiff@10: %d\n", int(math.Round(*s.AvgGoldDiffAt10)))
	}
	fmt.Fprintf(bw, "Avg Kill Participation: %.1f%%\n", s.AvgKillParticipation*100)
	fmt.Fprintf(bw, "Avg Damage/min: %.1f\n", s.AvgDmgPerMin)
	fmt.Fprintf(bw, "Champ pool size (unique champs in sampled games): %d\n", s.ChampPoolSize)

	for _, sig := range r.Signals {
		fmt.Fprintf(bw, "  +%d %s\n", sig.Points, sig.Name)
	}
	fmt.Fprintf(bw, "Smurf Index: %d → %s\n", r.Score, r.Verdict)

	return bw.Flush()
}
