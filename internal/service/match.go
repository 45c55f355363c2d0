package service

import (
	"context"
	"fmt"

	"smurf-scan/internal/api"
	"smurf-scan/internal/config"
	"smurf-scan/internal/constants"
	"smurf-scan/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type MatchService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

// MatchFailure records a match detail fetch that was skipped.
type MatchFailure struct {
	MatchID string
	Err     error
}

func NewMatchService(riot RiotAPI, logger zerolog.Logger) *MatchService {
	return &MatchService{riot: riot, logger: logger}
}

// ListRecentMatchIDs returns up to count match ids, most recent first, as
// the upstream orders them.
func (s *MatchService) ListRecentMatchIDs(ctx context.Context, region, puuid string, count int) ([]string, error) {
	count = config.ClampMatchCount(count)

	ids, err := s.riot.GetMatchIDs(ctx, region, puuid, count)
	if err != nil {
		loggerFrom(ctx, s.logger).Error().Err(err).Str("puuid", puuid).Msg("failed to list matches")
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	loggerFrom(ctx, s.logger).Debug().Str("puuid", puuid).Int("match_count", len(ids)).Msg("matches listed")
	return ids, nil
}

// FetchMatchDetails fetches every id concurrently. A failed fetch is logged
// and reported in the failures slice instead of aborting the batch. Matches
// come back in the order of ids.
func (s *MatchService) FetchMatchDetails(ctx context.Context, region string, ids []string) ([]domain.Match, []MatchFailure) {
	log := loggerFrom(ctx, s.logger)

	results := make([]*domain.Match, len(ids))
	errs := make([]error, len(ids))

	g := new(errgroup.Group)
	g.SetLimit(constants.MatchFetchConcurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
			defer cancel()

			resp, err := s.riot.GetMatch(fetchCtx, region, id)
			if err != nil {
				errs[i] = err
				return nil
			}
			m := toDomainMatch(resp)
			if m.ID == "" {
				m.ID = id
			}
			results[i] = &m
			return nil
		})
	}
	_ = g.Wait()

	matches := make([]domain.Match, 0, len(ids))
	var failures []MatchFailure
	for i, id := range ids {
		if errs[i] != nil {
			log.Warn().Err(errs[i]).Str("match_id", id).Msg("failed to fetch match, skipping")
			failures = append(failures, MatchFailure{MatchID: id, Err: errs[i]})
			continue
		}
		matches = append(matches, *results[i])
	}

	log.Debug().Int("fetched", len(matches)).Int("failed", len(failures)).Msg("match details fetched")
	return matches, failures
}

func toDomainMatch(resp *api.MatchResponse) domain.Match {
	// gameDuration is in milliseconds on payloads without gameEndTimestamp
	seconds := float64(resp.Info.GameDuration)
	if resp.Info.GameEndTimestamp == 0 {
		seconds /= 1000
	}

	participants := make([]domain.Participant, 0, len(resp.Info.Participants))
	for _, p := range resp.Info.Participants {
		dp := domain.Participant{
			Puuid:                p.Puuid,
			TeamID:               p.TeamID,
			ChampionName:         p.ChampionName,
			Win:                  p.Win,
			Kills:                p.Kills,
			Deaths:               p.Deaths,
			Assists:              p.Assists,
			TotalMinionsKilled:   p.TotalMinionsKilled,
			NeutralMinionsKilled: p.NeutralMinionsKilled,
			GoldEarned:           p.GoldEarned,
			DamageToChampions:    p.TotalDamageDealtToChampions,
		}
		if p.Challenges != nil {
			dp.GoldPerMinute = p.Challenges.GoldPerMinute
			dp.GoldDiffAt10 = p.Challenges.GoldDiffAt10
		}
		participants = append(participants, dp)
	}

	return domain.Match{
		ID:              resp.Metadata.MatchID,
		DurationSeconds: seconds,
		Participants:    participants,
	}
}
