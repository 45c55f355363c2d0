package service

import (
	"context"
	"fmt"

	"smurf-scan/internal/analysis"
	"smurf-scan/internal/config"
	"smurf-scan/internal/constants"
	"smurf-scan/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type ScanService struct {
	accounts *AccountService
	matches  *MatchService
	cfg      *config.Config
	logger   zerolog.Logger
}

func NewScanService(accounts *AccountService, matches *MatchService, cfg *config.Config, logger zerolog.Logger) *ScanService {
	return &ScanService{accounts: accounts, matches: matches, cfg: cfg, logger: logger}
}

// Scan resolves riotID ("GameName#TagLine"), samples its recent matches and
// scores them.
func (s *ScanService) Scan(ctx context.Context, riotID string) (*domain.Report, error) {
	id, err := domain.ParseRiotID(riotID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ScanTimeout)
	defer cancel()

	scanID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate scan id: %w", err)
	}
	log := loggerFrom(ctx, s.logger).With().Str("scan_id", scanID).Logger()
	ctx = log.WithContext(ctx)

	log.Info().Str("riot_id", id.String()).Msg("starting scan")

	identity, err := s.accounts.Resolve(ctx, id.GameName, id.TagLine, s.cfg.Region)
	if err != nil {
		return nil, err
	}

	var (
		ranked   []domain.RankedEntry
		matchIDs []string
	)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := s.accounts.RankedEntries(gCtx, s.cfg.Platform, identity.Puuid)
		if err != nil {
			log.Warn().Err(err).Str("puuid", identity.Puuid).Msg("ranked lookup failed, continuing without it")
			return nil
		}
		ranked = entries
		return nil
	})

	g.Go(func() error {
		var err error
		matchIDs, err = s.matches.ListRecentMatchIDs(gCtx, s.cfg.Region, identity.Puuid, s.cfg.MatchCount)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches, failures := s.matches.FetchMatchDetails(ctx, s.cfg.Region, matchIDs)

	metrics := make([]domain.ParticipantMetrics, 0, len(matches))
	for _, m := range matches {
		pm, ok := analysis.Extract(m, identity.Puuid)
		if !ok {
			log.Warn().Str("match_id", m.ID).Str("puuid", identity.Puuid).Msg("player not found in match, skipping")
			continue
		}
		metrics = append(metrics, pm)
	}

	if len(metrics) == 0 {
		log.Error().Int("listed", len(matchIDs)).Int("failed", len(failures)).Msg("no usable matches")
		return nil, fmt.Errorf("%w: none of %d recent matches could be analyzed for %s", domain.ErrNoData, len(matchIDs), identity.RiotID())
	}

	stats, err := analysis.Aggregate(metrics)
	if err != nil {
		return nil, err
	}
	signals := analysis.Signals(stats)
	score := analysis.Score(stats)

	report := &domain.Report{
		ScanID:         scanID,
		Identity:       identity,
		Ranked:         ranked,
		MatchesListed:  len(matchIDs),
		MatchesFetched: len(matches),
		MatchesSkipped: len(matchIDs) - len(metrics),
		Stats:          stats,
		Signals:        signals,
		Score:          score,
		Verdict:        analysis.VerdictFor(score),
	}

	log.Info().
		Str("puuid", identity.Puuid).
		Int("games", stats.Games).
		Int("score", score).
		Str("verdict", report.Verdict.String()).
		Msg("scan complete")

	return report, nil
}
