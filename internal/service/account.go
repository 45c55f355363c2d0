package service

import (
	"context"
	"fmt"
	"strings"

	"smurf-scan/internal/domain"

	"github.com/rs/zerolog"
)

type AccountService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

func NewAccountService(riot RiotAPI, logger zerolog.Logger) *AccountService {
	return &AccountService{riot: riot, logger: logger}
}

// Resolve looks up the puuid for gameName#tagLine on the regional route.
// Blank input fails with ErrInvalidIdentifier without touching the network.
func (s *AccountService) Resolve(ctx context.Context, gameName, tagLine, region string) (domain.PlayerIdentity, error) {
	gameName = strings.TrimSpace(gameName)
	tagLine = strings.TrimSpace(tagLine)
	if gameName == "" || tagLine == "" {
		return domain.PlayerIdentity{}, fmt.Errorf("%w: game name and tag line are required", domain.ErrInvalidIdentifier)
	}

	log := loggerFrom(ctx, s.logger)
	log.Info().Str("name", gameName).Str("tag", tagLine).Str("region", region).Msg("resolving account")

	account, err := s.riot.GetAccountByRiotID(ctx, region, gameName, tagLine)
	if err != nil {
		log.Error().Err(err).Str("name", gameName).Str("tag", tagLine).Msg("failed to fetch account")
		return domain.PlayerIdentity{}, fmt.Errorf("failed to resolve %s#%s: %w", gameName, tagLine, err)
	}
	if account.Puuid == "" {
		return domain.PlayerIdentity{}, fmt.Errorf("%w: no puuid returned for %s#%s", domain.ErrInvalidIdentifier, gameName, tagLine)
	}

	identity := domain.PlayerIdentity{GameName: gameName, TagLine: tagLine, Puuid: account.Puuid}
	if account.GameName != "" {
		identity.GameName = account.GameName
	}
	if account.TagLine != "" {
		identity.TagLine = account.TagLine
	}

	log.Debug().Str("puuid", identity.Puuid).Msg("account resolved")
	return identity, nil
}

func (s *AccountService) RankedEntries(ctx context.Context, platform, puuid string) ([]domain.RankedEntry, error) {
	entries, err := s.riot.GetLeagueEntries(ctx, platform, puuid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ranked entries: %w", err)
	}

	ranked := make([]domain.RankedEntry, 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, domain.RankedEntry{
			QueueType:    e.QueueType,
			Tier:         e.Tier,
			Rank:         e.Rank,
			LeaguePoints: e.LeaguePoints,
			Wins:         e.Wins,
			Losses:       e.Losses,
		})
	}
	return ranked, nil
}
