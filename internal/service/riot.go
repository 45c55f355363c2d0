package service

import (
	"context"

	"smurf-scan/internal/api"

	"github.com/rs/zerolog"
)

// RiotAPI is the subset of the Riot client the services depend on.
// *api.RiotClient satisfies it.
type RiotAPI interface {
	GetAccountByRiotID(ctx context.Context, region, gameName, tagLine string) (*api.AccountResponse, error)
	GetLeagueEntries(ctx context.Context, platform, puuid string) ([]api.LeagueEntry, error)
	GetMatchIDs(ctx context.Context, region, puuid string, count int) ([]string, error)
	GetMatch(ctx context.Context, region, matchID string) (*api.MatchResponse, error)
}

// loggerFrom prefers the request or scan scoped logger carried by ctx.
func loggerFrom(ctx context.Context, fallback zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &fallback
}
