package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"smurf-scan/internal/constants"
	"smurf-scan/internal/domain"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const DefaultAPIHostFormat = "https://%s.api.riotgames.com"

type Config struct {
	RiotAPIKey    string
	Platform      string // platform routing value, e.g. na1
	Region        string // regional routing value, e.g. americas
	MatchCount    int
	APIHostFormat string
	ServerPort    string
	LogLevel      string
}

// platform -> regional routing for account-v1 and match-v5
var platformRegions = map[string]string{
	"na1":  "americas",
	"br1":  "americas",
	"la1":  "americas",
	"la2":  "americas",
	"euw1": "europe",
	"eun1": "europe",
	"tr1":  "europe",
	"ru":   "europe",
	"me1":  "europe",
	"kr":   "asia",
	"jp1":  "asia",
	"oc1":  "sea",
	"ph2":  "sea",
	"sg2":  "sea",
	"th2":  "sea",
	"tw2":  "sea",
	"vn2":  "sea",
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:    getEnv("RIOT_API_KEY", ""),
		Platform:      strings.ToLower(getEnv("RIOT_PLATFORM", "na1")),
		APIHostFormat: getEnv("RIOT_API_HOST_FORMAT", DefaultAPIHostFormat),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("%w: RIOT_API_KEY is required", domain.ErrMissingConfiguration)
	}

	cfg.Region = strings.ToLower(getEnv("RIOT_REGION", ""))
	if cfg.Region == "" {
		region, ok := RegionForPlatform(cfg.Platform)
		if !ok {
			return nil, fmt.Errorf("%w: unknown RIOT_PLATFORM %q, set RIOT_REGION explicitly", domain.ErrMissingConfiguration, cfg.Platform)
		}
		cfg.Region = region
	}

	count, err := strconv.Atoi(getEnv("MATCH_COUNT", strconv.Itoa(constants.DefaultMatchCount)))
	if err != nil {
		return nil, fmt.Errorf("invalid MATCH_COUNT: %w", err)
	}
	cfg.MatchCount = ClampMatchCount(count)

	logger.Info().
		Str("platform", cfg.Platform).
		Str("region", cfg.Region).
		Int("match_count", cfg.MatchCount).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

func RegionForPlatform(platform string) (string, bool) {
	region, ok := platformRegions[strings.ToLower(platform)]
	return region, ok
}

func ClampMatchCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > constants.MaxMatchCount {
		return constants.MaxMatchCount
	}
	return n
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
