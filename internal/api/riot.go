package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"smurf-scan/internal/config"
	"smurf-scan/internal/constants"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type RiotClient struct {
	apiKey      string
	hostFormat  string
	client      *fasthttp.Client
	logger      zerolog.Logger
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo mirrors Riot's rate limit headers from the most recent response.
// Values look like "20:1,100:120" (requests:seconds).
type RateLimitInfo struct {
	AppLimit    string    `json:"app_limit"`
	AppCount    string    `json:"app_count"`
	MethodLimit string    `json:"method_limit"`
	MethodCount string    `json:"method_count"`
	RetryAfter  int       `json:"retry_after"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpstreamError is returned for every non-2xx response.
type UpstreamError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string // truncated to constants.UpstreamBodySnippetLen
	RetryAfter int    // seconds, only set on 429
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("riot api: %d %s for %s", e.StatusCode, e.Status, e.URL)
	}
	return fmt.Sprintf("riot api: %d %s for %s: %s", e.StatusCode, e.Status, e.URL, e.Body)
}

func NewRiotClient(cfg *config.Config, logger zerolog.Logger) *RiotClient {
	return newRiotClient(cfg.RiotAPIKey, cfg.APIHostFormat, &fasthttp.Client{
		MaxConnsPerHost:     constants.HTTPMaxConnsPerHost,
		ReadTimeout:         constants.HTTPReadTimeout,
		WriteTimeout:        constants.HTTPWriteTimeout,
		MaxIdleConnDuration: constants.HTTPMaxIdleConnDuration,
	}, logger)
}

func newRiotClient(apiKey, hostFormat string, client *fasthttp.Client, logger zerolog.Logger) *RiotClient {
	if hostFormat == "" {
		hostFormat = config.DefaultAPIHostFormat
	}
	return &RiotClient{
		apiKey:     apiKey,
		hostFormat: hostFormat,
		client:     client,
		logger:     logger,
	}
}

func (c *RiotClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *RiotClient) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if v := string(resp.Header.Peek("X-App-Rate-Limit")); v != "" {
		c.rateLimit.AppLimit = v
	}
	if v := string(resp.Header.Peek("X-App-Rate-Limit-Count")); v != "" {
		c.rateLimit.AppCount = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit")); v != "" {
		c.rateLimit.MethodLimit = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit-Count")); v != "" {
		c.rateLimit.MethodCount = v
	}
	c.rateLimit.RetryAfter = 0
	if v := string(resp.Header.Peek("Retry-After")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.rateLimit.RetryAfter = secs
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *RiotClient) host(routing string) string {
	return fmt.Sprintf(c.hostFormat, routing)
}

func (c *RiotClient) GetAccountByRiotID(ctx context.Context, region, gameName, tagLine string) (*AccountResponse, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s", c.host(region), url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[AccountResponse](ctx, c, u)
}

func (c *RiotClient) GetLeagueEntries(ctx context.Context, platform, puuid string) ([]LeagueEntry, error) {
	u := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", c.host(platform), url.PathEscape(puuid))
	entries, err := doRequest[[]LeagueEntry](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func (c *RiotClient) GetMatchIDs(ctx context.Context, region, puuid string, count int) ([]string, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?count=%d", c.host(region), url.PathEscape(puuid), count)
	ids, err := doRequest[[]string](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

func (c *RiotClient) GetMatch(ctx context.Context, region, matchID string) (*MatchResponse, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.host(region), url.PathEscape(matchID))
	return doRequest[MatchResponse](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *RiotClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	client.logger.Debug().Str("url", url).Msg("fetching")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("request %s: %w", url, err)
		}
	} else {
		if err := client.client.DoTimeout(req, resp, constants.ExternalAPITimeout); err != nil {
			return nil, fmt.Errorf("request %s: %w", url, err)
		}
	}

	client.updateRateLimit(resp)

	code := resp.StatusCode()
	if code < fasthttp.StatusOK || code >= fasthttp.StatusMultipleChoices {
		upstreamErr := &UpstreamError{
			StatusCode: code,
			Status:     fasthttp.StatusMessage(code),
			URL:        url,
			Body:       snippet(resp.Body(), constants.UpstreamBodySnippetLen),
		}
		if code == fasthttp.StatusTooManyRequests {
			upstreamErr.RetryAfter = client.GetRateLimitInfo().RetryAfter
		}
		client.logger.Error().
			Int("status", code).
			Str("reason", upstreamErr.Status).
			Str("url", url).
			Str("body", upstreamErr.Body).
			Msg("upstream request failed")
		return nil, upstreamErr
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return &result, nil
}

func snippet(body []byte, n int) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "") + "..."
}
