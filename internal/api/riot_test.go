package api

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

const testKey = "RGAPI-test"

func newTestClient(t *testing.T, handler fasthttp.RequestHandler) *RiotClient {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: handler}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() {
		_ = srv.Shutdown()
		_ = ln.Close()
	})

	fc := &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			return ln.Dial()
		},
	}
	return newRiotClient(testKey, "http://%s.riot.test", fc, zerolog.Nop())
}

func TestGetAccountByRiotID(t *testing.T) {
	var gotHost, gotPath, gotToken string
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		gotHost = string(ctx.Host())
		gotPath = string(ctx.Path())
		gotToken = string(ctx.Request.Header.Peek("X-Riot-Token"))
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"puuid":"abc-123","gameName":"Faker","tagLine":"KR1"}`)
	})

	acc, err := c.GetAccountByRiotID(context.Background(), "asia", "Faker", "KR1")
	require.NoError(t, err)

	assert.Equal(t, "asia.riot.test", gotHost)
	assert.Equal(t, "/riot/account/v1/accounts/by-riot-id/Faker/KR1", gotPath)
	assert.Equal(t, testKey, gotToken)
	assert.Equal(t, "abc-123", acc.Puuid)
	assert.Equal(t, "Faker", acc.GameName)
}

func TestGetMatchIDsKeepsUpstreamOrder(t *testing.T) {
	var gotCount string
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		gotCount = string(ctx.QueryArgs().Peek("count"))
		ctx.SetBodyString(`["NA1_3","NA1_1","NA1_2"]`)
	})

	ids, err := c.GetMatchIDs(context.Background(), "americas", "abc", 3)
	require.NoError(t, err)
	assert.Equal(t, "3", gotCount)
	assert.Equal(t, []string{"NA1_3", "NA1_1", "NA1_2"}, ids)
}

func TestGetMatchDecodesOptionalFields(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`{
			"metadata": {"matchId": "NA1_1"},
			"info": {
				"gameDuration": 1800,
				"gameEndTimestamp": 1700000000000,
				"participants": [
					{"puuid": "a", "teamId": 100, "championName": "Ahri", "kills": 3, "goldEarned": 9000,
					 "challenges": {"goldDiffAt10": 450.5}},
					{"puuid": "b", "teamId": 200, "championName": "Zed", "kills": 1}
				]
			}
		}`)
	})

	m, err := c.GetMatch(context.Background(), "americas", "NA1_1")
	require.NoError(t, err)
	require.Len(t, m.Info.Participants, 2)

	a := m.Info.Participants[0]
	require.NotNil(t, a.GoldEarned)
	assert.Equal(t, 9000, *a.GoldEarned)
	require.NotNil(t, a.Challenges)
	require.NotNil(t, a.Challenges.GoldDiffAt10)
	assert.InDelta(t, 450.5, *a.Challenges.GoldDiffAt10, 1e-9)

	b := m.Info.Participants[1]
	assert.Nil(t, b.GoldEarned)
	assert.Nil(t, b.Challenges)
}

func TestNon2xxReturnsUpstreamError(t *testing.T) {
	long := strings.Repeat("x", 500)
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		ctx.SetBodyString(`{"status":{"message":"Data not found"}}` + long)
	})

	_, err := c.GetAccountByRiotID(context.Background(), "americas", "nobody", "NA1")
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, fasthttp.StatusNotFound, upstreamErr.StatusCode)
	assert.Equal(t, "Not Found", upstreamErr.Status)
	assert.True(t, strings.HasPrefix(upstreamErr.Body, `{"status":{"message":"Data not found"}}`))
	assert.LessOrEqual(t, len(upstreamErr.Body), 200+len("..."))
	assert.Contains(t, err.Error(), "404")
}

func TestRateLimitHeadersRecorded(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.Response.Header.Set("X-App-Rate-Limit", "20:1,100:120")
		ctx.Response.Header.Set("X-App-Rate-Limit-Count", "1:1,1:120")
		ctx.Response.Header.Set("Retry-After", "7")
		ctx.SetStatusCode(fasthttp.StatusTooManyRequests)
	})

	_, err := c.GetLeagueEntries(context.Background(), "na1", "abc")

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, 7, upstreamErr.RetryAfter)

	info := c.GetRateLimitInfo()
	assert.Equal(t, "20:1,100:120", info.AppLimit)
	assert.Equal(t, "1:1,1:120", info.AppCount)
	assert.WithinDuration(t, time.Now(), info.UpdatedAt, 5*time.Second)
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "short", snippet([]byte("  short \n"), 10))
	assert.Equal(t, "abcde...", snippet([]byte("abcdefgh"), 5))
}
