package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smurf-scan/internal/api"
	"smurf-scan/internal/domain"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScanner struct {
	report *domain.Report
	err    error
	got    string
}

func (f *fakeScanner) Scan(ctx context.Context, riotID string) (*domain.Report, error) {
	f.got = riotID
	return f.report, f.err
}

func newTestServer(t *testing.T, scanner Scanner) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	path, handler := NewScanHandler(NewScanServer(scanner, zerolog.Nop()))
	mux.Handle(path, handler)
	mux.HandleFunc("/api", APIIndex)
	mux.HandleFunc("/", Index)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func newTestClient(ts *httptest.Server) *connect.Client[ScanRequest, ScanResponse] {
	return connect.NewClient[ScanRequest, ScanResponse](ts.Client(), ts.URL+ScanProcedure, connect.WithCodec(jsonCodec{}))
}

func TestScanReturnsReport(t *testing.T) {
	scanner := &fakeScanner{report: &domain.Report{
		ScanID:   "scan-1",
		Identity: domain.PlayerIdentity{GameName: "Faker", TagLine: "KR1", Puuid: "p1"},
		Stats:    domain.AggregateStats{Games: 3, Winrate: 1},
		Signals:  []domain.Signal{{Name: "high win rate", Points: 3}},
		Score:    3,
		Verdict:  domain.LikelyLegit,
	}}
	ts := newTestServer(t, scanner)

	resp, err := newTestClient(ts).CallUnary(context.Background(), connect.NewRequest(&ScanRequest{RiotID: "Faker#KR1"}))
	require.NoError(t, err)

	assert.Equal(t, "Faker#KR1", scanner.got)
	assert.Equal(t, "scan-1", resp.Msg.ScanID)
	assert.Equal(t, "p1", resp.Msg.Puuid)
	assert.Equal(t, 3, resp.Msg.Stats.Games)
	assert.Nil(t, resp.Msg.Stats.AvgGoldDiffAt10)
	assert.Equal(t, []SignalMessage{{Name: "high win rate", Points: 3}}, resp.Msg.Signals)
	assert.Equal(t, "Likely Legit", resp.Msg.Verdict)
}

func TestScanPlainJSONPost(t *testing.T) {
	scanner := &fakeScanner{report: &domain.Report{ScanID: "scan-2", Verdict: domain.LikelySmurf}}
	ts := newTestServer(t, scanner)

	resp, err := http.Post(ts.URL+ScanProcedure, "application/json", strings.NewReader(`{"riot_id":"a#b"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"verdict":"Likely Smurf"`)
	assert.Equal(t, "a#b", scanner.got)
}

func TestScanErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"invalid id", fmt.Errorf("%w: bad", domain.ErrInvalidIdentifier), connect.CodeInvalidArgument},
		{"no data", fmt.Errorf("%w: none", domain.ErrNoData), connect.CodeNotFound},
		{"upstream 404", &api.UpstreamError{StatusCode: 404}, connect.CodeNotFound},
		{"upstream 401", &api.UpstreamError{StatusCode: 401}, connect.CodePermissionDenied},
		{"upstream 403", fmt.Errorf("wrapped: %w", &api.UpstreamError{StatusCode: 403}), connect.CodePermissionDenied},
		{"upstream 429", &api.UpstreamError{StatusCode: 429, RetryAfter: 3}, connect.CodeResourceExhausted},
		{"upstream 503", &api.UpstreamError{StatusCode: 503}, connect.CodeUnavailable},
		{"other", fmt.Errorf("boom"), connect.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, &fakeScanner{err: tt.err})

			_, err := newTestClient(ts).CallUnary(context.Background(), connect.NewRequest(&ScanRequest{RiotID: "a#b"}))
			require.Error(t, err)
			assert.Equal(t, tt.want, connect.CodeOf(err))
		})
	}
}

func TestStubRoutes(t *testing.T) {
	ts := newTestServer(t, &fakeScanner{})

	for path, want := range map[string]string{
		"/":    "web app here",
		"/api": "smurf index and player stats",
	} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, want, string(body))
	}

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
