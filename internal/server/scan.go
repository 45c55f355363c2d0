package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"smurf-scan/internal/api"
	"smurf-scan/internal/domain"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

const (
	ScanServicePath = "/smurfscan.v1.SmurfScanService/"
	ScanProcedure   = ScanServicePath + "Scan"
)

type Scanner interface {
	Scan(ctx context.Context, riotID string) (*domain.Report, error)
}

type ScanServer struct {
	scanner Scanner
	logger  zerolog.Logger
}

func NewScanServer(scanner Scanner, logger zerolog.Logger) *ScanServer {
	return &ScanServer{scanner: scanner, logger: logger}
}

func (s *ScanServer) Scan(ctx context.Context, req *connect.Request[ScanRequest]) (*connect.Response[ScanResponse], error) {
	report, err := s.scanner.Scan(ctx, req.Msg.RiotID)
	if err != nil {
		log := zerolog.Ctx(ctx)
		if log.GetLevel() == zerolog.Disabled {
			log = &s.logger
		}
		log.Error().Err(err).Str("riot_id", req.Msg.RiotID).Msg("scan failed")
		return nil, toConnectError(err)
	}
	return connect.NewResponse(toScanResponse(report)), nil
}

// NewScanHandler mounts the Scan procedure. Mount the returned handler at
// the returned path.
func NewScanHandler(s *ScanServer, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ScanProcedure, connect.NewUnaryHandler(ScanProcedure, s.Scan, opts...))
	return ScanServicePath, mux
}

func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, domain.ErrInvalidIdentifier):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, domain.ErrNoData):
		return connect.NewError(connect.CodeNotFound, err)
	}

	var upstreamErr *api.UpstreamError
	if errors.As(err, &upstreamErr) {
		switch upstreamErr.StatusCode {
		case http.StatusNotFound:
			return connect.NewError(connect.CodeNotFound, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return connect.NewError(connect.CodePermissionDenied, err)
		case http.StatusTooManyRequests:
			cerr := connect.NewError(connect.CodeResourceExhausted, err)
			if upstreamErr.RetryAfter > 0 {
				cerr.Meta().Set("Retry-After", fmt.Sprint(upstreamErr.RetryAfter))
			}
			return cerr
		default:
			return connect.NewError(connect.CodeUnavailable, err)
		}
	}

	return connect.NewError(connect.CodeInternal, err)
}

func Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	fmt.Fprint(w, "web app here")
}

func APIIndex(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "smurf index and player stats")
}
