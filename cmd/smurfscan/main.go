package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"smurf-scan/internal/api"
	"smurf-scan/internal/domain"
	fxmodules "smurf-scan/internal/fx"
	"smurf-scan/internal/report"
	"smurf-scan/internal/service"

	"go.uber.org/fx"
)

const usage = "Usage: smurfscan <GameName#TagLine>"

const (
	exitOK = iota
	exitFailure
	exitInvalidIdentifier
	exitMissingConfiguration
	exitNoData
	exitUpstream
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	riotID := strings.TrimSpace(strings.Join(args, " "))
	if riotID == "" {
		fmt.Fprintln(stderr, usage)
		return exitFailure
	}

	var scanSvc *service.ScanService
	app := fx.New(
		fxmodules.CoreModule,
		fx.NopLogger,
		fx.Populate(&scanSvc),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitCode(err)
	}

	r, err := scanSvc.Scan(ctx, riotID)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitCode(err)
	}

	if err := report.Write(stdout, r); err != nil {
		fmt.Fprintf(stderr, "error: writing report: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func exitCode(err error) int {
	var upstreamErr *api.UpstreamError
	switch {
	case errors.Is(err, domain.ErrInvalidIdentifier):
		return exitInvalidIdentifier
	case errors.Is(err, domain.ErrMissingConfiguration):
		return exitMissingConfiguration
	case errors.Is(err, domain.ErrNoData):
		return exitNoData
	case errors.As(err, &upstreamErr):
		return exitUpstream
	default:
		return exitFailure
	}
}
