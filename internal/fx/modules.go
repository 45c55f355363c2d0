package fx

import (
	"smurf-scan/internal/api"
	"smurf-scan/internal/config"
	"smurf-scan/internal/logger"
	"smurf-scan/internal/server"
	"smurf-scan/internal/service"

	"go.uber.org/fx"
)

// CoreModule wires everything a scan needs. The CLI uses it alone.
var CoreModule = fx.Options(
	logger.Module,
	config.Module,
	// api client
	fx.Provide(fx.Annotate(api.NewRiotClient, fx.As(new(service.RiotAPI)))),
	// svc
	fx.Provide(service.NewAccountService),
	fx.Provide(service.NewMatchService),
	fx.Provide(fx.Annotate(service.NewScanService, fx.As(fx.Self()), fx.As(new(server.Scanner)))),
)

var Module = fx.Options(
	CoreModule,
	// server
	fx.Provide(server.NewScanServer),
)
