package app

import (
	"github.com/yungbote/person-api/internal/http"
	httpH "github.com/yungbote/person-api/internal/http/handlers"
	"github.com/yungbote/person-api/internal/observability"
	"github.com/yungbote/person-api/internal/platform/logger"
)

type Handlers struct {
	Health  *httpH.HealthHandler
	Person  *httpH.PersonHandler
	Address *httpH.AddressHandler
	Report  *httpH.ReportHandler
}

func wireHandlers(log *logger.Logger, services Services, store httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(store),
		Person:  httpH.NewPersonHandler(services.Person),
		Address: httpH.NewAddressHandler(services.Address),
		Report:  httpH.NewReportHandler(services.Person),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:              log,
		Metrics:          metrics,
		Tracing:          cfg.Otel.Enabled,
		ServiceName:      cfg.Otel.ServiceName,
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
		RateLimitRPS:     cfg.HTTP.RateLimitRPS,
		RateLimitBurst:   cfg.HTTP.RateLimitBurst,
		HealthHandler:    handlers.Health,
		PersonHandler:    handlers.Person,
		AddressHandler:   handlers.Address,
		ReportHandler:    handlers.Report,
	})
}
