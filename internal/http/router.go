package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/person-api/internal/http/handlers"
	httpMW "github.com/yungbote/person-api/internal/http/middleware"
	"github.com/yungbote/person-api/internal/observability"
	"github.com/yungbote/person-api/internal/platform/logger"
)

type RouterConfig struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	// Tracing wraps every request in an otel span named after the service.
	Tracing     bool
	ServiceName string

	CORSAllowOrigins []string
	RateLimitRPS     float64
	RateLimitBurst   int

	PersonHandler  *httpH.PersonHandler
	AddressHandler *httpH.AddressHandler
	ReportHandler  *httpH.ReportHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Tracing {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSAllowOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	api.Use(httpMW.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		// Person
		if cfg.PersonHandler != nil {
			api.GET("/person", cfg.PersonHandler.ListPeople)
			api.POST("/person", cfg.PersonHandler.CreatePerson)
			api.GET("/person/:id", cfg.PersonHandler.GetPerson)
			api.PUT("/person/:id", cfg.PersonHandler.UpdatePerson)
			api.DELETE("/person/:id", cfg.PersonHandler.DeletePerson)
		}

		// Address
		if cfg.AddressHandler != nil {
			api.GET("/person/:id/address", cfg.AddressHandler.ListAddresses)
			api.POST("/person/:id/address", cfg.AddressHandler.CreateAddress)
			api.PUT("/person/:id/address/:aid", cfg.AddressHandler.UpdateAddress)
			api.DELETE("/person/:id/address/:aid", cfg.AddressHandler.DeleteAddress)
		}

		// Reporting
		if cfg.ReportHandler != nil {
			api.GET("/report/person/count", cfg.ReportHandler.CountPeople)
		}
	}

	return r
}
