package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/orggraph-backend/internal/http"
	httpH "github.com/yungbote/orggraph-backend/internal/http/handlers"
	"github.com/yungbote/orggraph-backend/internal/observability"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

type Handlers struct {
	Health *httpH.HealthHandler
	Graph  *httpH.GraphHandler
}

func wireHandlers(log *logger.Logger, services Services, db httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(db),
		Graph:  httpH.NewGraphHandler(services.Graph, log),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *gin.Engine {
	routerCfg := http.RouterConfig{
		CORSOrigins:   cfg.CORSOrigins,
		Log:           log,
		Metrics:       metrics,
		GraphHandler:  handlers.Graph,
		HealthHandler: handlers.Health,
	}
	if cfg.Otel.Enabled {
		routerCfg.ServiceName = cfg.Otel.ServiceName
	}
	return http.NewRouter(routerCfg)
}
