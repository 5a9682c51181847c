package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/orggraph-backend/internal/http/handlers"
	httpMW "github.com/yungbote/orggraph-backend/internal/http/middleware"
	"github.com/yungbote/orggraph-backend/internal/observability"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

type RouterConfig struct {
	ServiceName string
	CORSOrigins []string
	Log         *logger.Logger
	Metrics     *observability.Metrics

	GraphHandler  *httpH.GraphHandler
	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins...))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	// Metrics
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Graph
		if cfg.GraphHandler != nil {
			api.GET("/graph/network", cfg.GraphHandler.Network)
			api.POST("/graph/subgraph", cfg.GraphHandler.Subgraph)
			api.GET("/graph/ego/:node_id", cfg.GraphHandler.Ego)
			api.POST("/graph/prompt-context", cfg.GraphHandler.PromptContext)
		}
	}

	return r
}
