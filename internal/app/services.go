package app

import (
	"github.com/yungbote/orggraph-backend/internal/data/graphsource"
	"github.com/yungbote/orggraph-backend/internal/observability"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
	"github.com/yungbote/orggraph-backend/internal/services"
)

type Services struct {
	Graph services.GraphService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	source := graphsource.New(reposet, log)
	return Services{
		Graph: services.NewGraphService(source, log, metrics, cfg.Graph),
	}
}
