package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/orggraph-backend/internal/data/graphsource"
	"github.com/yungbote/orggraph-backend/internal/data/repos"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

type Repos = graphsource.Repos

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		People:        repos.NewPersonRepo(db, log),
		Relations:     repos.NewPersonRelationRepo(db, log),
		Projects:      repos.NewProjectRepo(db, log),
		ProjectLeads:  repos.NewProjectLeadRepo(db, log),
		ProjectGroups: repos.NewProjectGroupRepo(db, log),
		Tasks:         repos.NewTaskRepo(db, log),
		TaskAssignees: repos.NewTaskAssigneeRepo(db, log),
		Groups:        repos.NewGroupRepo(db, log),
		PersonGroups:  repos.NewPersonGroupRepo(db, log),
	}
}
