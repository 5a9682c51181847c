package repos

import (
	"github.com/yungbote/orggraph-backend/internal/data/repos/org"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type PersonRepo = org.PersonRepo
type PersonRelationRepo = org.PersonRelationRepo
type PersonGroupRepo = org.PersonGroupRepo

type ProjectRepo = org.ProjectRepo
type ProjectLeadRepo = org.ProjectLeadRepo
type ProjectGroupRepo = org.ProjectGroupRepo

type TaskRepo = org.TaskRepo
type TaskAssigneeRepo = org.TaskAssigneeRepo

type GroupRepo = org.GroupRepo

func NewPersonRepo(db *gorm.DB, baseLog *logger.Logger) PersonRepo {
	return org.NewPersonRepo(db, baseLog)
}
func NewPersonRelationRepo(db *gorm.DB, baseLog *logger.Logger) PersonRelationRepo {
	return org.NewPersonRelationRepo(db, baseLog)
}
func NewPersonGroupRepo(db *gorm.DB, baseLog *logger.Logger) PersonGroupRepo {
	return org.NewPersonGroupRepo(db, baseLog)
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return org.NewProjectRepo(db, baseLog)
}
func NewProjectLeadRepo(db *gorm.DB, baseLog *logger.Logger) ProjectLeadRepo {
	return org.NewProjectLeadRepo(db, baseLog)
}
func NewProjectGroupRepo(db *gorm.DB, baseLog *logger.Logger) ProjectGroupRepo {
	return org.NewProjectGroupRepo(db, baseLog)
}

func NewTaskRepo(db *gorm.DB, baseLog *logger.Logger) TaskRepo {
	return org.NewTaskRepo(db, baseLog)
}
func NewTaskAssigneeRepo(db *gorm.DB, baseLog *logger.Logger) TaskAssigneeRepo {
	return org.NewTaskAssigneeRepo(db, baseLog)
}

func NewGroupRepo(db *gorm.DB, baseLog *logger.Logger) GroupRepo {
	return org.NewGroupRepo(db, baseLog)
}
