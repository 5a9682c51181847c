package org

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orggraph-backend/internal/domain"
	"github.com/yungbote/orggraph-backend/internal/platform/dbctx"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

type ProjectRepo interface {
	Create(dbc dbctx.Context, projects []*types.Project) ([]*types.Project, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Project, error)
	List(dbc dbctx.Context) ([]*types.Project, error)
	SoftDelete(dbc dbctx.Context, ids []int64) error
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return &projectRepo{db: db, log: baseLog.With("repo", "ProjectRepo")}
}

func (r *projectRepo) Create(dbc dbctx.Context, projects []*types.Project) ([]*types.Project, error) {
	return create(dbc, r.db, projects)
}

func (r *projectRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Project, error) {
	return findIn[types.Project](dbc, r.db, "id", ids, "id ASC")
}

func (r *projectRepo) List(dbc dbctx.Context) ([]*types.Project, error) {
	return findAll[types.Project](dbc, r.db, "id ASC")
}

// SoftDelete hides projects from every read. Tasks and leads that point at
// them are left in place.
func (r *projectRepo) SoftDelete(dbc dbctx.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return dbc.DB(r.db).WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Delete(&types.Project{}).Error
}
