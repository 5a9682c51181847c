package org

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orggraph-backend/internal/domain"
	"github.com/yungbote/orggraph-backend/internal/platform/dbctx"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

type ProjectGroupRepo interface {
	Link(dbc dbctx.Context, rows []*types.ProjectGroup) error
	List(dbc dbctx.Context) ([]*types.ProjectGroup, error)
	GetByProjectIDs(dbc dbctx.Context, projectIDs []int64) ([]*types.ProjectGroup, error)
	GetByGroupIDs(dbc dbctx.Context, groupIDs []int64) ([]*types.ProjectGroup, error)
}

type projectGroupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectGroupRepo(db *gorm.DB, baseLog *logger.Logger) ProjectGroupRepo {
	return &projectGroupRepo{db: db, log: baseLog.With("repo", "ProjectGroupRepo")}
}

func (r *projectGroupRepo) Link(dbc dbctx.Context, rows []*types.ProjectGroup) error {
	return link(dbc, r.db, rows)
}

func (r *projectGroupRepo) List(dbc dbctx.Context) ([]*types.ProjectGroup, error) {
	return findAll[types.ProjectGroup](dbc, r.db, "group_id ASC, project_id ASC")
}

func (r *projectGroupRepo) GetByProjectIDs(dbc dbctx.Context, projectIDs []int64) ([]*types.ProjectGroup, error) {
	return findIn[types.ProjectGroup](dbc, r.db, "project_id", projectIDs, "project_id ASC, group_id ASC")
}

func (r *projectGroupRepo) GetByGroupIDs(dbc dbctx.Context, groupIDs []int64) ([]*types.ProjectGroup, error) {
	return findIn[types.ProjectGroup](dbc, r.db, "group_id", groupIDs, "group_id ASC, project_id ASC")
}
