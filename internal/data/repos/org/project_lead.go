package org

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orggraph-backend/internal/domain"
	"github.com/yungbote/orggraph-backend/internal/platform/dbctx"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

type ProjectLeadRepo interface {
	Upsert(dbc dbctx.Context, leads []*types.ProjectLead) error
	List(dbc dbctx.Context) ([]*types.ProjectLead, error)
	GetByProjectIDs(dbc dbctx.Context, projectIDs []int64) ([]*types.ProjectLead, error)
	GetByPersonIDs(dbc dbctx.Context, personIDs []int64) ([]*types.ProjectLead, error)
}

type projectLeadRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectLeadRepo(db *gorm.DB, baseLog *logger.Logger) ProjectLeadRepo {
	return &projectLeadRepo{db: db, log: baseLog.With("repo", "ProjectLeadRepo")}
}

// Upsert adds leads; an existing (project, person) pair keeps its role.
func (r *projectLeadRepo) Upsert(dbc dbctx.Context, leads []*types.ProjectLead) error {
	return link(dbc, r.db, leads)
}

func (r *projectLeadRepo) List(dbc dbctx.Context) ([]*types.ProjectLead, error) {
	return findAll[types.ProjectLead](dbc, r.db, "project_id ASC, person_id ASC")
}

func (r *projectLeadRepo) GetByProjectIDs(dbc dbctx.Context, projectIDs []int64) ([]*types.ProjectLead, error) {
	return findIn[types.ProjectLead](dbc, r.db, "project_id", projectIDs, "project_id ASC, person_id ASC")
}

func (r *projectLeadRepo) GetByPersonIDs(dbc dbctx.Context, personIDs []int64) ([]*types.ProjectLead, error) {
	return findIn[types.ProjectLead](dbc, r.db, "person_id", personIDs, "person_id ASC, project_id ASC")
}
