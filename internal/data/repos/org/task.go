package org

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orggraph-backend/internal/domain"
	"github.com/yungbote/orggraph-backend/internal/platform/dbctx"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

type TaskRepo interface {
	Create(dbc dbctx.Context, tasks []*types.Task) ([]*types.Task, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Task, error)
	GetByProjectIDs(dbc dbctx.Context, projectIDs []int64) ([]*types.Task, error)
	// ListWithAssignees returns every task with Assignees preloaded.
	ListWithAssignees(dbc dbctx.Context) ([]*types.Task, error)
}

type taskRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskRepo(db *gorm.DB, baseLog *logger.Logger) TaskRepo {
	return &taskRepo{db: db, log: baseLog.With("repo", "TaskRepo")}
}

func (r *taskRepo) Create(dbc dbctx.Context, tasks []*types.Task) ([]*types.Task, error) {
	return create(dbc, r.db, tasks)
}

func (r *taskRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Task, error) {
	return findIn[types.Task](dbc, r.db, "id", ids, "id ASC")
}

func (r *taskRepo) GetByProjectIDs(dbc dbctx.Context, projectIDs []int64) ([]*types.Task, error) {
	return findIn[types.Task](dbc, r.db, "project_id", projectIDs, "id ASC")
}

func (r *taskRepo) ListWithAssignees(dbc dbctx.Context) ([]*types.Task, error) {
	out := []*types.Task{}
	if err := dbc.DB(r.db).WithContext(dbc.Ctx).
		Preload("Assignees", func(db *gorm.DB) *gorm.DB {
			return db.Order("person_id ASC")
		}).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
