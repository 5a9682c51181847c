package org

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orggraph-backend/internal/domain"
	"github.com/yungbote/orggraph-backend/internal/platform/dbctx"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

type TaskAssigneeRepo interface {
	Upsert(dbc dbctx.Context, rows []*types.TaskAssignee) error
	GetByTaskIDs(dbc dbctx.Context, taskIDs []int64) ([]*types.TaskAssignee, error)
	GetByPersonIDs(dbc dbctx.Context, personIDs []int64) ([]*types.TaskAssignee, error)
}

type taskAssigneeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskAssigneeRepo(db *gorm.DB, baseLog *logger.Logger) TaskAssigneeRepo {
	return &taskAssigneeRepo{db: db, log: baseLog.With("repo", "TaskAssigneeRepo")}
}

func (r *taskAssigneeRepo) Upsert(dbc dbctx.Context, rows []*types.TaskAssignee) error {
	return link(dbc, r.db, rows)
}

func (r *taskAssigneeRepo) GetByTaskIDs(dbc dbctx.Context, taskIDs []int64) ([]*types.TaskAssignee, error) {
	return findIn[types.TaskAssignee](dbc, r.db, "task_id", taskIDs, "task_id ASC, person_id ASC")
}

func (r *taskAssigneeRepo) GetByPersonIDs(dbc dbctx.Context, personIDs []int64) ([]*types.TaskAssignee, error) {
	return findIn[types.TaskAssignee](dbc, r.db, "person_id", personIDs, "person_id ASC, task_id ASC")
}
