package org

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orggraph-backend/internal/domain"
	"github.com/yungbote/orggraph-backend/internal/platform/dbctx"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

type GroupRepo interface {
	Create(dbc dbctx.Context, groups []*types.Group) ([]*types.Group, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Group, error)
	List(dbc dbctx.Context) ([]*types.Group, error)
}

type groupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGroupRepo(db *gorm.DB, baseLog *logger.Logger) GroupRepo {
	return &groupRepo{db: db, log: baseLog.With("repo", "GroupRepo")}
}

func (r *groupRepo) Create(dbc dbctx.Context, groups []*types.Group) ([]*types.Group, error) {
	return create(dbc, r.db, groups)
}

func (r *groupRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Group, error) {
	return findIn[types.Group](dbc, r.db, "id", ids, "id ASC")
}

func (r *groupRepo) List(dbc dbctx.Context) ([]*types.Group, error) {
	return findAll[types.Group](dbc, r.db, "id ASC")
}
