package org

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orggraph-backend/internal/domain"
	"github.com/yungbote/orggraph-backend/internal/platform/dbctx"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

type PersonGroupRepo interface {
	Link(dbc dbctx.Context, rows []*types.PersonGroup) error
	List(dbc dbctx.Context) ([]*types.PersonGroup, error)
	GetByPersonIDs(dbc dbctx.Context, personIDs []int64) ([]*types.PersonGroup, error)
	GetByGroupIDs(dbc dbctx.Context, groupIDs []int64) ([]*types.PersonGroup, error)
}

type personGroupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPersonGroupRepo(db *gorm.DB, baseLog *logger.Logger) PersonGroupRepo {
	return &personGroupRepo{db: db, log: baseLog.With("repo", "PersonGroupRepo")}
}

func (r *personGroupRepo) Link(dbc dbctx.Context, rows []*types.PersonGroup) error {
	return link(dbc, r.db, rows)
}

func (r *personGroupRepo) List(dbc dbctx.Context) ([]*types.PersonGroup, error) {
	return findAll[types.PersonGroup](dbc, r.db, "group_id ASC, person_id ASC")
}

func (r *personGroupRepo) GetByPersonIDs(dbc dbctx.Context, personIDs []int64) ([]*types.PersonGroup, error) {
	return findIn[types.PersonGroup](dbc, r.db, "person_id", personIDs, "person_id ASC, group_id ASC")
}

func (r *personGroupRepo) GetByGroupIDs(dbc dbctx.Context, groupIDs []int64) ([]*types.PersonGroup, error) {
	return findIn[types.PersonGroup](dbc, r.db, "group_id", groupIDs, "group_id ASC, person_id ASC")
}
