package org

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orggraph-backend/internal/domain"
	"github.com/yungbote/orggraph-backend/internal/platform/dbctx"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

// PersonRelationRepo reads directed person-to-person links from either end.
type PersonRelationRepo interface {
	Create(dbc dbctx.Context, rels []*types.PersonRelation) ([]*types.PersonRelation, error)
	List(dbc dbctx.Context) ([]*types.PersonRelation, error)
	GetByFromPersonIDs(dbc dbctx.Context, personIDs []int64) ([]*types.PersonRelation, error)
	GetByToPersonIDs(dbc dbctx.Context, personIDs []int64) ([]*types.PersonRelation, error)
}

type personRelationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPersonRelationRepo(db *gorm.DB, baseLog *logger.Logger) PersonRelationRepo {
	return &personRelationRepo{db: db, log: baseLog.With("repo", "PersonRelationRepo")}
}

func (r *personRelationRepo) Create(dbc dbctx.Context, rels []*types.PersonRelation) ([]*types.PersonRelation, error) {
	return create(dbc, r.db, rels)
}

func (r *personRelationRepo) List(dbc dbctx.Context) ([]*types.PersonRelation, error) {
	return findAll[types.PersonRelation](dbc, r.db, "id ASC")
}

func (r *personRelationRepo) GetByFromPersonIDs(dbc dbctx.Context, personIDs []int64) ([]*types.PersonRelation, error) {
	return findIn[types.PersonRelation](dbc, r.db, "from_person_id", personIDs, "id ASC")
}

func (r *personRelationRepo) GetByToPersonIDs(dbc dbctx.Context, personIDs []int64) ([]*types.PersonRelation, error) {
	return findIn[types.PersonRelation](dbc, r.db, "to_person_id", personIDs, "id ASC")
}
