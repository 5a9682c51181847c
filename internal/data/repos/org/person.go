package org

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orggraph-backend/internal/domain"
	"github.com/yungbote/orggraph-backend/internal/platform/dbctx"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

type PersonRepo interface {
	Create(dbc dbctx.Context, people []*types.Person) ([]*types.Person, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Person, error)
	List(dbc dbctx.Context) ([]*types.Person, error)
}

type personRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPersonRepo(db *gorm.DB, baseLog *logger.Logger) PersonRepo {
	return &personRepo{db: db, log: baseLog.With("repo", "PersonRepo")}
}

func (r *personRepo) Create(dbc dbctx.Context, people []*types.Person) ([]*types.Person, error) {
	return create(dbc, r.db, people)
}

func (r *personRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Person, error) {
	return findIn[types.Person](dbc, r.db, "id", ids, "id ASC")
}

func (r *personRepo) List(dbc dbctx.Context) ([]*types.Person, error) {
	return findAll[types.Person](dbc, r.db, "id ASC")
}
