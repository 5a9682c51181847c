package org

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/orggraph-backend/internal/platform/dbctx"
)

// findIn loads rows whose column is in ids. An empty id set returns no rows
// without querying.
func findIn[T any](dbc dbctx.Context, db *gorm.DB, column string, ids []int64, order string) ([]*T, error) {
	out := []*T{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.DB(db).WithContext(dbc.Ctx).
		Where(column+" IN ?", ids).
		Order(order).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func findAll[T any](dbc dbctx.Context, db *gorm.DB, order string) ([]*T, error) {
	out := []*T{}
	if err := dbc.DB(db).WithContext(dbc.Ctx).Order(order).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func create[T any](dbc dbctx.Context, db *gorm.DB, rows []*T) ([]*T, error) {
	if len(rows) == 0 {
		return []*T{}, nil
	}
	if err := dbc.DB(db).WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// link inserts association rows, ignoring ones that already exist.
func link[T any](dbc dbctx.Context, db *gorm.DB, rows []*T) error {
	if len(rows) == 0 {
		return nil
	}
	return dbc.DB(db).WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}
