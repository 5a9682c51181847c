package org

import (
	"time"

	"gorm.io/gorm"
)

type Group struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"column:name;size:200;not null" json:"name"`
	ParentID *int64 `gorm:"column:parent_id;index" json:"parent_id,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Group) TableName() string { return "groups" }

// PersonGroup is group membership of a person.
type PersonGroup struct {
	GroupID  int64 `gorm:"column:group_id;primaryKey" json:"group_id"`
	PersonID int64 `gorm:"column:person_id;primaryKey;index" json:"person_id"`
}

func (PersonGroup) TableName() string { return "person_group" }
