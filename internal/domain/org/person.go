package org

import (
	"time"

	"gorm.io/gorm"
)

// Person is an individual that can lead projects, be assigned to tasks and belong to groups.
type Person struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"column:name;size:200;not null" json:"name"`
	Email string `gorm:"column:email;size:200;index" json:"email,omitempty"`
	Notes string `gorm:"column:notes;type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Person) TableName() string { return "people" }

// PersonRelation is a directed, typed link between two people (manages, mentor, peer, ...).
type PersonRelation struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FromPersonID int64  `gorm:"column:from_person_id;not null;index;uniqueIndex:idx_person_relation_edge,priority:1" json:"from_person_id"`
	ToPersonID   int64  `gorm:"column:to_person_id;not null;index;uniqueIndex:idx_person_relation_edge,priority:2" json:"to_person_id"`
	Type         string `gorm:"column:type;size:40;not null;default:'manages';uniqueIndex:idx_person_relation_edge,priority:3" json:"type"`
	Note         string `gorm:"column:note;type:text" json:"note,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PersonRelation) TableName() string { return "person_relations" }
