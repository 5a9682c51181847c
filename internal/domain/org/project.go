package org

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"column:name;size:200;not null" json:"name"`
	Description string          `gorm:"column:description;type:text" json:"description,omitempty"`
	Status      string          `gorm:"column:status;size:50;not null;default:'Planned'" json:"status"`
	StartDate   *datatypes.Date `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate     *datatypes.Date `gorm:"column:end_date" json:"end_date,omitempty"`
	IsArchived  bool            `gorm:"column:is_archived;not null;default:false" json:"is_archived"`

	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Project) TableName() string { return "projects" }

// ProjectLead attaches a person to a project with a RACI role.
type ProjectLead struct {
	ProjectID int64  `gorm:"column:project_id;primaryKey" json:"project_id"`
	PersonID  int64  `gorm:"column:person_id;primaryKey;index" json:"person_id"`
	Role      string `gorm:"column:role;size:50;not null;default:'Responsible'" json:"role"`
}

func (ProjectLead) TableName() string { return "project_leads" }

// ProjectGroup places a project inside a group.
type ProjectGroup struct {
	ProjectID int64 `gorm:"column:project_id;primaryKey" json:"project_id"`
	GroupID   int64 `gorm:"column:group_id;primaryKey;index" json:"group_id"`
}

func (ProjectGroup) TableName() string { return "project_group" }
