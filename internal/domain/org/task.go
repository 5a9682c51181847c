package org

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Task struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"column:name;size:200;not null" json:"name"`
	Description string          `gorm:"column:description;type:text" json:"description,omitempty"`
	Type        string          `gorm:"column:type;size:50" json:"type,omitempty"`
	Status      string          `gorm:"column:status;size:30;default:'not started'" json:"status"`
	Priority    string          `gorm:"column:priority;size:20;default:'medium'" json:"priority"`
	Start       *datatypes.Date `gorm:"column:start" json:"start,omitempty"`
	End         *datatypes.Date `gorm:"column:end" json:"end,omitempty"`
	// ProjectID is not enforced; the project may be gone.
	ProjectID *int64 `gorm:"column:project_id;index" json:"project_id,omitempty"`

	Assignees []*TaskAssignee `gorm:"foreignKey:TaskID;references:ID" json:"assignees,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Task) TableName() string { return "tasks" }

// TaskAssignee attaches a person to a task with a RACI role.
type TaskAssignee struct {
	TaskID   int64  `gorm:"column:task_id;primaryKey" json:"task_id"`
	PersonID int64  `gorm:"column:person_id;primaryKey;index" json:"person_id"`
	Role     string `gorm:"column:role;size:50;not null;default:'Responsible'" json:"role"`
}

func (TaskAssignee) TableName() string { return "task_assignees" }
