package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/orggraph-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	err := db.AutoMigrate(
		// Entities
		&types.Person{},
		&types.Project{},
		&types.Task{},
		&types.Group{},

		// Associations
		&types.PersonRelation{},
		&types.ProjectLead{},
		&types.TaskAssignee{},
		&types.PersonGroup{},
		&types.ProjectGroup{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
