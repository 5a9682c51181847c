package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/orggraph-backend/internal/domain"
)

func SeedPerson(tb testing.TB, ctx context.Context, tx *gorm.DB, name, email string) *types.Person {
	tb.Helper()
	p := &types.Person{Name: name, Email: email}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed person: %v", err)
	}
	return p
}

func SeedProject(tb testing.TB, ctx context.Context, tx *gorm.DB, name, status string) *types.Project {
	tb.Helper()
	p := &types.Project{
		Name:        name,
		Description: name + " description",
		Status:      status,
		StartDate:   PtrDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}

func SeedTask(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, projectID *int64) *types.Task {
	tb.Helper()
	t := &types.Task{Name: name, Status: "in progress", Priority: "high", ProjectID: projectID}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed task: %v", err)
	}
	return t
}

func SeedGroup(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, parentID *int64) *types.Group {
	tb.Helper()
	g := &types.Group{Name: name, ParentID: parentID}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed group: %v", err)
	}
	return g
}

func SeedRelation(tb testing.TB, ctx context.Context, tx *gorm.DB, fromID, toID int64, relType, note string) *types.PersonRelation {
	tb.Helper()
	r := &types.PersonRelation{FromPersonID: fromID, ToPersonID: toID, Type: relType, Note: note}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed relation: %v", err)
	}
	return r
}

func SeedLead(tb testing.TB, ctx context.Context, tx *gorm.DB, projectID, personID int64, role string) {
	tb.Helper()
	if err := tx.WithContext(ctx).Create(&types.ProjectLead{ProjectID: projectID, PersonID: personID, Role: role}).Error; err != nil {
		tb.Fatalf("seed lead: %v", err)
	}
}

func SeedAssignee(tb testing.TB, ctx context.Context, tx *gorm.DB, taskID, personID int64, role string) {
	tb.Helper()
	if err := tx.WithContext(ctx).Create(&types.TaskAssignee{TaskID: taskID, PersonID: personID, Role: role}).Error; err != nil {
		tb.Fatalf("seed assignee: %v", err)
	}
}

func SeedMembership(tb testing.TB, ctx context.Context, tx *gorm.DB, groupID, personID int64) {
	tb.Helper()
	if err := tx.WithContext(ctx).Create(&types.PersonGroup{GroupID: groupID, PersonID: personID}).Error; err != nil {
		tb.Fatalf("seed membership: %v", err)
	}
}

func SeedProjectGroup(tb testing.TB, ctx context.Context, tx *gorm.DB, projectID, groupID int64) {
	tb.Helper()
	if err := tx.WithContext(ctx).Create(&types.ProjectGroup{ProjectID: projectID, GroupID: groupID}).Error; err != nil {
		tb.Fatalf("seed project group: %v", err)
	}
}

func PtrInt64(v int64) *int64 { return &v }

func PtrDate(v time.Time) *datatypes.Date {
	d := datatypes.Date(v)
	return &d
}
