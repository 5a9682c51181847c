package graph

import (
	"context"

	types "github.com/yungbote/orggraph-backend/internal/domain"
)

// EntityReader loads entities. List* reads are unfiltered; *ByIDs reads
// return only the rows that exist, in id order.
type EntityReader interface {
	ListPeople(ctx context.Context) ([]*types.Person, error)
	ListProjects(ctx context.Context) ([]*types.Project, error)
	// ListTasks returns tasks with Assignees loaded.
	ListTasks(ctx context.Context) ([]*types.Task, error)
	ListGroups(ctx context.Context) ([]*types.Group, error)

	PeopleByIDs(ctx context.Context, ids []int64) ([]*types.Person, error)
	ProjectsByIDs(ctx context.Context, ids []int64) ([]*types.Project, error)
	TasksByIDs(ctx context.Context, ids []int64) ([]*types.Task, error)
	TasksByProjectIDs(ctx context.Context, projectIDs []int64) ([]*types.Task, error)
	GroupsByIDs(ctx context.Context, ids []int64) ([]*types.Group, error)
}

// AssociationReader loads association rows by owning id set.
type AssociationReader interface {
	ListPersonRelations(ctx context.Context) ([]*types.PersonRelation, error)
	ListProjectLeads(ctx context.Context) ([]*types.ProjectLead, error)
	ListPersonGroups(ctx context.Context) ([]*types.PersonGroup, error)
	ListProjectGroups(ctx context.Context) ([]*types.ProjectGroup, error)

	RelationsFromPeople(ctx context.Context, personIDs []int64) ([]*types.PersonRelation, error)
	RelationsToPeople(ctx context.Context, personIDs []int64) ([]*types.PersonRelation, error)
	ProjectLeadsByProjectIDs(ctx context.Context, projectIDs []int64) ([]*types.ProjectLead, error)
	ProjectLeadsByPersonIDs(ctx context.Context, personIDs []int64) ([]*types.ProjectLead, error)
	TaskAssigneesByTaskIDs(ctx context.Context, taskIDs []int64) ([]*types.TaskAssignee, error)
	TaskAssigneesByPersonIDs(ctx context.Context, personIDs []int64) ([]*types.TaskAssignee, error)
	PersonGroupsByPersonIDs(ctx context.Context, personIDs []int64) ([]*types.PersonGroup, error)
	PersonGroupsByGroupIDs(ctx context.Context, groupIDs []int64) ([]*types.PersonGroup, error)
	ProjectGroupsByProjectIDs(ctx context.Context, projectIDs []int64) ([]*types.ProjectGroup, error)
	ProjectGroupsByGroupIDs(ctx context.Context, groupIDs []int64) ([]*types.ProjectGroup, error)
}

// Store is everything the builders read.
type Store interface {
	EntityReader
	AssociationReader
}
