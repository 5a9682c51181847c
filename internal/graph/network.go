package graph

import (
	"context"

	types "github.com/yungbote/orggraph-backend/internal/domain"
)

// BuildNetwork materializes every entity and association in the store.
// Nodes are emitted first (people, projects, tasks, groups), then explicit
// edges, then collaboration edges. Associations that point at rows which were
// not loaded are dropped.
func BuildNetwork(ctx context.Context, store Store) (*Response, error) {
	people, err := store.ListPeople(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := store.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := store.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	b := newBuilder(Unlimited, Unlimited)
	for _, p := range people {
		b.nodes.Add(personNode(p))
	}
	for _, p := range projects {
		b.nodes.Add(projectNode(p))
	}
	for _, t := range tasks {
		b.nodes.Add(taskNode(t))
	}
	for _, g := range groups {
		b.nodes.Add(groupNode(g))
	}

	rels, err := store.ListPersonRelations(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range rels {
		b.edges.Add(personID(r.FromPersonID), personID(r.ToPersonID), RelationEdgeType(r.Type), relationMeta(r))
	}

	leads, err := store.ListProjectLeads(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range leads {
		b.edges.Add(personID(l.PersonID), projectID(l.ProjectID), RACIEdgeType(l.Role), roleMeta(l.Role))
	}

	var assignees []*types.TaskAssignee
	for _, t := range tasks {
		if t.ProjectID != nil {
			b.edges.Add(taskID(t.ID), projectID(*t.ProjectID), EdgePartOf, nil)
		}
		for _, a := range t.Assignees {
			if a == nil {
				continue
			}
			b.edges.Add(personID(a.PersonID), taskID(t.ID), AssigneeEdgeType(a.Role), roleMeta(a.Role))
			assignees = append(assignees, &types.TaskAssignee{TaskID: t.ID, PersonID: a.PersonID, Role: a.Role})
		}
	}

	memberships, err := store.ListPersonGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range memberships {
		b.edges.Add(personID(m.PersonID), groupID(m.GroupID), EdgeMemberOf, nil)
	}

	projectGroups, err := store.ListProjectGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, pg := range projectGroups {
		b.edges.Add(projectID(pg.ProjectID), groupID(pg.GroupID), EdgeInGroup, nil)
	}

	inferCollaboration(b, EdgeCollabTask, KindTask, assigneeCoMembers(assignees))
	inferCollaboration(b, EdgeCollabProject, KindProject, leadCoMembers(leads))

	return newResponse(b.graph()), nil
}
