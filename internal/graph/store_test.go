package graph

import (
	"context"
	"slices"

	types "github.com/yungbote/orggraph-backend/internal/domain"
)

// memStore is an in-memory Store. err, when set, is returned by every read.
type memStore struct {
	people        []*types.Person
	projects      []*types.Project
	tasks         []*types.Task
	groups        []*types.Group
	relations     []*types.PersonRelation
	leads         []*types.ProjectLead
	assignees     []*types.TaskAssignee
	personGroups  []*types.PersonGroup
	projectGroups []*types.ProjectGroup

	err   error
	calls map[string]int
}

func (s *memStore) hit(op string) error {
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[op]++
	return s.err
}

func pick[T any](rows []*T, ids []int64, key func(*T) int64) []*T {
	out := []*T{}
	for _, r := range rows {
		if slices.Contains(ids, key(r)) {
			out = append(out, r)
		}
	}
	return out
}

func (s *memStore) ListPeople(ctx context.Context) ([]*types.Person, error) {
	return s.people, s.hit("ListPeople")
}

func (s *memStore) ListProjects(ctx context.Context) ([]*types.Project, error) {
	return s.projects, s.hit("ListProjects")
}

func (s *memStore) ListTasks(ctx context.Context) ([]*types.Task, error) {
	if err := s.hit("ListTasks"); err != nil {
		return nil, err
	}
	out := make([]*types.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		cp := *t
		cp.Assignees = pick(s.assignees, []int64{t.ID}, func(a *types.TaskAssignee) int64 { return a.TaskID })
		out = append(out, &cp)
	}
	return out, nil
}

func (s *memStore) ListGroups(ctx context.Context) ([]*types.Group, error) {
	return s.groups, s.hit("ListGroups")
}

func (s *memStore) PeopleByIDs(ctx context.Context, ids []int64) ([]*types.Person, error) {
	return pick(s.people, ids, func(p *types.Person) int64 { return p.ID }), s.hit("PeopleByIDs")
}

func (s *memStore) ProjectsByIDs(ctx context.Context, ids []int64) ([]*types.Project, error) {
	return pick(s.projects, ids, func(p *types.Project) int64 { return p.ID }), s.hit("ProjectsByIDs")
}

func (s *memStore) TasksByIDs(ctx context.Context, ids []int64) ([]*types.Task, error) {
	return pick(s.tasks, ids, func(t *types.Task) int64 { return t.ID }), s.hit("TasksByIDs")
}

func (s *memStore) TasksByProjectIDs(ctx context.Context, ids []int64) ([]*types.Task, error) {
	return pick(s.tasks, ids, func(t *types.Task) int64 {
		if t.ProjectID == nil {
			return 0
		}
		return *t.ProjectID
	}), s.hit("TasksByProjectIDs")
}

func (s *memStore) GroupsByIDs(ctx context.Context, ids []int64) ([]*types.Group, error) {
	return pick(s.groups, ids, func(g *types.Group) int64 { return g.ID }), s.hit("GroupsByIDs")
}

func (s *memStore) ListPersonRelations(ctx context.Context) ([]*types.PersonRelation, error) {
	return s.relations, s.hit("ListPersonRelations")
}

func (s *memStore) ListProjectLeads(ctx context.Context) ([]*types.ProjectLead, error) {
	return s.leads, s.hit("ListProjectLeads")
}

func (s *memStore) ListPersonGroups(ctx context.Context) ([]*types.PersonGroup, error) {
	return s.personGroups, s.hit("ListPersonGroups")
}

func (s *memStore) ListProjectGroups(ctx context.Context) ([]*types.ProjectGroup, error) {
	return s.projectGroups, s.hit("ListProjectGroups")
}

func (s *memStore) RelationsFromPeople(ctx context.Context, ids []int64) ([]*types.PersonRelation, error) {
	return pick(s.relations, ids, func(r *types.PersonRelation) int64 { return r.FromPersonID }), s.hit("RelationsFromPeople")
}

func (s *memStore) RelationsToPeople(ctx context.Context, ids []int64) ([]*types.PersonRelation, error) {
	return pick(s.relations, ids, func(r *types.PersonRelation) int64 { return r.ToPersonID }), s.hit("RelationsToPeople")
}

func (s *memStore) ProjectLeadsByProjectIDs(ctx context.Context, ids []int64) ([]*types.ProjectLead, error) {
	return pick(s.leads, ids, func(l *types.ProjectLead) int64 { return l.ProjectID }), s.hit("ProjectLeadsByProjectIDs")
}

func (s *memStore) ProjectLeadsByPersonIDs(ctx context.Context, ids []int64) ([]*types.ProjectLead, error) {
	return pick(s.leads, ids, func(l *types.ProjectLead) int64 { return l.PersonID }), s.hit("ProjectLeadsByPersonIDs")
}

func (s *memStore) TaskAssigneesByTaskIDs(ctx context.Context, ids []int64) ([]*types.TaskAssignee, error) {
	return pick(s.assignees, ids, func(a *types.TaskAssignee) int64 { return a.TaskID }), s.hit("TaskAssigneesByTaskIDs")
}

func (s *memStore) TaskAssigneesByPersonIDs(ctx context.Context, ids []int64) ([]*types.TaskAssignee, error) {
	return pick(s.assignees, ids, func(a *types.TaskAssignee) int64 { return a.PersonID }), s.hit("TaskAssigneesByPersonIDs")
}

func (s *memStore) PersonGroupsByPersonIDs(ctx context.Context, ids []int64) ([]*types.PersonGroup, error) {
	return pick(s.personGroups, ids, func(m *types.PersonGroup) int64 { return m.PersonID }), s.hit("PersonGroupsByPersonIDs")
}

func (s *memStore) PersonGroupsByGroupIDs(ctx context.Context, ids []int64) ([]*types.PersonGroup, error) {
	return pick(s.personGroups, ids, func(m *types.PersonGroup) int64 { return m.GroupID }), s.hit("PersonGroupsByGroupIDs")
}

func (s *memStore) ProjectGroupsByProjectIDs(ctx context.Context, ids []int64) ([]*types.ProjectGroup, error) {
	return pick(s.projectGroups, ids, func(r *types.ProjectGroup) int64 { return r.ProjectID }), s.hit("ProjectGroupsByProjectIDs")
}

func (s *memStore) ProjectGroupsByGroupIDs(ctx context.Context, ids []int64) ([]*types.ProjectGroup, error) {
	return pick(s.projectGroups, ids, func(r *types.ProjectGroup) int64 { return r.GroupID }), s.hit("ProjectGroupsByGroupIDs")
}

func ptr[T any](v T) *T { return &v }

// sampleStore: people 1..4, project 1 led by 1 (R) and 2 (A), task 10 in
// project 1 assigned to 2 and 3, group 5 holding person 4 and project 1,
// and person 1 manages person 4.
func sampleStore() *memStore {
	return &memStore{
		people: []*types.Person{
			{ID: 1, Name: "Ada", Email: "ada@example.com"},
			{ID: 2, Name: "Ben"},
			{ID: 3, Name: "Cy"},
			{ID: 4, Name: "Dee"},
		},
		projects: []*types.Project{{ID: 1, Name: "Apollo", Status: "Active", Description: "moon"}},
		tasks: []*types.Task{
			{ID: 10, Name: "Launch", Status: "in progress", Priority: "high", ProjectID: ptr[int64](1)},
		},
		groups:    []*types.Group{{ID: 5, Name: "Eng"}},
		relations: []*types.PersonRelation{{ID: 1, FromPersonID: 1, ToPersonID: 4, Type: "manages", Note: "since 2020"}},
		leads: []*types.ProjectLead{
			{ProjectID: 1, PersonID: 1, Role: "Responsible"},
			{ProjectID: 1, PersonID: 2, Role: "a"},
		},
		assignees: []*types.TaskAssignee{
			{TaskID: 10, PersonID: 2, Role: "r"},
			{TaskID: 10, PersonID: 3, Role: "Consulted"},
		},
		personGroups:  []*types.PersonGroup{{GroupID: 5, PersonID: 4}},
		projectGroups: []*types.ProjectGroup{{ProjectID: 1, GroupID: 5}},
	}
}

func nodeIDs(g Graph) []string {
	out := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		out = append(out, n.Data.ID)
	}
	return out
}

func hasEdge(g Graph, source, target, etype string) bool {
	for _, e := range g.Edges {
		if e.Data.Source == source && e.Data.Target == target && e.Data.Type == etype {
			return true
		}
	}
	return false
}

// assertClosed fails when an edge has an endpoint outside the node set or
// when a node or edge key repeats.
func assertClosed(t interface {
	Helper()
	Fatalf(string, ...any)
}, g Graph) {
	t.Helper()
	nodes := map[string]bool{}
	for _, n := range g.Nodes {
		if nodes[n.Data.ID] {
			t.Fatalf("duplicate node %s", n.Data.ID)
		}
		nodes[n.Data.ID] = true
	}
	edges := map[[3]string]bool{}
	for _, e := range g.Edges {
		if !nodes[e.Data.Source] || !nodes[e.Data.Target] {
			t.Fatalf("dangling edge %s -> %s (%s)", e.Data.Source, e.Data.Target, e.Data.Type)
		}
		key := [3]string{e.Data.Source, e.Data.Target, e.Data.Type}
		if edges[key] {
			t.Fatalf("duplicate edge %v", key)
		}
		edges[key] = true
	}
}
