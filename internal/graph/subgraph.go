package graph

import (
	"context"
	"slices"

	types "github.com/yungbote/orggraph-backend/internal/domain"
)

const (
	DefaultDegrees  = 1
	DefaultMaxNodes = 2000
	DefaultMaxEdges = 4000
)

// SubgraphOptions bounds a centered traversal. MaxNodes and MaxEdges are hard
// caps; zero admits nothing and a negative value (Unlimited) disables the cap.
type SubgraphOptions struct {
	Centers       []string
	Degrees       int
	MaxNodes      int
	MaxEdges      int
	IncludeCollab bool
}

// frontier holds the ids to expand per kind.
type frontier map[Kind]map[int64]struct{}

func newFrontier() frontier {
	f := frontier{}
	for _, k := range Kinds {
		f[k] = map[int64]struct{}{}
	}
	return f
}

func (f frontier) add(kind Kind, id int64) { f[kind][id] = struct{}{} }

// ids returns the sorted ids of one kind.
func (f frontier) ids(kind Kind) []int64 {
	out := make([]int64, 0, len(f[kind]))
	for id := range f[kind] {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (f frontier) empty() bool {
	for _, set := range f {
		if len(set) > 0 {
			return false
		}
	}
	return true
}

type traversal struct {
	store Store
	b     *builder
}

// BuildSubgraph expands opts.Degrees hops out from the centers. Invalid
// center tokens and centers missing from the store are skipped; with no
// usable center the result is empty but well formed.
func BuildSubgraph(ctx context.Context, store Store, opts SubgraphOptions) (*Response, error) {
	t := &traversal{store: store, b: newBuilder(opts.MaxNodes, opts.MaxEdges)}

	seed := newFrontier()
	for _, token := range opts.Centers {
		ref, err := ParseID(token)
		if err != nil {
			continue
		}
		seed.add(ref.Kind, ref.ID)
	}
	if seed.empty() {
		return newResponse(t.b.graph()), nil
	}

	front, err := t.materializeCenters(ctx, seed)
	if err != nil {
		return nil, err
	}

	for hop := 0; hop < opts.Degrees; hop++ {
		if front.empty() || t.b.exhausted() {
			break
		}
		next := newFrontier()
		if ids := front.ids(KindProject); len(ids) > 0 {
			if err := t.expandProjects(ctx, ids, next); err != nil {
				return nil, err
			}
		}
		if ids := front.ids(KindTask); len(ids) > 0 {
			if err := t.expandTasks(ctx, ids, next); err != nil {
				return nil, err
			}
		}
		if ids := front.ids(KindPerson); len(ids) > 0 {
			if err := t.expandPeople(ctx, ids, next); err != nil {
				return nil, err
			}
		}
		if ids := front.ids(KindGroup); len(ids) > 0 {
			if err := t.expandGroups(ctx, ids, next); err != nil {
				return nil, err
			}
		}
		front = next
	}

	if opts.IncludeCollab && t.b.nodes.Len() > 0 {
		if err := t.collaboration(ctx); err != nil {
			return nil, err
		}
	}
	return newResponse(t.b.graph()), nil
}

// materializeCenters loads the seeded entities and returns the frontier of
// those that exist and were admitted.
func (t *traversal) materializeCenters(ctx context.Context, seed frontier) (frontier, error) {
	front := newFrontier()
	admit := t.admitInto(front)
	if ids := seed.ids(KindProject); len(ids) > 0 {
		rows, err := t.store.ProjectsByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, p := range rows {
			admit(projectNode(p))
		}
	}
	if ids := seed.ids(KindTask); len(ids) > 0 {
		rows, err := t.store.TasksByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, task := range rows {
			admit(taskNode(task))
		}
	}
	if ids := seed.ids(KindPerson); len(ids) > 0 {
		rows, err := t.store.PeopleByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, p := range rows {
			admit(personNode(p))
		}
	}
	if ids := seed.ids(KindGroup); len(ids) > 0 {
		rows, err := t.store.GroupsByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, g := range rows {
			admit(groupNode(g))
		}
	}
	return front, nil
}

// admitInto returns a func that adds a node and queues it on next when it is
// new to the result.
func (t *traversal) admitInto(next frontier) func(NodeRef, NodeData) {
	return func(ref NodeRef, data NodeData) {
		if t.b.nodes.Add(ref, data) {
			next.add(ref.Kind, ref.ID)
		}
	}
}

func (t *traversal) expandProjects(ctx context.Context, ids []int64, next frontier) error {
	admit := t.admitInto(next)
	tasks, err := t.store.TasksByProjectIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, task := range tasks {
		admit(taskNode(task))
		if task.ProjectID != nil {
			t.b.edges.Add(taskID(task.ID), projectID(*task.ProjectID), EdgePartOf, nil)
		}
	}

	if err := t.linkLeads(ctx, ids, next); err != nil {
		return err
	}

	rows, err := t.store.ProjectGroupsByProjectIDs(ctx, ids)
	if err != nil {
		return err
	}
	groups, err := t.loadGroups(ctx, keysOf(rows, func(r *types.ProjectGroup) int64 { return r.GroupID }))
	if err != nil {
		return err
	}
	for _, r := range rows {
		g, ok := groups[r.GroupID]
		if !ok {
			continue
		}
		admit(groupNode(g))
		t.b.edges.Add(projectID(r.ProjectID), groupID(g.ID), EdgeInGroup, nil)
	}
	return nil
}

// linkLeads adds the leads of the given projects with their RACI edges.
func (t *traversal) linkLeads(ctx context.Context, projectIDs []int64, next frontier) error {
	admit := t.admitInto(next)
	leads, err := t.store.ProjectLeadsByProjectIDs(ctx, projectIDs)
	if err != nil {
		return err
	}
	people, err := t.loadPeople(ctx, keysOf(leads, func(l *types.ProjectLead) int64 { return l.PersonID }))
	if err != nil {
		return err
	}
	for _, l := range leads {
		p, ok := people[l.PersonID]
		if !ok {
			continue
		}
		admit(personNode(p))
		t.b.edges.Add(personID(p.ID), projectID(l.ProjectID), RACIEdgeType(l.Role), roleMeta(l.Role))
	}
	return nil
}

func (t *traversal) expandTasks(ctx context.Context, ids []int64, next frontier) error {
	admit := t.admitInto(next)
	tasks, err := t.store.TasksByIDs(ctx, ids)
	if err != nil {
		return err
	}
	var owned []*types.Task
	for _, task := range tasks {
		if task.ProjectID != nil {
			owned = append(owned, task)
		}
	}
	if len(owned) > 0 {
		projects, err := t.loadProjects(ctx, keysOf(owned, func(task *types.Task) int64 { return *task.ProjectID }))
		if err != nil {
			return err
		}
		var found []int64
		for _, task := range owned {
			p, ok := projects[*task.ProjectID]
			if !ok {
				continue
			}
			admit(projectNode(p))
			t.b.edges.Add(taskID(task.ID), projectID(p.ID), EdgePartOf, nil)
			found = append(found, p.ID)
		}
		if found = uniqueSorted(found); len(found) > 0 {
			if err := t.linkLeads(ctx, found, next); err != nil {
				return err
			}
		}
	}

	assignees, err := t.store.TaskAssigneesByTaskIDs(ctx, ids)
	if err != nil {
		return err
	}
	people, err := t.loadPeople(ctx, keysOf(assignees, func(a *types.TaskAssignee) int64 { return a.PersonID }))
	if err != nil {
		return err
	}
	for _, a := range assignees {
		p, ok := people[a.PersonID]
		if !ok {
			continue
		}
		admit(personNode(p))
		t.b.edges.Add(personID(p.ID), taskID(a.TaskID), AssigneeEdgeType(a.Role), roleMeta(a.Role))
	}
	return nil
}

func (t *traversal) expandPeople(ctx context.Context, ids []int64, next frontier) error {
	admit := t.admitInto(next)
	out, err := t.store.RelationsFromPeople(ctx, ids)
	if err != nil {
		return err
	}
	in, err := t.store.RelationsToPeople(ctx, ids)
	if err != nil {
		return err
	}
	related := make([]int64, 0, 2*(len(out)+len(in)))
	for _, r := range out {
		related = append(related, r.FromPersonID, r.ToPersonID)
	}
	for _, r := range in {
		related = append(related, r.FromPersonID, r.ToPersonID)
	}
	people, err := t.loadPeople(ctx, related)
	if err != nil {
		return err
	}
	for _, r := range out {
		target, ok := people[r.ToPersonID]
		if !ok {
			continue
		}
		admit(personNode(target))
		t.b.edges.Add(personID(r.FromPersonID), personID(r.ToPersonID), RelationEdgeType(r.Type), relationMeta(r))
	}
	for _, r := range in {
		source, ok := people[r.FromPersonID]
		if !ok {
			continue
		}
		admit(personNode(source))
		t.b.edges.Add(personID(r.FromPersonID), personID(r.ToPersonID), RelationEdgeType(r.Type), relationMeta(r))
	}

	memberships, err := t.store.PersonGroupsByPersonIDs(ctx, ids)
	if err != nil {
		return err
	}
	groups, err := t.loadGroups(ctx, keysOf(memberships, func(m *types.PersonGroup) int64 { return m.GroupID }))
	if err != nil {
		return err
	}
	for _, m := range memberships {
		g, ok := groups[m.GroupID]
		if !ok {
			continue
		}
		admit(groupNode(g))
		t.b.edges.Add(personID(m.PersonID), groupID(g.ID), EdgeMemberOf, nil)
	}

	leads, err := t.store.ProjectLeadsByPersonIDs(ctx, ids)
	if err != nil {
		return err
	}
	projects, err := t.loadProjects(ctx, keysOf(leads, func(l *types.ProjectLead) int64 { return l.ProjectID }))
	if err != nil {
		return err
	}
	for _, l := range leads {
		p, ok := projects[l.ProjectID]
		if !ok {
			continue
		}
		admit(projectNode(p))
		t.b.edges.Add(personID(l.PersonID), projectID(p.ID), RACIEdgeType(l.Role), roleMeta(l.Role))
	}

	assignments, err := t.store.TaskAssigneesByPersonIDs(ctx, ids)
	if err != nil {
		return err
	}
	taskIDs := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		taskIDs = append(taskIDs, a.TaskID)
	}
	tasks, err := t.loadTasks(ctx, taskIDs)
	if err != nil {
		return err
	}
	for _, a := range assignments {
		task, ok := tasks[a.TaskID]
		if !ok {
			continue
		}
		admit(taskNode(task))
		t.b.edges.Add(personID(a.PersonID), taskID(task.ID), AssigneeEdgeType(a.Role), roleMeta(a.Role))
	}
	return nil
}

func (t *traversal) expandGroups(ctx context.Context, ids []int64, next frontier) error {
	admit := t.admitInto(next)
	members, err := t.store.PersonGroupsByGroupIDs(ctx, ids)
	if err != nil {
		return err
	}
	people, err := t.loadPeople(ctx, keysOf(members, func(m *types.PersonGroup) int64 { return m.PersonID }))
	if err != nil {
		return err
	}
	for _, m := range members {
		p, ok := people[m.PersonID]
		if !ok {
			continue
		}
		admit(personNode(p))
		t.b.edges.Add(personID(p.ID), groupID(m.GroupID), EdgeMemberOf, nil)
	}

	rows, err := t.store.ProjectGroupsByGroupIDs(ctx, ids)
	if err != nil {
		return err
	}
	projects, err := t.loadProjects(ctx, keysOf(rows, func(r *types.ProjectGroup) int64 { return r.ProjectID }))
	if err != nil {
		return err
	}
	for _, r := range rows {
		p, ok := projects[r.ProjectID]
		if !ok {
			continue
		}
		admit(projectNode(p))
		t.b.edges.Add(projectID(p.ID), groupID(r.GroupID), EdgeInGroup, nil)
	}
	return nil
}

// collaboration adds COLLAB edges between people already in the result.
func (t *traversal) collaboration(ctx context.Context) error {
	if taskIDs := t.b.nodes.IDsOf(KindTask); len(taskIDs) > 0 {
		rows, err := t.store.TaskAssigneesByTaskIDs(ctx, uniqueSorted(taskIDs))
		if err != nil {
			return err
		}
		inferCollaboration(t.b, EdgeCollabTask, KindTask, assigneeCoMembers(rows))
	}
	if projectIDs := t.b.nodes.IDsOf(KindProject); len(projectIDs) > 0 {
		rows, err := t.store.ProjectLeadsByProjectIDs(ctx, uniqueSorted(projectIDs))
		if err != nil {
			return err
		}
		inferCollaboration(t.b, EdgeCollabProject, KindProject, leadCoMembers(rows))
	}
	return nil
}

// keysOf collects one id per row.
func keysOf[R any](rows []R, key func(R) int64) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, key(r))
	}
	return ids
}

func (t *traversal) loadPeople(ctx context.Context, ids []int64) (map[int64]*types.Person, error) {
	out := map[int64]*types.Person{}
	if ids = uniqueSorted(ids); len(ids) == 0 {
		return out, nil
	}
	rows, err := t.store.PeopleByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.ID] = p
	}
	return out, nil
}

func (t *traversal) loadProjects(ctx context.Context, ids []int64) (map[int64]*types.Project, error) {
	out := map[int64]*types.Project{}
	if ids = uniqueSorted(ids); len(ids) == 0 {
		return out, nil
	}
	rows, err := t.store.ProjectsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.ID] = p
	}
	return out, nil
}

func (t *traversal) loadTasks(ctx context.Context, ids []int64) (map[int64]*types.Task, error) {
	out := map[int64]*types.Task{}
	if ids = uniqueSorted(ids); len(ids) == 0 {
		return out, nil
	}
	rows, err := t.store.TasksByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, task := range rows {
		out[task.ID] = task
	}
	return out, nil
}

func (t *traversal) loadGroups(ctx context.Context, ids []int64) (map[int64]*types.Group, error) {
	out := map[int64]*types.Group{}
	if ids = uniqueSorted(ids); len(ids) == 0 {
		return out, nil
	}
	rows, err := t.store.GroupsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, g := range rows {
		out[g.ID] = g
	}
	return out, nil
}

func uniqueSorted(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
