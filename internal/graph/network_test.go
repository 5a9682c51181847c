package graph

import (
	"context"
	"errors"
	"testing"

	types "github.com/yungbote/orggraph-backend/internal/domain"
)

func TestBuildNetwork(t *testing.T) {
	res, err := BuildNetwork(context.Background(), sampleStore())
	if err != nil {
		t.Fatalf("BuildNetwork: %v", err)
	}
	g := res.Graph
	assertClosed(t, g)

	wantNodes := []string{"person_1", "person_2", "person_3", "person_4", "project_1", "task_10", "group_5"}
	got := nodeIDs(g)
	if len(got) != len(wantNodes) {
		t.Fatalf("nodes: want=%v got=%v", wantNodes, got)
	}
	for i := range wantNodes {
		if got[i] != wantNodes[i] {
			t.Fatalf("node order: want=%v got=%v", wantNodes, got)
		}
	}

	for _, e := range [][3]string{
		{"person_1", "person_4", "MANAGES"},
		{"person_1", "project_1", "RACI:R"},
		{"person_2", "project_1", "RACI:A"},
		{"task_10", "project_1", "PART_OF"},
		{"person_2", "task_10", "ASSIGNEE:R"},
		{"person_3", "task_10", "ASSIGNEE:C"},
		{"person_4", "group_5", "MEMBER_OF"},
		{"project_1", "group_5", "IN_GROUP"},
		{"person_2", "person_3", "COLLAB:TASK"},
		{"person_3", "person_2", "COLLAB:TASK"},
		{"person_1", "person_2", "COLLAB:PROJECT"},
		{"person_2", "person_1", "COLLAB:PROJECT"},
	} {
		if !hasEdge(g, e[0], e[1], e[2]) {
			t.Fatalf("missing edge %v", e)
		}
	}
	if len(g.Edges) != 12 {
		t.Fatalf("edges: want=12 got=%d", len(g.Edges))
	}
	if len(res.Schema.Edges) != 18 {
		t.Fatalf("schema edges: want=18 got=%d", len(res.Schema.Edges))
	}
}

func TestBuildNetworkRendersDetail(t *testing.T) {
	res, err := BuildNetwork(context.Background(), sampleStore())
	if err != nil {
		t.Fatalf("BuildNetwork: %v", err)
	}
	for _, n := range res.Graph.Nodes {
		switch n.Data.ID {
		case "person_1":
			if n.Data.Label != "Ada" || n.Data.Email != "ada@example.com" {
				t.Fatalf("person_1: got=%+v", n.Data)
			}
		case "project_1":
			if n.Data.Status != "Active" || n.Data.Detail == nil || n.Data.Detail.Description != "moon" {
				t.Fatalf("project_1: got=%+v", n.Data)
			}
		case "task_10":
			if n.Data.Detail == nil || n.Data.Detail.ProjectID == nil || *n.Data.Detail.ProjectID != 1 {
				t.Fatalf("task_10 detail: got=%+v", n.Data.Detail)
			}
		}
	}
	for _, e := range res.Graph.Edges {
		if e.Data.Type == "MANAGES" && e.Data.Meta["note"] != "since 2020" {
			t.Fatalf("relation note: got=%v", e.Data.Meta)
		}
		if e.Data.Type == "RACI:A" && e.Data.Meta["role"] != "Accountable" {
			t.Fatalf("lead role: got=%v", e.Data.Meta)
		}
	}
}

func TestBuildNetworkDropsDanglingAssociations(t *testing.T) {
	// Project 2 is soft deleted, so the store no longer returns it.
	store := &memStore{
		people: []*types.Person{{ID: 1, Name: "Ada"}},
		tasks:  []*types.Task{{ID: 3, Name: "Orphan", ProjectID: ptr[int64](2)}},
		leads:  []*types.ProjectLead{{ProjectID: 2, PersonID: 1, Role: "R"}},
		assignees: []*types.TaskAssignee{
			{TaskID: 3, PersonID: 1},
			{TaskID: 3, PersonID: 8},
		},
	}
	res, err := BuildNetwork(context.Background(), store)
	if err != nil {
		t.Fatalf("BuildNetwork: %v", err)
	}
	assertClosed(t, res.Graph)
	if len(res.Graph.Nodes) != 2 {
		t.Fatalf("nodes: want=2 got=%v", nodeIDs(res.Graph))
	}
	if len(res.Graph.Edges) != 1 || !hasEdge(res.Graph, "person_1", "task_3", "ASSIGNEE:R") {
		t.Fatalf("edges: got=%+v", res.Graph.Edges)
	}
}

func TestBuildNetworkEmptyStore(t *testing.T) {
	res, err := BuildNetwork(context.Background(), &memStore{})
	if err != nil {
		t.Fatalf("BuildNetwork: %v", err)
	}
	if res.Graph.Nodes == nil || res.Graph.Edges == nil {
		t.Fatalf("empty graph must carry empty slices")
	}
}

func TestBuildNetworkStoreError(t *testing.T) {
	boom := &StoreError{Op: "ListPeople", Err: errors.New("connection refused")}
	store := sampleStore()
	store.err = boom
	res, err := BuildNetwork(context.Background(), store)
	if res != nil {
		t.Fatalf("expected nil response on store failure")
	}
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("want ErrStoreUnavailable got=%v", err)
	}
}

func TestCollaborationSymmetry(t *testing.T) {
	store := &memStore{
		people: []*types.Person{{ID: 1}, {ID: 2}, {ID: 3}},
		tasks:  []*types.Task{{ID: 7}},
		assignees: []*types.TaskAssignee{
			{TaskID: 7, PersonID: 3},
			{TaskID: 7, PersonID: 1},
			{TaskID: 7, PersonID: 2},
		},
	}
	res, err := BuildNetwork(context.Background(), store)
	if err != nil {
		t.Fatalf("BuildNetwork: %v", err)
	}
	collab := 0
	for _, e := range res.Graph.Edges {
		if e.Data.Type != EdgeCollabTask {
			continue
		}
		collab++
		if !hasEdge(res.Graph, e.Data.Target, e.Data.Source, EdgeCollabTask) {
			t.Fatalf("missing reverse of %s -> %s", e.Data.Source, e.Data.Target)
		}
	}
	if collab != 6 {
		t.Fatalf("collab edges: want=6 got=%d", collab)
	}
	first := -1
	for i, e := range res.Graph.Edges {
		if e.Data.Type == EdgeCollabTask {
			first = i
			break
		}
	}
	if e := res.Graph.Edges[first].Data; e.Source != "person_1" || e.Target != "person_2" {
		t.Fatalf("collab order: first=%s -> %s", e.Source, e.Target)
	}
}
