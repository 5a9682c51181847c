package graph

import (
	"context"
	"testing"
)

func TestEgo(t *testing.T) {
	res, err := BuildNetwork(context.Background(), sampleStore())
	if err != nil {
		t.Fatalf("BuildNetwork: %v", err)
	}

	g := Ego(res.Graph, "person_2", 1)
	assertClosed(t, g)
	if got := nodeIDs(g); len(got) != 2 || got[0] != "person_2" || got[1] != "project_1" {
		t.Fatalf("nodes: got=%v", got)
	}
	if len(g.Edges) != 1 || !hasEdge(g, "person_2", "project_1", "RACI:A") {
		t.Fatalf("edges: got=%+v", g.Edges)
	}

	g = Ego(res.Graph, "person_2", Unlimited)
	assertClosed(t, g)
	want := []string{"person_2", "project_1", "task_10", "person_3", "person_1"}
	got := nodeIDs(g)
	if len(got) != len(want) {
		t.Fatalf("nodes: want=%v got=%v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("nodes: want=%v got=%v", want, got)
		}
	}
	if len(g.Edges) != 9 {
		t.Fatalf("edges: want=9 got=%d", len(g.Edges))
	}
	if hasEdge(g, "person_1", "person_4", "MANAGES") {
		t.Fatalf("edge to a dropped node kept")
	}
}

func TestEgoMissingCenter(t *testing.T) {
	res, err := BuildNetwork(context.Background(), sampleStore())
	if err != nil {
		t.Fatalf("BuildNetwork: %v", err)
	}
	g := Ego(res.Graph, "person_404", 10)
	if g.Nodes == nil || g.Edges == nil || len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Fatalf("want empty graph got=%+v", g)
	}
}
