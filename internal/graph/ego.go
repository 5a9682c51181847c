package graph

// Ego narrows an already materialized graph to center and at most
// maxNeighbors of its direct neighbours, picked in edge order. Unlimited keeps
// every neighbour. Edges survive only when both endpoints are kept. An absent
// center yields an empty graph.
func Ego(g Graph, centerID string, maxNeighbors int) Graph {
	var center *Node
	index := make(map[string]int, len(g.Nodes))
	for i := range g.Nodes {
		index[g.Nodes[i].Data.ID] = i
		if g.Nodes[i].Data.ID == centerID {
			center = &g.Nodes[i]
		}
	}
	if center == nil {
		return Graph{Nodes: []Node{}, Edges: []Edge{}}
	}

	kept := map[string]struct{}{centerID: {}}
	neighbours := []string{}
	for _, e := range g.Edges {
		if maxNeighbors >= 0 && len(neighbours) >= maxNeighbors {
			break
		}
		var other string
		switch {
		case e.Data.Source == centerID && e.Data.Target != centerID:
			other = e.Data.Target
		case e.Data.Target == centerID && e.Data.Source != centerID:
			other = e.Data.Source
		default:
			continue
		}
		if _, ok := kept[other]; ok {
			continue
		}
		if _, ok := index[other]; !ok {
			continue
		}
		kept[other] = struct{}{}
		neighbours = append(neighbours, other)
	}

	out := Graph{Nodes: make([]Node, 0, len(neighbours)+1), Edges: []Edge{}}
	out.Nodes = append(out.Nodes, *center)
	for _, id := range neighbours {
		out.Nodes = append(out.Nodes, g.Nodes[index[id]])
	}
	for _, e := range g.Edges {
		_, src := kept[e.Data.Source]
		_, dst := kept[e.Data.Target]
		if src && dst {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}
