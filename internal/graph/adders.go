package graph

// Unlimited disables a NodeAdder or EdgeAdder cap.
const Unlimited = -1

// NodeAdder admits each (kind, id) once, in insertion order, up to limit.
// A zero limit admits nothing.
type NodeAdder struct {
	limit int
	seen  map[NodeRef]struct{}
	ids   map[string]struct{}
	refs  []NodeRef
	nodes []Node
}

func NewNodeAdder(limit int) *NodeAdder {
	return &NodeAdder{
		limit: limit,
		seen:  map[NodeRef]struct{}{},
		ids:   map[string]struct{}{},
	}
}

// Add admits the node and reports whether it was new. Repeats and additions
// past the cap are dropped.
func (a *NodeAdder) Add(ref NodeRef, data NodeData) bool {
	if a.Full() {
		return false
	}
	if _, ok := a.seen[ref]; ok {
		return false
	}
	a.seen[ref] = struct{}{}
	id := ref.String()
	a.ids[id] = struct{}{}

	data.ID = id
	data.Type = ref.Kind
	if data.Label == "" {
		data.Label = id
	}
	if data.Detail.empty() {
		data.Detail = nil
	}
	a.refs = append(a.refs, ref)
	a.nodes = append(a.nodes, Node{Data: data})
	return true
}

func (a *NodeAdder) Full() bool { return a.limit >= 0 && len(a.nodes) >= a.limit }

func (a *NodeAdder) Has(id string) bool {
	_, ok := a.ids[id]
	return ok
}

func (a *NodeAdder) HasRef(ref NodeRef) bool {
	_, ok := a.seen[ref]
	return ok
}

func (a *NodeAdder) Len() int { return len(a.nodes) }

// IDsOf returns the admitted ids of one kind in admission order.
func (a *NodeAdder) IDsOf(kind Kind) []int64 {
	var out []int64
	for _, ref := range a.refs {
		if ref.Kind == kind {
			out = append(out, ref.ID)
		}
	}
	return out
}

func (a *NodeAdder) Nodes() []Node { return a.nodes }

type edgeKey struct {
	source, target, etype string
}

// EdgeAdder admits each (source, target, type) once, only when both ends
// are already admitted by its NodeAdder.
type EdgeAdder struct {
	limit int
	nodes *NodeAdder
	seen  map[edgeKey]struct{}
	edges []Edge
}

func NewEdgeAdder(nodes *NodeAdder, limit int) *EdgeAdder {
	return &EdgeAdder{
		limit: limit,
		nodes: nodes,
		seen:  map[edgeKey]struct{}{},
	}
}

// Add admits the edge and reports whether it was new.
func (a *EdgeAdder) Add(source, target, etype string, meta Meta) bool {
	if a.Full() {
		return false
	}
	if !a.nodes.Has(source) || !a.nodes.Has(target) {
		return false
	}
	k := edgeKey{source: source, target: target, etype: etype}
	if _, ok := a.seen[k]; ok {
		return false
	}
	a.seen[k] = struct{}{}
	if len(meta) == 0 {
		meta = nil
	}
	a.edges = append(a.edges, Edge{Data: EdgeData{Source: source, Target: target, Type: etype, Meta: meta}})
	return true
}

func (a *EdgeAdder) Full() bool { return a.limit >= 0 && len(a.edges) >= a.limit }

func (a *EdgeAdder) Len() int { return len(a.edges) }

func (a *EdgeAdder) Edges() []Edge { return a.edges }

// builder pairs the two adders of one build.
type builder struct {
	nodes *NodeAdder
	edges *EdgeAdder
}

func newBuilder(maxNodes, maxEdges int) *builder {
	nodes := NewNodeAdder(maxNodes)
	return &builder{nodes: nodes, edges: NewEdgeAdder(nodes, maxEdges)}
}

func (b *builder) exhausted() bool { return b.nodes.Full() || b.edges.Full() }

func (b *builder) graph() Graph {
	return Graph{Nodes: b.nodes.Nodes(), Edges: b.edges.Edges()}
}
