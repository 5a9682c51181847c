// Package graph projects the relational org model (people, projects, tasks,
// groups and their associations) into a node/edge graph.
//
// Two builders exist: BuildNetwork materializes every entity in the store,
// BuildSubgraph walks a bounded number of hops out from a set of centers.
// Both route every node and edge through NodeAdder/EdgeAdder, which own the
// identity rules:
//   - a node is keyed by (kind, id), an edge by (source, target, type)
//   - an edge is kept only if both endpoints were admitted before it
//   - node and edge caps silently drop further additions
//
// Nothing here is cached or shared between calls.
package graph

// Kind is the type of an entity node.
type Kind string

const (
	KindPerson  Kind = "person"
	KindProject Kind = "project"
	KindTask    Kind = "task"
	KindGroup   Kind = "group"
)

// Kinds lists node kinds in materialization order.
var Kinds = []Kind{KindPerson, KindProject, KindTask, KindGroup}

// Edge types. Person relation types are stored free-form and uppercased on
// emission, so MANAGES/MENTOR/PEER/CO_LOCATED are the documented values only.
const (
	EdgeManages       = "MANAGES"
	EdgeMentor        = "MENTOR"
	EdgePeer          = "PEER"
	EdgeCoLocated     = "CO_LOCATED"
	EdgeRelation      = "REL"
	EdgePartOf        = "PART_OF"
	EdgeMemberOf      = "MEMBER_OF"
	EdgeInGroup       = "IN_GROUP"
	EdgeCollabTask    = "COLLAB:TASK"
	EdgeCollabProject = "COLLAB:PROJECT"

	raciPrefix     = "RACI:"
	assigneePrefix = "ASSIGNEE:"
)

type EdgeDef struct {
	Type string `json:"type"`
	From Kind   `json:"from"`
	To   Kind   `json:"to"`
}

type Schema struct {
	Nodes []Kind    `json:"nodes"`
	Edges []EdgeDef `json:"edges"`
}

var edgeDefs = []EdgeDef{
	{Type: EdgeManages, From: KindPerson, To: KindPerson},
	{Type: EdgeMentor, From: KindPerson, To: KindPerson},
	{Type: EdgePeer, From: KindPerson, To: KindPerson},
	{Type: EdgeCoLocated, From: KindPerson, To: KindPerson},
	{Type: EdgeRelation, From: KindPerson, To: KindPerson},
	{Type: raciPrefix + "R", From: KindPerson, To: KindProject},
	{Type: raciPrefix + "A", From: KindPerson, To: KindProject},
	{Type: raciPrefix + "C", From: KindPerson, To: KindProject},
	{Type: raciPrefix + "I", From: KindPerson, To: KindProject},
	{Type: EdgePartOf, From: KindTask, To: KindProject},
	{Type: assigneePrefix + "R", From: KindPerson, To: KindTask},
	{Type: assigneePrefix + "A", From: KindPerson, To: KindTask},
	{Type: assigneePrefix + "C", From: KindPerson, To: KindTask},
	{Type: assigneePrefix + "I", From: KindPerson, To: KindTask},
	{Type: EdgeMemberOf, From: KindPerson, To: KindGroup},
	{Type: EdgeInGroup, From: KindProject, To: KindGroup},
	{Type: EdgeCollabTask, From: KindPerson, To: KindPerson},
	{Type: EdgeCollabProject, From: KindPerson, To: KindPerson},
}

// DescribeSchema returns a copy of the schema descriptor. Callers may mutate
// the result freely.
func DescribeSchema() Schema {
	nodes := make([]Kind, len(Kinds))
	copy(nodes, Kinds)
	edges := make([]EdgeDef, len(edgeDefs))
	copy(edges, edgeDefs)
	return Schema{Nodes: nodes, Edges: edges}
}
