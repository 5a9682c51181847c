package graph

import (
	"slices"

	types "github.com/yungbote/orggraph-backend/internal/domain"
)

// coMembership is one person belonging to one owner (a task through an
// assignment, a project through a lead row).
type coMembership struct {
	owner  int64
	person int64
}

// inferCollaboration groups members by owner and links every unordered pair
// of people in a group with edges in both directions. Owners and people that
// are not admitted nodes are ignored, and the builder's caps apply.
func inferCollaboration(b *builder, etype string, ownerKind Kind, rows []coMembership) {
	groups := map[int64][]int64{}
	for _, r := range rows {
		if !b.nodes.HasRef(NodeRef{Kind: ownerKind, ID: r.owner}) {
			continue
		}
		if !b.nodes.HasRef(NodeRef{Kind: KindPerson, ID: r.person}) {
			continue
		}
		groups[r.owner] = append(groups[r.owner], r.person)
	}

	owners := make([]int64, 0, len(groups))
	for owner := range groups {
		owners = append(owners, owner)
	}
	slices.Sort(owners)

	for _, owner := range owners {
		members := groups[owner]
		slices.Sort(members)
		members = slices.Compact(members)
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a, c := personID(members[i]), personID(members[j])
				b.edges.Add(a, c, etype, nil)
				b.edges.Add(c, a, etype, nil)
			}
		}
	}
}

func assigneeCoMembers(rows []*types.TaskAssignee) []coMembership {
	out := make([]coMembership, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		out = append(out, coMembership{owner: r.TaskID, person: r.PersonID})
	}
	return out
}

func leadCoMembers(rows []*types.ProjectLead) []coMembership {
	out := make([]coMembership, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		out = append(out, coMembership{owner: r.ProjectID, person: r.PersonID})
	}
	return out
}
