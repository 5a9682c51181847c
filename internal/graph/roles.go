package graph

import "strings"

// Role is a RACI role name as stored on project leads and task assignees.
type Role string

const (
	RoleResponsible Role = "Responsible"
	RoleAccountable Role = "Accountable"
	RoleConsulted   Role = "Consulted"
	RoleInformed    Role = "Informed"
)

var roleCodes = map[Role]string{
	RoleResponsible: "R",
	RoleAccountable: "A",
	RoleConsulted:   "C",
	RoleInformed:    "I",
}

var rolesByCode = map[string]Role{
	"R": RoleResponsible,
	"A": RoleAccountable,
	"C": RoleConsulted,
	"I": RoleInformed,
}

// NormalizeRole maps free-form input ("r", "A", " consulted ") to a Role.
// Anything unrecognized is Responsible.
func NormalizeRole(raw string) Role {
	s := strings.TrimSpace(raw)
	if s == "" {
		return RoleResponsible
	}
	if r, ok := rolesByCode[strings.ToUpper(s)]; ok {
		return r
	}
	for r := range roleCodes {
		if strings.EqualFold(s, string(r)) {
			return r
		}
	}
	return RoleResponsible
}

// Code is the single-letter uppercase code used as an edge type suffix.
func (r Role) Code() string {
	if c, ok := roleCodes[r]; ok {
		return c
	}
	return roleCodes[RoleResponsible]
}

// RACIEdgeType is the person->project edge type for a stored role.
func RACIEdgeType(raw string) string { return raciPrefix + NormalizeRole(raw).Code() }

// AssigneeEdgeType is the person->task edge type for a stored role.
func AssigneeEdgeType(raw string) string { return assigneePrefix + NormalizeRole(raw).Code() }

// RelationEdgeType uppercases a stored person relation type, REL when blank.
func RelationEdgeType(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return EdgeRelation
	}
	return s
}
