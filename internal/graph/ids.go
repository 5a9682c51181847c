package graph

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var nodeIDPattern = regexp.MustCompile(`(?i)^(person|people|project|projects|task|tasks|group|groups)_(\d+)$`)

var kindAliases = map[string]Kind{
	"person":   KindPerson,
	"people":   KindPerson,
	"project":  KindProject,
	"projects": KindProject,
	"task":     KindTask,
	"tasks":    KindTask,
	"group":    KindGroup,
	"groups":   KindGroup,
}

// NodeRef is the structural identity of a node.
type NodeRef struct {
	Kind Kind
	ID   int64
}

func (r NodeRef) String() string { return FormatID(r.Kind, r.ID) }

// FormatID renders the canonical node id, e.g. "project_12".
func FormatID(kind Kind, id int64) string {
	return string(kind) + "_" + strconv.FormatInt(id, 10)
}

// ParseID accepts singular or plural kind prefixes in any case and returns the
// normalized reference. "People_7" parses as person 7.
func ParseID(token string) (NodeRef, error) {
	m := nodeIDPattern.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return NodeRef{}, fmt.Errorf("%w: %q", ErrInvalidIDFormat, token)
	}
	kind, ok := kindAliases[strings.ToLower(m[1])]
	if !ok {
		return NodeRef{}, fmt.Errorf("%w: %q", ErrInvalidIDFormat, token)
	}
	id, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return NodeRef{}, fmt.Errorf("%w: %q", ErrInvalidIDFormat, token)
	}
	return NodeRef{Kind: kind, ID: id}, nil
}
