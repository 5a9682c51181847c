package graph

import (
	"regexp"
	"strings"
)

const (
	redactedEmail = "[redacted-email]"
	redactedPhone = "[redacted-phone]"
)

var (
	emailPattern = regexp.MustCompile(`\b[\w.+-]+@[\w-]+\.[\w.-]+\b`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
)

// SafeNode is the subset of a node that may be placed in a model prompt.
// People and groups are reduced to their id and kind.
type SafeNode struct {
	ID          string `json:"id"`
	Type        Kind   `json:"type"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Priority    string `json:"priority,omitempty"`
	ProjectID   *int64 `json:"project_id,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
}

type SafeEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
	Role   string `json:"role,omitempty"`
	Note   string `json:"note,omitempty"`
}

type SafeGraph struct {
	Nodes []SafeNode `json:"nodes"`
	Edges []SafeEdge `json:"edges"`
}

// ScrubText replaces email addresses and phone numbers in s.
func ScrubText(s string) string {
	if s == "" {
		return s
	}
	s = emailPattern.ReplaceAllString(s, redactedEmail)
	return phonePattern.ReplaceAllString(s, redactedPhone)
}

// PromptSafe projects g onto allowlisted fields. Labels, emails and any meta
// other than role and note are dropped.
func PromptSafe(g Graph) SafeGraph {
	out := SafeGraph{Nodes: make([]SafeNode, 0, len(g.Nodes)), Edges: make([]SafeEdge, 0, len(g.Edges))}
	for _, n := range g.Nodes {
		out.Nodes = append(out.Nodes, safeNode(n.Data))
	}
	for _, e := range g.Edges {
		out.Edges = append(out.Edges, SafeEdge{
			Source: e.Data.Source,
			Target: e.Data.Target,
			Type:   e.Data.Type,
			Role:   ScrubText(metaString(e.Data.Meta, "role")),
			Note:   ScrubText(metaString(e.Data.Meta, "note")),
		})
	}
	return out
}

func safeNode(d NodeData) SafeNode {
	kind := d.Type
	if kind == "" {
		if ref, err := ParseID(d.ID); err == nil {
			kind = ref.Kind
		}
	}
	n := SafeNode{ID: d.ID, Type: kind}
	detail := d.Detail
	if detail == nil {
		detail = &NodeDetail{}
	}
	switch kind {
	case KindProject:
		n.Status = ScrubText(d.Status)
		n.Description = ScrubText(detail.Description)
		n.StartDate = detail.StartDate
		n.EndDate = detail.EndDate
	case KindTask:
		n.Status = ScrubText(d.Status)
		n.Description = ScrubText(detail.Description)
		n.Priority = ScrubText(detail.Priority)
		n.ProjectID = detail.ProjectID
		n.Start = detail.Start
		n.End = detail.End
	}
	return n
}

func metaString(m Meta, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
