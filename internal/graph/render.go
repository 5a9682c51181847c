package graph

import (
	"time"

	"gorm.io/datatypes"

	types "github.com/yungbote/orggraph-backend/internal/domain"
)

const dateLayout = "2006-01-02"

func formatDate(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	t := time.Time(*d)
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func personNode(p *types.Person) (NodeRef, NodeData) {
	return NodeRef{Kind: KindPerson, ID: p.ID}, NodeData{
		Label: p.Name,
		Email: p.Email,
	}
}

func projectNode(p *types.Project) (NodeRef, NodeData) {
	return NodeRef{Kind: KindProject, ID: p.ID}, NodeData{
		Label:  p.Name,
		Status: p.Status,
		Detail: &NodeDetail{
			Description: p.Description,
			StartDate:   formatDate(p.StartDate),
			EndDate:     formatDate(p.EndDate),
		},
	}
}

func taskNode(t *types.Task) (NodeRef, NodeData) {
	return NodeRef{Kind: KindTask, ID: t.ID}, NodeData{
		Label:  t.Name,
		Status: t.Status,
		Detail: &NodeDetail{
			Description: t.Description,
			Priority:    t.Priority,
			Start:       formatDate(t.Start),
			End:         formatDate(t.End),
			ProjectID:   t.ProjectID,
		},
	}
}

func groupNode(g *types.Group) (NodeRef, NodeData) {
	return NodeRef{Kind: KindGroup, ID: g.ID}, NodeData{
		Label:  g.Name,
		Detail: &NodeDetail{ParentID: g.ParentID},
	}
}

func roleMeta(raw string) Meta {
	return Meta{"role": string(NormalizeRole(raw))}
}

func relationMeta(r *types.PersonRelation) Meta {
	if r.Note == "" {
		return nil
	}
	return Meta{"note": r.Note}
}

func personID(id int64) string  { return FormatID(KindPerson, id) }
func projectID(id int64) string { return FormatID(KindProject, id) }
func taskID(id int64) string    { return FormatID(KindTask, id) }
func groupID(id int64) string   { return FormatID(KindGroup, id) }
