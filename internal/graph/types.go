package graph

import (
	"encoding/json"
	"fmt"
)

type NodeDetail struct {
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	ProjectID   *int64 `json:"project_id,omitempty"`
	ParentID    *int64 `json:"parent_id,omitempty"`
}

func (d *NodeDetail) empty() bool {
	return d == nil || *d == NodeDetail{}
}

type NodeData struct {
	ID     string      `json:"id"`
	Type   Kind        `json:"type"`
	Label  string      `json:"label"`
	Status string      `json:"status,omitempty"`
	Email  string      `json:"email,omitempty"`
	Detail *NodeDetail `json:"detail,omitempty"`
}

type Node struct {
	Data NodeData `json:"data"`
}

// Meta is optional edge metadata. It never takes part in edge identity.
type Meta map[string]any

// EdgeData marshals with Meta flattened next to source/target/type. Meta keys
// cannot shadow the three identity fields.
type EdgeData struct {
	Source string
	Target string
	Type   string
	Meta   Meta
}

func (d EdgeData) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Meta)+3)
	for k, v := range d.Meta {
		out[k] = v
	}
	out["source"] = d.Source
	out["target"] = d.Target
	out["type"] = d.Type
	return json.Marshal(out)
}

func (d *EdgeData) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	str := func(key string) (string, error) {
		v, ok := raw[key]
		if !ok {
			return "", fmt.Errorf("edge data: missing %q", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("edge data: %q is not a string", key)
		}
		delete(raw, key)
		return s, nil
	}
	var err error
	if d.Source, err = str("source"); err != nil {
		return err
	}
	if d.Target, err = str("target"); err != nil {
		return err
	}
	if d.Type, err = str("type"); err != nil {
		return err
	}
	d.Meta = nil
	if len(raw) > 0 {
		d.Meta = Meta(raw)
	}
	return nil
}

type Edge struct {
	Data EdgeData `json:"data"`
}

type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Response is the wire shape shared by every graph view.
type Response struct {
	Schema Schema `json:"schema"`
	Graph  Graph  `json:"graph"`
}

func newResponse(g Graph) *Response {
	if g.Nodes == nil {
		g.Nodes = []Node{}
	}
	if g.Edges == nil {
		g.Edges = []Edge{}
	}
	return &Response{Schema: DescribeSchema(), Graph: g}
}
