package services

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/orggraph-backend/internal/graph"
)

// Budget bounds one subgraph build.
type Budget struct {
	Degrees  int `yaml:"degrees" json:"degrees"`
	MaxNodes int `yaml:"max_nodes" json:"max_nodes"`
	MaxEdges int `yaml:"max_edges" json:"max_edges"`
}

func DefaultBudget() Budget {
	return Budget{Degrees: graph.DefaultDegrees, MaxNodes: graph.DefaultMaxNodes, MaxEdges: graph.DefaultMaxEdges}
}

// DefaultPresets are the per-report budgets.
func DefaultPresets() map[string]Budget {
	return map[string]Budget{
		"status":    {Degrees: 2, MaxNodes: 600, MaxEdges: 1200},
		"standup":   {Degrees: 2, MaxNodes: 400, MaxEdges: 800},
		"risk":      {Degrees: 2, MaxNodes: 600, MaxEdges: 1200},
		"unblocker": {Degrees: 2, MaxNodes: 400, MaxEdges: 800},
	}
}

type presetFile struct {
	Presets map[string]Budget `yaml:"presets"`
}

// LoadPresets reads presets from a YAML file and merges them over
// DefaultPresets. Names are case insensitive.
func LoadPresets(path string) (map[string]Budget, error) {
	out := DefaultPresets()
	if strings.TrimSpace(path) == "" {
		return out, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets %q: %w", path, err)
	}
	return mergePresets(out, raw)
}

func mergePresets(base map[string]Budget, raw []byte) (map[string]Budget, error) {
	var f presetFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for name, b := range f.Presets {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if b.Degrees < 0 || b.MaxNodes < 0 || b.MaxEdges < 0 {
			return nil, fmt.Errorf("parse presets: %q has a negative budget", name)
		}
		base[name] = b
	}
	return base, nil
}
