// Package yaml loads scene definitions from YAML documents.
package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/stagger/pkg/domain"
	"github.com/mitchellh/mapstructure"
	yamlv3 "gopkg.in/yaml.v3"
)

// SceneFile is the document layout of a scene.
//
//	name: landing
//	nodes:
//	  - key: mainTitle
//	  - key: summary
//	    after: divider
//	    at: 0.55
type SceneFile struct {
	Name  string            `mapstructure:"name"`
	Nodes []domain.NodeSpec `mapstructure:"nodes"`
}

// Loader implements ports.SceneLoader for YAML sources.
type Loader struct {
	path string
	data []byte
	name string
}

// NewFromFile creates a loader that reads path on every Load, so edits are picked up.
func NewFromFile(path string) *Loader {
	return &Loader{path: path}
}

// NewFromBytes creates a loader over an in-memory document.
func NewFromBytes(data []byte) *Loader {
	return &Loader{data: append([]byte(nil), data...)}
}

// Name returns the scene name from the last successful Load.
func (l *Loader) Name() string {
	return l.name
}

// Load reads and decodes the scene.
func (l *Loader) Load(ctx context.Context) ([]domain.NodeSpec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := l.data
	if l.path != "" {
		raw, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read scene: %w", err)
		}
		data = raw
	}

	scene, err := Parse(data)
	if err != nil {
		if l.path != "" {
			return nil, fmt.Errorf("%s: %w", l.path, err)
		}
		return nil, err
	}

	l.name = scene.Name
	return scene.Nodes, nil
}

// Parse decodes a YAML scene document. Unknown keys are rejected so typos
// like "afer" do not silently turn a node into a root.
func Parse(data []byte) (*SceneFile, error) {
	var raw map[string]any
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("empty scene document")
	}

	var scene SceneFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &scene,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	for i, n := range scene.Nodes {
		if n.Key == "" {
			return nil, fmt.Errorf("invalid scene: node %d missing key", i)
		}
	}

	return &scene, nil
}

// Marshal renders node definitions back into a scene document.
func Marshal(name string, specs []domain.NodeSpec) ([]byte, error) {
	doc := struct {
		Name  string            `yaml:"name,omitempty"`
		Nodes []domain.NodeSpec `yaml:"nodes"`
	}{Name: name, Nodes: specs}
	return yamlv3.Marshal(doc)
}
