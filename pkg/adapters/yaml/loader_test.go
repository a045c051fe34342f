package yaml_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/stagger/pkg/adapters/yaml"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/aretw0/stagger/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const landing = `
name: landing
nodes:
  - key: mainTitle
  - key: subTitle
    after: mainTitle
  - key: summary
    after: subTitle
    at: 0.55
  - key: icon1
    after: subTitle
    at: 1
`

func TestYAMLLoader_Contract(t *testing.T) {
	want := []domain.NodeSpec{
		{Key: "mainTitle"},
		{Key: "subTitle", After: "mainTitle"},
		{Key: "summary", After: "subTitle", TriggerThreshold: domain.Float(0.55)},
		{Key: "icon1", After: "subTitle", TriggerThreshold: domain.Float(1)},
	}

	t.Run("Bytes", func(t *testing.T) {
		ports.RunSceneLoaderContract(t, yaml.NewFromBytes([]byte(landing)), want)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "landing.yaml")
		require.NoError(t, os.WriteFile(path, []byte(landing), 0o644))
		ports.RunSceneLoaderContract(t, yaml.NewFromFile(path), want)
	})
}

func TestYAMLLoader_Name(t *testing.T) {
	l := yaml.NewFromBytes([]byte(landing))
	_, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "landing", l.Name())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Malformed", "nodes: [\n"},
		{"Empty", ""},
		{"Unknown Field", "nodes:\n  - key: a\n    afer: b\n"},
		{"Missing Key", "nodes:\n  - after: b\n"},
		{"Wrong Type", "nodes:\n  - key: a\n    at: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := yaml.Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestYAMLLoader_MissingFile(t *testing.T) {
	_, err := yaml.NewFromFile(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	specs := []domain.NodeSpec{{Key: "a"}, {Key: "b", After: "a", TriggerThreshold: domain.Float(0.25)}}

	data, err := yaml.Marshal("demo", specs)
	require.NoError(t, err)

	scene, err := yaml.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "demo", scene.Name)
	assert.Equal(t, specs, scene.Nodes)
}
