package domain

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		old      Snapshot
		new      Snapshot
		wantDiff *SnapshotDiff // nil means we expect no diff
	}{
		{
			name: "Initial Load (Old is Nil)",
			old:  nil,
			new: Snapshot{
				{Key: "a", Progress: 0},
			},
			wantDiff: &SnapshotDiff{
				Progress: map[string]float64{"a": 0},
			},
		},
		{
			name: "No Changes",
			old:  Snapshot{{Key: "a", Progress: 0.4, Transitioning: true}},
			new:  Snapshot{{Key: "a", Progress: 0.4, Transitioning: true}},
		},
		{
			name: "Trigger",
			old:  Snapshot{{Key: "a"}, {Key: "b"}},
			new:  Snapshot{{Key: "a", Transitioning: true}, {Key: "b"}},
			wantDiff: &SnapshotDiff{
				Triggered: []string{"a"},
			},
		},
		{
			name: "Progress And Settle",
			old:  Snapshot{{Key: "a", Progress: 0.99, Transitioning: true}, {Key: "b", Progress: 0.2, Transitioning: true}},
			new:  Snapshot{{Key: "a", Progress: 1.0}, {Key: "b", Progress: 0.5, Transitioning: true}},
			wantDiff: &SnapshotDiff{
				Settled:  []string{"a"},
				Progress: map[string]float64{"a": 1.0, "b": 0.5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.old, tt.new)
			if tt.wantDiff == nil {
				if got != nil {
					t.Errorf("Diff() = %+v, want nil", got)
				}
				return
			}

			if got == nil {
				t.Fatalf("Diff() = nil, want %+v", tt.wantDiff)
			}
			if !reflect.DeepEqual(got.Triggered, tt.wantDiff.Triggered) {
				t.Errorf("Diff().Triggered = %v, want %v", got.Triggered, tt.wantDiff.Triggered)
			}
			if !reflect.DeepEqual(got.Settled, tt.wantDiff.Settled) {
				t.Errorf("Diff().Settled = %v, want %v", got.Settled, tt.wantDiff.Settled)
			}
			if !reflect.DeepEqual(got.Progress, tt.wantDiff.Progress) {
				t.Errorf("Diff().Progress = %v, want %v", got.Progress, tt.wantDiff.Progress)
			}
		})
	}
}

func TestDiffJSONSerialization(t *testing.T) {
	old := Snapshot{{Key: "a"}}
	cur := Snapshot{{Key: "a", Transitioning: true}}

	diff := Diff(old, cur)
	if diff == nil {
		t.Fatal("Expected diff, got nil")
	}

	bytes, _ := json.Marshal(diff)
	if strings.Contains(string(bytes), `"progress"`) {
		t.Errorf("JSON should not contain 'progress' when unchanged, got: %s", string(bytes))
	}
	if !strings.Contains(string(bytes), `"triggered":["a"]`) {
		t.Errorf("JSON should list triggered node, got: %s", string(bytes))
	}
}
