package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/stagger/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	Snapshot domain.Snapshot
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a scene.
// It applies semantic styling:
// - Root (no predecessor): ((Circle))
// - Default: [Rectangle]
// Edges point from predecessor to dependent and are labelled with the threshold
// when it differs from the default. Phase styles are added if an overlay is provided.
func GenerateMermaid(specs []domain.NodeSpec, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, spec := range specs {
		safeID := sanitizeMermaidID(spec.Key)

		opener, closer := "[", "]"
		if spec.After == "" {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, spec.Key, closer)
	}

	for _, spec := range specs {
		if spec.After == "" {
			continue
		}
		from := sanitizeMermaidID(spec.After)
		to := sanitizeMermaidID(spec.Key)

		if spec.TriggerThreshold == nil {
			fmt.Fprintf(&sb, "    %s --> %s\n", from, to)
			continue
		}
		label := strconv.FormatFloat(*spec.TriggerThreshold, 'f', -1, 64)
		fmt.Fprintf(&sb, "    %s -- \"@%s\" --> %s\n", from, label, to)
	}

	if overlay != nil && len(overlay.Snapshot) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme
		sb.WriteString("    classDef transitioning fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")
		sb.WriteString("    classDef settled fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")

		for _, n := range overlay.Snapshot {
			switch n.Phase() {
			case domain.PhaseTransitioning:
				fmt.Fprintf(&sb, "    class %s transitioning;\n", sanitizeMermaidID(n.Key))
			case domain.PhaseSettled:
				fmt.Fprintf(&sb, "    class %s settled;\n", sanitizeMermaidID(n.Key))
			}
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
