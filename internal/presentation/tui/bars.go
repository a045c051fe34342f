package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/stagger/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Bars draws one progress bar per node. It is the host that turns progress into
// something visible.
type Bars struct {
	out   *termenv.Output
	width int
	drawn int
}

// NewBars creates a bar renderer writing to w.
// Width is taken from the terminal when w is one, DefaultWidth otherwise.
func NewBars(w io.Writer, opts ...termenv.OutputOption) *Bars {
	return &Bars{
		out:   termenv.NewOutput(w, opts...),
		width: TerminalWidth(w),
	}
}

// TerminalWidth returns the column count of w if it is a terminal.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return DefaultWidth
}

// IsInteractive reports whether w is a terminal.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Frame renders snap as text, one line per node.
func (b *Bars) Frame(snap domain.Snapshot) string {
	label := 0
	for _, n := range snap {
		label = max(label, len(n.Key))
	}

	// key, space, brackets, space, "1.00", space, phase
	barWidth := b.width - label - 4 - 5 - len(domain.PhaseTransitioning) - 2
	barWidth = max(barWidth, 10)

	var sb strings.Builder
	for _, n := range snap {
		filled := int(n.Progress*float64(barWidth) + 0.5)
		filled = min(max(filled, 0), barWidth)

		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		styled := b.out.String(bar).Foreground(b.out.Color(phaseColor(n.Phase())))

		fmt.Fprintf(&sb, "%-*s [%s] %.2f %s\n", label, n.Key, styled, n.Progress, n.Phase())
	}
	return sb.String()
}

// Draw writes a frame, replacing the previous one in place.
func (b *Bars) Draw(snap domain.Snapshot) error {
	if b.drawn > 0 {
		b.out.CursorPrevLine(b.drawn)
	}
	_, err := io.WriteString(b.out, b.Frame(snap))
	b.drawn = len(snap)
	return err
}

func phaseColor(p domain.Phase) string {
	switch p {
	case domain.PhaseTransitioning:
		return "#fbbf24"
	case domain.PhaseSettled:
		return "#34d399"
	default:
		return "#6b7280"
	}
}
