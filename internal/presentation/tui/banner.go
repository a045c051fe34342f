package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner writes the stagger banner, one line per colour of the gradient.
func PrintBanner(out *termenv.Output, version string) {
	lines := []struct {
		text  string
		color string
	}{
		{"      _                              ", "#818cf8"},
		{"  ___| |_ __ _  __ _  __ _  ___ _ __ ", "#a78bfa"},
		{" / __| __/ _` |/ _` |/ _` |/ _ \\ '__|", "#c084fc"},
		{" \\__ \\ || (_| | (_| | (_| |  __/ |   ", "#e879f9"},
		{" |___/\\__\\__,_|\\__, |\\__, |\\___|_|   ", "#f472b6"},
		{"               |___/ |___/           ", "#fb7185"},
	}

	fmt.Fprintln(out)
	for _, l := range lines {
		fmt.Fprintln(out, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(out, out.String("  "+version).Faint())
	}
	fmt.Fprintln(out)
}
