// Package viz renders fields in the terminal: a one-shot asciigraph plot
// for stored runs and a live bubbletea view for watching a run evolve.
package viz

import (
	"github.com/guptarohit/asciigraph"
)

// Plot renders a field as an ASCII line graph.
func Plot(field []float64, caption string) string {
	return asciigraph.Plot(field,
		asciigraph.Height(16),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
}
