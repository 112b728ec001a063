package cellgrid

import (
	"fmt"
	"sort"
	"strings"
)

// Describe returns a human-readable summary of the grid: shape, labels,
// spacing, margin, and the current payload matrix. Useful for debugging
// grid state during development.
func (g *Grid) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grid %dx%d\n", g.Rows(), g.Cols())
	fmt.Fprintf(&b, "  rows: %v labels %s\n", g.rowSizes, labelList(g.mapper.rowLabels))
	fmt.Fprintf(&b, "  cols: %v labels %s\n", g.colSizes, labelList(g.mapper.colLabels))
	fmt.Fprintf(&b, "  spacing: (%g, %g) margin: %s\n", g.spacing[0], g.spacing[1], g.margin)
	fmt.Fprintf(&b, "  payloads: %s\n", g.payloads)

	tagged := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if len(cell.Tags) > 0 {
				tagged++
			}
		}
	}
	fmt.Fprintf(&b, "  tagged cells: %d\n", tagged)
	return b.String()
}

// labelList formats a label mapping as "[a b c]" in position order.
func labelList(labels map[string]int) string {
	ordered := make([]string, 0, len(labels))
	for label := range labels {
		ordered = append(ordered, label)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return labels[ordered[i]] < labels[ordered[j]]
	})
	return "[" + strings.Join(ordered, " ") + "]"
}
