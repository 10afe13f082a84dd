package parser

import (
	"cmp"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/dgallion1/brandpost/internal/doctree"
)

// GroupLines partitions a page's glyphs into lines keyed by their rounded
// top coordinate. Lines come out top to bottom, glyphs left to right.
// Lines with no visible text are dropped.
func GroupLines(glyphs []doctree.Glyph) []doctree.Line {
	byKey := make(map[int][]doctree.Glyph)
	for _, g := range glyphs {
		// Half-to-even, matching the rounding the chunk corpus was built with.
		k := int(math.RoundToEven(g.Top))
		byKey[k] = append(byKey[k], g)
	}

	lines := make([]doctree.Line, 0, len(byKey))
	for _, k := range slices.Sorted(maps.Keys(byKey)) {
		gs := byKey[k]
		slices.SortStableFunc(gs, func(a, b doctree.Glyph) int {
			return cmp.Compare(a.X0, b.X0)
		})
		if strings.TrimSpace(lineText(gs)) == "" {
			continue
		}
		lines = append(lines, doctree.Line{Key: k, Glyphs: gs})
	}
	return lines
}

func lineText(glyphs []doctree.Glyph) string {
	var sb strings.Builder
	for _, g := range glyphs {
		sb.WriteString(g.Text)
	}
	return sb.String()
}
