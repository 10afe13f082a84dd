package parser

import "github.com/dgallion1/brandpost/internal/doctree"

// word lays out text as one glyph per rune starting at x.
func word(text string, x, top, size float64, font string) []doctree.Glyph {
	var out []doctree.Glyph
	for _, r := range text {
		out = append(out, doctree.Glyph{
			Text:     string(r),
			X0:       x,
			Top:      top,
			Size:     size,
			FontName: font,
		})
		x += size * 0.5
	}
	return out
}

func record(text string, top int, role doctree.Role) doctree.LineRecord {
	return doctree.LineRecord{Text: text, Top: top, Role: role}
}
