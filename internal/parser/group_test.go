package parser

import (
	"math"
	"testing"

	"github.com/dgallion1/brandpost/internal/doctree"
)

func TestGroupLines_OrdersTopToBottomAndLeftToRight(t *testing.T) {
	var glyphs []doctree.Glyph
	// Feed the second line first and the glyphs of each line reversed.
	second := word("world", 10, 40, 9, "Helvetica")
	first := word("Hello", 10, 20, 9, "Helvetica")
	for i := len(second) - 1; i >= 0; i-- {
		glyphs = append(glyphs, second[i])
	}
	for i := len(first) - 1; i >= 0; i-- {
		glyphs = append(glyphs, first[i])
	}

	lines := GroupLines(glyphs)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if got := lineText(lines[0].Glyphs); got != "Hello" {
		t.Errorf("line 0: expected %q, got %q", "Hello", got)
	}
	if got := lineText(lines[1].Glyphs); got != "world" {
		t.Errorf("line 1: expected %q, got %q", "world", got)
	}
}

func TestGroupLines_RoundsTopCoordinate(t *testing.T) {
	glyphs := []doctree.Glyph{
		{Text: "a", X0: 0, Top: 99.6, Size: 9},
		{Text: "b", X0: 5, Top: 100.4, Size: 9},
		{Text: "c", X0: 0, Top: 101.6, Size: 9},
	}
	lines := GroupLines(glyphs)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Key != 100 || lineText(lines[0].Glyphs) != "ab" {
		t.Errorf("expected key 100 with %q, got key %d with %q", "ab", lines[0].Key, lineText(lines[0].Glyphs))
	}
	if lines[1].Key != 102 {
		t.Errorf("expected key 102, got %d", lines[1].Key)
	}
}

func TestGroupLines_HalfRoundsToEven(t *testing.T) {
	glyphs := []doctree.Glyph{
		{Text: "a", Top: 100.5},
		{Text: "b", Top: 101.5},
	}
	lines := GroupLines(glyphs)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Key != 100 || lines[1].Key != 102 {
		t.Errorf("expected keys 100 and 102, got %d and %d", lines[0].Key, lines[1].Key)
	}
}

func TestGroupLines_KeysMatchGlyphsAndAreSorted(t *testing.T) {
	tops := []float64{300.2, 12.7, 55.5, 12.1, 300.9, 7.49, 55.51, 180}
	var glyphs []doctree.Glyph
	for i, top := range tops {
		glyphs = append(glyphs, doctree.Glyph{Text: "x", X0: float64(i), Top: top, Size: 9})
	}

	lines := GroupLines(glyphs)
	prev := math.MinInt
	for _, l := range lines {
		if l.Key < prev {
			t.Errorf("line key %d emitted after %d", l.Key, prev)
		}
		prev = l.Key
		for _, g := range l.Glyphs {
			if int(math.RoundToEven(g.Top)) != l.Key {
				t.Errorf("glyph top %v placed on line %d", g.Top, l.Key)
			}
		}
	}
}

func TestGroupLines_DropsWhitespaceOnlyLines(t *testing.T) {
	glyphs := append(word("Title", 0, 10, 20, "Helvetica"),
		doctree.Glyph{Text: " ", X0: 0, Top: 30, Size: 9},
		doctree.Glyph{Text: "\t", X0: 4, Top: 30, Size: 9},
	)
	lines := GroupLines(glyphs)
	if len(lines) != 1 {
		t.Fatalf("expected whitespace line to be dropped, got %d lines", len(lines))
	}
	if lines[0].Key != 10 {
		t.Errorf("expected surviving line key 10, got %d", lines[0].Key)
	}
}

func TestGroupLines_Empty(t *testing.T) {
	if lines := GroupLines(nil); len(lines) != 0 {
		t.Errorf("expected no lines, got %d", len(lines))
	}
}
