package parser

import (
	"github.com/dgallion1/brandpost/internal/doctree"
)

// mergeState is the accumulator folded over a page's classified lines.
// At most one paragraph is pending at a time.
type mergeState struct {
	started  bool
	lastRole doctree.Role
	lastTop  int
	pending  string
	blocks   []doctree.Block
}

// MergeLines folds classified lines into blocks. Consecutive text lines
// closer than the merge threshold become one paragraph; close list-item
// lines extend the previous item.
func MergeLines(records []doctree.LineRecord, cfg Config) []doctree.Block {
	cfg = cfg.withDefaults()
	var st mergeState
	for _, rec := range records {
		st = st.step(rec, cfg.MergeThreshold)
	}
	return st.flush().blocks
}

func (s mergeState) step(rec doctree.LineRecord, threshold float64) mergeState {
	near := s.started && float64(abs(rec.Top-s.lastTop)) < threshold

	switch {
	case near && s.lastRole == doctree.RoleText && rec.Role == doctree.RoleText:
		s.pending += " " + rec.Text
	case near && s.lastRole == doctree.RoleListItem && rec.Role == doctree.RoleListItem:
		last := &s.blocks[len(s.blocks)-1]
		last.Text += " " + rec.Text
	default:
		s = s.flush()
		if rec.Role == doctree.RoleText {
			s.pending = rec.Text
		} else {
			s.blocks = append(s.blocks, doctree.Block{Role: rec.Role, Text: rec.Text})
		}
	}

	s.started = true
	s.lastRole = rec.Role
	s.lastTop = rec.Top
	return s
}

func (s mergeState) flush() mergeState {
	if s.pending != "" {
		s.blocks = append(s.blocks, doctree.Block{Role: doctree.RoleText, Text: s.pending})
		s.pending = ""
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
