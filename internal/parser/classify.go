package parser

import (
	"strings"

	"github.com/dgallion1/brandpost/internal/doctree"
)

type rule struct {
	role  doctree.Role
	match func(rec doctree.LineRecord, cfg Config) bool
}

// rules is evaluated in order; the first match decides the role.
var rules = []rule{
	{doctree.RoleHeadingMain, func(rec doctree.LineRecord, cfg Config) bool {
		return rec.MaxSize >= cfg.HeadingMainSize
	}},
	{doctree.RoleHeadingSub, func(rec doctree.LineRecord, cfg Config) bool {
		return rec.MaxSize >= cfg.HeadingSubSize
	}},
	{doctree.RoleListItem, func(rec doctree.LineRecord, cfg Config) bool {
		return cfg.BulletPattern.MatchString(rec.Text) || cfg.NumberedPattern.MatchString(rec.Text)
	}},
	{doctree.RoleBold, func(rec doctree.LineRecord, cfg Config) bool {
		return rec.Bold
	}},
}

// Classify computes the font attributes of a line and assigns its role.
func Classify(line doctree.Line, cfg Config) doctree.LineRecord {
	cfg = cfg.withDefaults()
	rec := doctree.LineRecord{
		Text: strings.TrimSpace(lineText(line.Glyphs)),
		Top:  line.Key,
		Role: doctree.RoleText,
	}
	for i, g := range line.Glyphs {
		if i == 0 || g.Size > rec.MaxSize {
			rec.MaxSize = g.Size
		}
		if strings.Contains(g.FontName, cfg.BoldMarker) {
			rec.Bold = true
		}
	}
	for _, r := range rules {
		if r.match(rec, cfg) {
			rec.Role = r.role
			break
		}
	}
	return rec
}
