package parser

import (
	"io"
	"regexp"
	"strings"

	"github.com/dgallion1/brandpost/internal/doctree"
)

// Parser converts raw document bytes into Markdown.
type Parser interface {
	Parse(r io.Reader, filename string) (string, error)
}

// Config holds the layout heuristics used to recover structure from glyphs.
// The values are fixed thresholds, not derived from document statistics.
type Config struct {
	HeadingMainSize float64 // Font size at or above which a line is "# ".
	HeadingSubSize  float64 // Font size at or above which a line is "## ".
	MergeThreshold  float64 // Max vertical gap for two lines to continue one block.
	BoldMarker      string  // Case-sensitive substring of a bold font name.

	BulletPattern   *regexp.Regexp
	NumberedPattern *regexp.Regexp
}

var (
	defaultBulletPattern   = regexp.MustCompile(`^(\*|-|•)\s+`)
	defaultNumberedPattern = regexp.MustCompile(`^\d+[.)]\s+`)
)

// DefaultConfig returns the thresholds tuned for typical word-processor PDFs.
func DefaultConfig() Config {
	return Config{
		HeadingMainSize: 18,
		HeadingSubSize:  10,
		MergeThreshold:  18,
		BoldMarker:      "Bold",
		BulletPattern:   defaultBulletPattern,
		NumberedPattern: defaultNumberedPattern,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.HeadingMainSize <= 0 {
		c.HeadingMainSize = d.HeadingMainSize
	}
	if c.HeadingSubSize <= 0 {
		c.HeadingSubSize = d.HeadingSubSize
	}
	if c.MergeThreshold <= 0 {
		c.MergeThreshold = d.MergeThreshold
	}
	if c.BoldMarker == "" {
		c.BoldMarker = d.BoldMarker
	}
	if c.BulletPattern == nil {
		c.BulletPattern = d.BulletPattern
	}
	if c.NumberedPattern == nil {
		c.NumberedPattern = d.NumberedPattern
	}
	return c
}

// ConvertPage runs grouping, classification and merging over one page.
func ConvertPage(glyphs []doctree.Glyph, cfg Config) []doctree.Block {
	cfg = cfg.withDefaults()
	lines := GroupLines(glyphs)
	records := make([]doctree.LineRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, Classify(line, cfg))
	}
	return MergeLines(records, cfg)
}

// ConvertPages renders every page and joins them into one Markdown document.
func ConvertPages(pages [][]doctree.Glyph, cfg Config) string {
	var sb strings.Builder
	for _, page := range pages {
		sb.WriteString(Render(ConvertPage(page, cfg)))
	}
	return CollapseBlankLines(sb.String())
}
