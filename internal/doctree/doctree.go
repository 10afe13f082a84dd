package doctree

// Glyph is a single decoded character with its position and font metadata.
type Glyph struct {
	Text     string  // Decoded character(s)
	X0       float64 // Left edge, page units
	Top      float64 // Distance from the top of the page, page units
	Size     float64 // Font size
	FontName string  // PostScript font name, e.g. "ABCDEF+Helvetica-Bold"
}

// Line is a run of glyphs sharing the same rounded top coordinate,
// ordered left to right.
type Line struct {
	Key    int
	Glyphs []Glyph
}

// Role is the structural classification of a text line.
type Role string

const (
	RoleHeadingMain Role = "heading-main"
	RoleHeadingSub  Role = "heading-sub"
	RoleListItem    Role = "list-item"
	RoleBold        Role = "bold"
	RoleText        Role = "text"
)

// LineRecord is the classification result for one Line.
type LineRecord struct {
	Text    string
	Top     int // Line key the record was built from
	MaxSize float64
	Bold    bool
	Role    Role
}

// Block is one rendered unit of a page: a heading, a bold line, a list
// item (possibly grown by continuation lines), or a merged paragraph.
type Block struct {
	Role Role
	Text string
}
