package parser

import (
	"regexp"
	"strings"

	"github.com/dgallion1/brandpost/internal/doctree"
)

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// RenderBlock renders one block as Markdown. List items end with a single
// newline so consecutive items stay grouped; everything else is followed
// by a blank line.
func RenderBlock(b doctree.Block) string {
	switch b.Role {
	case doctree.RoleHeadingMain:
		return "# " + b.Text + "\n\n"
	case doctree.RoleHeadingSub:
		return "## " + b.Text + "\n\n"
	case doctree.RoleBold:
		return "**" + b.Text + "**\n\n"
	case doctree.RoleListItem:
		return b.Text + "\n"
	default:
		return b.Text + "\n\n"
	}
}

// Render concatenates the Markdown of all blocks.
func Render(blocks []doctree.Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(RenderBlock(b))
	}
	return sb.String()
}

// CollapseBlankLines reduces every run of three or more newlines to one
// blank line.
func CollapseBlankLines(md string) string {
	return excessNewlines.ReplaceAllString(md, "\n\n")
}
