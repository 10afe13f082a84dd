package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgallion1/brandpost/internal/doctree"
	pdflib "github.com/ledongthuc/pdf"
)

// letterHeight is used when a page carries no usable MediaBox.
const letterHeight = 792.0

// PDFParser recovers document structure from a PDF's glyph geometry and
// font metadata and renders it as Markdown.
type PDFParser struct {
	Config Config
}

func (p *PDFParser) Parse(r io.Reader, filename string) (string, error) {
	pages, err := ReadGlyphs(r)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", filename, err)
	}
	return ConvertPages(pages, p.Config), nil
}

// ReadGlyphs decodes every page of a PDF into its glyphs.
func ReadGlyphs(r io.Reader) (pages [][]doctree.Glyph, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode pdf: %v", r)
		}
	}()

	// ledongthuc/pdf requires a ReaderAt+size, so buffer the input.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	numPages := reader.NumPage()
	pages = make([][]doctree.Glyph, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		glyphs, err := pageGlyphs(page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, glyphs)
	}
	return pages, nil
}

func pageGlyphs(page pdflib.Page) (glyphs []doctree.Glyph, err error) {
	// The content interpreter panics on malformed streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode content: %v", r)
		}
	}()

	height := pageHeight(page)
	content := page.Content()
	glyphs = make([]doctree.Glyph, 0, len(content.Text))
	for _, t := range content.Text {
		// Y is the baseline measured from the bottom edge.
		glyphs = append(glyphs, doctree.Glyph{
			Text:     t.S,
			X0:       t.X,
			Top:      height - (t.Y + t.FontSize),
			Size:     t.FontSize,
			FontName: t.Font,
		})
	}
	return glyphs, nil
}

// pageHeight reads the MediaBox, which may be inherited from a parent
// Pages node.
func pageHeight(page pdflib.Page) float64 {
	v := page.V
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if box.Len() == 4 {
			if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return letterHeight
}
