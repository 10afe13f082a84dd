package chunker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/brandpost/internal/parser"
)

// ContentType tags a chunk as brand context or as a style reference.
type ContentType string

const (
	TypeExample     ContentType = "example"
	TypeDescription ContentType = "description"
)

// Chunk is one document's extracted Markdown plus its source and type.
type Chunk struct {
	Filename string      `json:"filename"`
	Type     ContentType `json:"type"`
	Text     string      `json:"text"`
}

// Config controls chunking behavior.
type Config struct {
	Dir string // Directory scanned for documents (non-recursive).

	// SuffixOnlyKeys removes a literal ".pdf" suffix when deriving keys.
	// When false, keys keep the legacy derivation that trims any of the
	// characters ".pdf" from the right, so "buff.pdf" becomes "bu".
	SuffixOnlyKeys bool

	Workers int // Files parsed concurrently; values below 1 mean 1.
}

// Chunker turns a directory of documents into a Store.
type Chunker struct {
	parser parser.Parser
	cfg    Config
	log    *slog.Logger
}

func New(p parser.Parser, cfg Config, log *slog.Logger) *Chunker {
	return &Chunker{parser: p, cfg: cfg, log: log}
}

// Chunk parses every file in the directory into one chunk per file.
// Files are enumerated in filename order and keys are assigned in that
// order regardless of which parse finishes first. A file that fails to
// decode aborts the run.
func (c *Chunker) Chunk(ctx context.Context) (Store, error) {
	entries, err := os.ReadDir(c.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	texts, err := c.parseAll(ctx, names)
	if err != nil {
		return nil, err
	}

	store := make(Store, len(names))
	for i, name := range names {
		key := Key(name, i+1, c.cfg.SuffixOnlyKeys)
		store[key] = Chunk{
			Filename: name,
			Type:     ContentTypeFor(name),
			Text:     texts[i],
		}
		c.log.Info("chunked document", "file", name, "key", key, "type", store[key].Type, "bytes", len(texts[i]))
	}
	return store, nil
}

type parseResult struct {
	idx  int
	text string
}

// parseAll parses the named files with at most cfg.Workers in flight and
// returns their texts in input order. The first failure stops further
// files from starting.
func (c *Chunker) parseAll(ctx context.Context, names []string) ([]string, error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	sem := make(chan struct{}, max(c.cfg.Workers, 1))
	results := make(chan parseResult, len(names))

	launched := 0
	for i, name := range names {
		sem <- struct{}{}
		if ctx.Err() != nil {
			<-sem
			break
		}
		launched++
		go func(i int, name string) {
			defer func() { <-sem }()
			text, err := c.parseFile(filepath.Join(c.cfg.Dir, name), name)
			if err != nil {
				cancel(err)
			}
			results <- parseResult{idx: i, text: text}
		}(i, name)
	}

	texts := make([]string, len(names))
	for range launched {
		r := <-results
		texts[r.idx] = r.text
	}
	if err := context.Cause(ctx); err != nil {
		return nil, err
	}
	return texts, nil
}

func (c *Chunker) parseFile(path, name string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return c.parser.Parse(f, name)
}

// ContentTypeFor infers the content type from a filename.
func ContentTypeFor(filename string) ContentType {
	if strings.Contains(filename, "example") {
		return TypeExample
	}
	return TypeDescription
}

// KeyBase derives the key prefix for a filename.
func KeyBase(filename string, suffixOnly bool) string {
	if suffixOnly {
		return strings.TrimSuffix(filename, ".pdf")
	}
	return strings.TrimRight(filename, ".pdf")
}

// Key builds "<base>_chunk_<seq>".
func Key(filename string, seq int, suffixOnly bool) string {
	return fmt.Sprintf("%s_chunk_%d", KeyBase(filename, suffixOnly), seq)
}
