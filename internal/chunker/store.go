package chunker

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
)

// Store maps chunk keys to chunks.
type Store map[string]Chunk

// Keys returns the chunk keys in sorted order.
func (s Store) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Texts returns the text of every chunk of the given type, in key order.
func (s Store) Texts(t ContentType) []string {
	var out []string
	for _, k := range s.Keys() {
		if s[k].Type == t {
			out = append(out, s[k].Text)
		}
	}
	return out
}

// Save writes the store as JSON, creating the parent directory and
// replacing any previous file.
func Save(path string, s Store) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create chunk dir: %w", err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal chunks: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write chunks: %w", err)
	}
	return nil
}

// Load reads a store written by Save.
func Load(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chunks: %w", err)
	}
	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode chunks: %w", err)
	}
	if s == nil {
		s = make(Store)
	}
	return s, nil
}
