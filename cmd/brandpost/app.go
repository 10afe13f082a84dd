package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/brandpost/internal/blog"
	"github.com/dgallion1/brandpost/internal/chunker"
	"github.com/dgallion1/brandpost/internal/config"
	"github.com/dgallion1/brandpost/internal/llm"
	"github.com/dgallion1/brandpost/internal/parser"
)

// statsWindow is how long latency samples are kept.
const statsWindow = time.Hour

// buildCorpus chunks the PDF directory and persists the result, or loads
// the previously saved chunk file when rechunk is false.
func buildCorpus(ctx context.Context, cfg config.Config, log *slog.Logger, rechunk bool) (chunker.Store, error) {
	if !rechunk {
		store, err := chunker.Load(cfg.ChunksPath)
		if err != nil {
			return nil, err
		}
		log.Info("loaded chunks", "path", cfg.ChunksPath, "chunks", len(store))
		return store, nil
	}

	c := chunker.New(&parser.PDFParser{Config: cfg.Parser()}, cfg.Chunker(), log)
	store, err := c.Chunk(ctx)
	if err != nil {
		return nil, err
	}
	if err := chunker.Save(cfg.ChunksPath, store); err != nil {
		return nil, err
	}
	log.Info("saved chunks", "path", cfg.ChunksPath, "chunks", len(store))
	return store, nil
}

// buildService connects the drafting and translation models.
func buildService(cfg config.Config, store chunker.Store, stats *llm.Stats, log *slog.Logger) (*blog.Service, error) {
	writer, err := llm.NewOllama(cfg.OllamaHost, cfg.GenModel, cfg.GenParams(), stats)
	if err != nil {
		return nil, fmt.Errorf("writer model: %w", err)
	}
	translator, err := llm.NewOllama(cfg.OllamaHost, cfg.TranslateModel, cfg.TranslateParams(), stats)
	if err != nil {
		return nil, fmt.Errorf("translator model: %w", err)
	}
	gen := blog.NewGenerator(store, writer, translator, cfg.MarkdownRetries, log)
	return blog.NewService(gen, log), nil
}
