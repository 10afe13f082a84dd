package blog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dgallion1/brandpost/internal/chunker"
	"github.com/dgallion1/brandpost/internal/llm"
)

// Completer is the language-model surface the generator needs.
type Completer interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Chat(ctx context.Context, prompt, system string, ex llm.Example) (string, error)
}

// Generator drafts, re-tones and translates posts grounded in the chunk
// corpus.
type Generator struct {
	writer     Completer // Drafting and tone rewrites.
	translator Completer
	retries    int
	log        *slog.Logger

	descriptions string
	examples     string
}

func NewGenerator(store chunker.Store, writer, translator Completer, retries int, log *slog.Logger) *Generator {
	return &Generator{
		writer:       writer,
		translator:   translator,
		retries:      retries,
		log:          log,
		descriptions: BuildDraftSystemPrompt(store.Texts(chunker.TypeDescription)),
		examples:     strings.Join(store.Texts(chunker.TypeExample), "\n\n"),
	}
}

// Draft writes a new post on the given topic.
func (g *Generator) Draft(ctx context.Context, purpose string) (string, error) {
	prompt := BuildDraftPrompt(purpose)
	ex := llm.Example{Query: exampleQuery, Response: g.examples}
	return retryMarkdown(ctx, g.log.With("stage", "draft"), g.retries,
		func(ctx context.Context) (string, error) {
			return g.writer.Chat(ctx, prompt, g.descriptions, ex)
		},
		CleanMarkdown,
	)
}

// ModifyTone rewrites a post in the requested tone, keeping its content.
func (g *Generator) ModifyTone(ctx context.Context, post, tone string) (string, error) {
	prompt := BuildTonePrompt(post, tone)
	return retryMarkdown(ctx, g.log.With("stage", "tone"), g.retries,
		func(ctx context.Context) (string, error) {
			return g.writer.Generate(ctx, prompt)
		},
		CleanMarkdown,
	)
}

// Translate renders a post in the target language. English targets return
// the post unchanged without calling the model.
func (g *Generator) Translate(ctx context.Context, post, language string) (string, error) {
	if IsEnglish(language) {
		return post, nil
	}
	prompt := BuildTranslatePrompt(post, language)
	return retryMarkdown(ctx, g.log.With("stage", "translate", "language", language), g.retries,
		func(ctx context.Context) (string, error) {
			return g.translator.Generate(ctx, prompt)
		},
		CleanMarkdown,
	)
}

// IsEnglish reports whether a language name means English.
func IsEnglish(language string) bool {
	return strings.ToLower(strings.TrimSpace(language)) == "english"
}
