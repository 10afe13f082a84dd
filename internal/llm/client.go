package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// ErrServiceUnreachable is matched by every error returned when the
// language-model server cannot be reached.
var ErrServiceUnreachable = errors.New("language model service unreachable")

// UnreachableError carries the server address and the underlying failure.
type UnreachableError struct {
	Host string
	Err  error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("could not connect to Ollama server, check that it is listening on %s", e.Host)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

func (e *UnreachableError) Is(target error) bool { return target == ErrServiceUnreachable }

// Params are the sampling options sent with every request.
type Params struct {
	Seed        int
	Temperature float64
	MaxTokens   int // Maps to Ollama's num_predict.
}

// Example is one worked (query, response) exchange shown to the model
// before the live prompt.
type Example struct {
	Query    string
	Response string
}

// Model is a named Ollama model with fixed sampling parameters.
type Model struct {
	name   string
	host   string
	params Params
	llm    llms.Model
	stats  *Stats
}

// NewOllama connects a Model to an Ollama server.
func NewOllama(host, name string, params Params, stats *Stats) (*Model, error) {
	client, err := ollama.New(
		ollama.WithServerURL(host),
		ollama.WithModel(name),
	)
	if err != nil {
		return nil, fmt.Errorf("init ollama %s: %w", name, err)
	}
	return New(client, name, host, params, stats), nil
}

// New wraps any langchaingo model.
func New(model llms.Model, name, host string, params Params, stats *Stats) *Model {
	return &Model{
		name:   name,
		host:   host,
		params: params,
		llm:    model,
		stats:  stats,
	}
}

// Name returns the model identifier.
func (m *Model) Name() string { return m.name }

// Generate runs a single-prompt completion.
func (m *Model) Generate(ctx context.Context, prompt string) (string, error) {
	return m.call(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	})
}

// Chat runs a conversation of system prompt, one worked example and the
// live prompt.
func (m *Model) Chat(ctx context.Context, prompt, system string, ex Example) (string, error) {
	return m.call(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, ex.Query),
		llms.TextParts(llms.ChatMessageTypeAI, ex.Response),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	})
}

func (m *Model) call(ctx context.Context, messages []llms.MessageContent) (string, error) {
	start := time.Now()
	resp, err := m.llm.GenerateContent(ctx, messages,
		llms.WithSeed(m.params.Seed),
		llms.WithTemperature(m.params.Temperature),
		llms.WithMaxTokens(m.params.MaxTokens),
	)
	if m.stats != nil {
		m.stats.Record(m.name, time.Since(start).Milliseconds())
	}
	if err != nil {
		// Cancellation and deadlines belong to the caller, not the server.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", &UnreachableError{Host: m.host, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", m.name)
	}
	return resp.Choices[0].Content, nil
}
