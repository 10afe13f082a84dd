package blog

import (
	"context"
	"io"
	"log/slog"

	"github.com/dgallion1/brandpost/internal/llm"
)

type chatCall struct {
	prompt, system string
	example        llm.Example
}

// scriptedModel replays replies in order; the last reply repeats.
type scriptedModel struct {
	replies []string
	err     error

	prompts []string
	chats   []chatCall
}

func (m *scriptedModel) next() (string, error) {
	if m.err != nil {
		return "", m.err
	}
	n := len(m.prompts) + len(m.chats) - 1
	if n >= len(m.replies) {
		n = len(m.replies) - 1
	}
	return m.replies[n], nil
}

func (m *scriptedModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.next()
}

func (m *scriptedModel) Chat(ctx context.Context, prompt, system string, ex llm.Example) (string, error) {
	m.chats = append(m.chats, chatCall{prompt: prompt, system: system, example: ex})
	return m.next()
}

func (m *scriptedModel) calls() int { return len(m.prompts) + len(m.chats) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
