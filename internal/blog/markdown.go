package blog

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
)

// ErrNotMarkdown is returned when every attempt produced output that could
// not be read as a Markdown post.
var ErrNotMarkdown = errors.New("llm output could not be parsed as markdown after retries")

var fencedMarkdownRe = regexp.MustCompile("(?s)^```markdown\\s*(.*?)\\s*```$")

// CleanMarkdown accepts output that starts with a heading marker or is a
// single ```markdown fenced block, and returns the bare Markdown.
func CleanMarkdown(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return s, true
	}
	if m := fencedMarkdownRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// retryMarkdown invokes call until validate accepts its output, at most
// attempts times. Call errors end the loop immediately.
func retryMarkdown(ctx context.Context, log *slog.Logger, attempts int,
	call func(context.Context) (string, error),
	validate func(string) (string, bool),
) (string, error) {
	attempts = max(attempts, 1)
	for attempt := 1; attempt <= attempts; attempt++ {
		out, err := call(ctx)
		if err != nil {
			return "", err
		}
		if md, ok := validate(out); ok {
			return md, nil
		}
		log.Warn("model output is not clean markdown", "attempt", attempt, "max_attempts", attempts)
	}
	return "", ErrNotMarkdown
}
