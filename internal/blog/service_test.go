package blog

import (
	"context"
	"errors"
	"testing"

	"github.com/dgallion1/brandpost/internal/llm"
)

func newTestService(writer, translator *scriptedModel, retries int) *Service {
	return NewService(NewGenerator(testStore(), writer, translator, retries, discardLogger()), discardLogger())
}

func TestService_DraftOnlyByDefault(t *testing.T) {
	writer := &scriptedModel{replies: []string{"# Post\nbody"}}
	translator := &scriptedModel{}
	svc := newTestService(writer, translator, 3)

	out, err := svc.Generate(context.Background(), "topic", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "# Post\nbody" {
		t.Errorf("expected draft, got %q", out)
	}
	if writer.calls() != 1 || translator.calls() != 0 {
		t.Errorf("expected only the draft call, got writer=%d translator=%d", writer.calls(), translator.calls())
	}
}

func TestService_AppliesToneThenTranslation(t *testing.T) {
	writer := &scriptedModel{replies: []string{"# Post\nbody", "# Post\nfriendly body"}}
	translator := &scriptedModel{replies: []string{"# Beitrag\nfreundlich"}}
	svc := newTestService(writer, translator, 3)

	if got := svc.SetTone("friendly"); got != "friendly" {
		t.Errorf("expected SetTone to echo the tone, got %q", got)
	}
	if got := svc.Tone(); got != "friendly" {
		t.Errorf("expected tone friendly, got %q", got)
	}

	out, err := svc.Generate(context.Background(), "topic", "German")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "# Beitrag\nfreundlich" {
		t.Errorf("expected translated post, got %q", out)
	}

	if len(writer.chats) != 1 || len(writer.prompts) != 1 {
		t.Fatalf("expected one draft and one tone call, got %d and %d", len(writer.chats), len(writer.prompts))
	}
	mustContain(t, writer.prompts[0], "friendly")
	if len(translator.prompts) != 1 {
		t.Fatalf("expected 1 translator call, got %d", len(translator.prompts))
	}
	mustContain(t, translator.prompts[0], "# Post\nfriendly body")
}

func TestService_EnglishSkipsTranslator(t *testing.T) {
	writer := &scriptedModel{replies: []string{"# Post\nbody"}}
	translator := &scriptedModel{replies: []string{"# never"}}
	svc := newTestService(writer, translator, 3)

	out, err := svc.Generate(context.Background(), "topic", "english")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "# Post\nbody" {
		t.Errorf("expected draft unchanged, got %q", out)
	}
	if translator.calls() != 0 {
		t.Errorf("expected no translator call, got %d", translator.calls())
	}
}

func TestService_FailedStageDiscardsDraft(t *testing.T) {
	writer := &scriptedModel{replies: []string{"# Post\nbody"}}
	translator := &scriptedModel{replies: []string{"Désolé, je ne peux pas."}}
	svc := newTestService(writer, translator, 2)

	out, err := svc.Generate(context.Background(), "topic", "French")
	if !errors.Is(err, ErrNotMarkdown) {
		t.Fatalf("expected ErrNotMarkdown, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no partial result, got %q", out)
	}
	if translator.calls() != 2 {
		t.Errorf("expected 2 translator attempts, got %d", translator.calls())
	}
}

func TestService_UnreachableStopsPipeline(t *testing.T) {
	unreachable := &llm.UnreachableError{Host: "http://127.0.0.1:11434", Err: errors.New("refused")}
	writer := &scriptedModel{err: unreachable}
	translator := &scriptedModel{}
	svc := newTestService(writer, translator, 3)
	svc.SetTone("formal")

	_, err := svc.Generate(context.Background(), "topic", "Spanish")
	if !errors.Is(err, llm.ErrServiceUnreachable) {
		t.Fatalf("expected ErrServiceUnreachable, got %v", err)
	}
	if writer.calls() != 1 || translator.calls() != 0 {
		t.Errorf("expected a single failed draft call, got writer=%d translator=%d", writer.calls(), translator.calls())
	}
}

func TestService_ClearingTone(t *testing.T) {
	writer := &scriptedModel{replies: []string{"# Post"}}
	svc := newTestService(writer, &scriptedModel{}, 3)
	svc.SetTone("witty")
	svc.SetTone("")

	if _, err := svc.Generate(context.Background(), "topic", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(writer.prompts) != 0 {
		t.Errorf("expected no tone rewrite, got %d calls", len(writer.prompts))
	}
}
