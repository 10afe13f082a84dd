package blog

import (
	"context"
	"log/slog"
	"sync"
)

// Service runs the draft, tone and translate stages for each request and
// keeps the session tone between requests.
type Service struct {
	gen *Generator
	log *slog.Logger

	mu   sync.RWMutex
	tone string
}

func NewService(gen *Generator, log *slog.Logger) *Service {
	return &Service{gen: gen, log: log}
}

// SetTone sets the tone applied to subsequent posts. An empty tone turns
// the rewrite stage off.
func (s *Service) SetTone(tone string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tone = tone
	return s.tone
}

// Tone returns the current session tone.
func (s *Service) Tone() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tone
}

// Generate drafts a post, applies the session tone if one is set, and
// translates it when a language is given. Any stage failure fails the
// whole request.
func (s *Service) Generate(ctx context.Context, purpose, language string) (string, error) {
	log := s.log.With("purpose", purpose, "language", language)

	post, err := s.gen.Draft(ctx, purpose)
	if err != nil {
		return "", err
	}
	draftOutline := Outline(post)
	log.Info("draft complete", "headings", len(draftOutline), "bytes", len(post))

	if tone := s.Tone(); tone != "" {
		post, err = s.gen.ModifyTone(ctx, post, tone)
		if err != nil {
			return "", err
		}
		s.checkStructure(log, "tone", draftOutline, post)
	}

	if language != "" {
		post, err = s.gen.Translate(ctx, post, language)
		if err != nil {
			return "", err
		}
		s.checkStructure(log, "translate", draftOutline, post)
	}

	return post, nil
}

// checkStructure warns when a rewrite stage changed the heading layout.
func (s *Service) checkStructure(log *slog.Logger, stage string, want []Heading, post string) {
	got := Outline(post)
	if len(got) != len(want) {
		log.Warn("rewrite changed post structure", "stage", stage, "headings_before", len(want), "headings_after", len(got))
		return
	}
	for i := range want {
		if got[i].Level != want[i].Level {
			log.Warn("rewrite changed heading level", "stage", stage, "index", i, "before", want[i].Level, "after", got[i].Level)
			return
		}
	}
}
