package conversation

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/gaziadib/voicetutor/internal/answer"
)

type mockAPI struct {
	prompts []string
	askFunc func(ctx context.Context, question string, speed float64, language string) (*answer.Response, error)
}

func (m *mockAPI) Ask(ctx context.Context, question string, speed float64, language string) (*answer.Response, error) {
	m.prompts = append(m.prompts, question)
	if m.askFunc != nil {
		return m.askFunc(ctx, question, speed, language)
	}
	return &answer.Response{
		Success:     true,
		AIAnswer:    "reply #" + string(rune('0'+len(m.prompts))),
		AudioBase64: base64.StdEncoding.EncodeToString([]byte("mp3")),
		Speed:       speed,
		Language:    language,
	}, nil
}

func TestAsk_NormalModeHasNoPrefix(t *testing.T) {
	api := &mockAPI{}
	s := NewSession(api)

	if _, err := s.Ask(context.Background(), "What is Go?", 1.0, "en"); err != nil {
		t.Fatalf("ask: %v", err)
	}

	if api.prompts[0] != "What is Go?" {
		t.Errorf("prompt was rewritten: %q", api.prompts[0])
	}
	if len(s.History()) != 1 {
		t.Errorf("history length = %d, want 1", len(s.History()))
	}
}

func TestInterview_StartThenAnswer(t *testing.T) {
	api := &mockAPI{}
	s := NewSession(api)
	ctx := context.Background()

	if _, err := s.StartInterview(ctx, "Software Engineer"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Mode() != ModeActive {
		t.Fatal("session not active after start")
	}

	if _, err := s.SubmitAnswer(ctx, "I would use a hash map"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// transcript: exactly 2 entries, in order
	h := s.History()
	if len(h) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(h))
	}
	if h[0].User != "Start Interview" {
		t.Errorf("first entry user = %q", h[0].User)
	}
	if h[1].User != "I would use a hash map" {
		t.Errorf("second entry user = %q", h[1].User)
	}

	// second transmitted prompt carries the persona instruction and the answer
	second := api.prompts[1]
	if !strings.Contains(second, "You are conducting a Software Engineer interview") {
		t.Errorf("persona instruction missing from prompt: %q", second)
	}
	if !strings.Contains(second, "My answer: I would use a hash map") {
		t.Errorf("answer text missing from prompt: %q", second)
	}
}

func TestInterview_FirstPromptAsksForFirstQuestion(t *testing.T) {
	api := &mockAPI{}
	s := NewSession(api)

	if _, err := s.StartInterview(context.Background(), "Data Scientist"); err != nil {
		t.Fatalf("start: %v", err)
	}

	first := api.prompts[0]
	if !strings.Contains(first, "Please ask me the first Data Scientist interview question.") {
		t.Errorf("unexpected first prompt: %q", first)
	}
	if !strings.Contains(first, "You are conducting a Data Scientist interview") {
		t.Errorf("persona instruction missing: %q", first)
	}
}

func TestInterview_EndResetsState(t *testing.T) {
	api := &mockAPI{}
	s := NewSession(api)
	ctx := context.Background()

	if _, err := s.StartInterview(ctx, "UX Designer"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.EndInterview(ctx); err != nil {
		t.Fatalf("end: %v", err)
	}

	if s.Mode() != ModeIdle {
		t.Error("session still active after end")
	}

	last := api.prompts[len(api.prompts)-1]
	if !strings.Contains(last, "overall feedback on my interview performance") {
		t.Errorf("final prompt is not the feedback request: %q", last)
	}

	// follow-up questions go out bare again
	if _, err := s.Ask(ctx, "plain question", 1.0, "en"); err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got := api.prompts[len(api.prompts)-1]; got != "plain question" {
		t.Errorf("persona context leaked after end: %q", got)
	}
}

func TestSubmitAnswer_RequiresActiveInterview(t *testing.T) {
	s := NewSession(&mockAPI{})

	if _, err := s.SubmitAnswer(context.Background(), "answer"); !errors.Is(err, ErrNoInterview) {
		t.Fatalf("expected ErrNoInterview, got %v", err)
	}
	if _, err := s.EndInterview(context.Background()); !errors.Is(err, ErrNoInterview) {
		t.Fatalf("expected ErrNoInterview, got %v", err)
	}
}

func TestAsk_APIErrorLeavesTranscriptAlone(t *testing.T) {
	api := &mockAPI{askFunc: func(context.Context, string, float64, string) (*answer.Response, error) {
		return nil, errors.New("connection refused")
	}}
	s := NewSession(api)

	if _, err := s.Ask(context.Background(), "hello", 1.0, "en"); err == nil {
		t.Fatal("expected error")
	}
	if len(s.History()) != 0 {
		t.Errorf("failed exchange recorded: %d entries", len(s.History()))
	}
}

func TestClear(t *testing.T) {
	api := &mockAPI{}
	s := NewSession(api)

	if _, err := s.Ask(context.Background(), "hello", 1.0, "en"); err != nil {
		t.Fatalf("ask: %v", err)
	}
	s.Clear()

	if len(s.History()) != 0 || s.Last() != nil {
		t.Error("clear did not reset the transcript")
	}
}

func TestTurnAudioDecoded(t *testing.T) {
	api := &mockAPI{}
	s := NewSession(api)

	if _, err := s.Ask(context.Background(), "hello", 1.0, "en"); err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got := string(s.History()[0].Audio); got != "mp3" {
		t.Errorf("turn audio = %q, want decoded bytes", got)
	}
}
