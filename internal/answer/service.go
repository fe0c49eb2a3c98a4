package answer

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"

	"github.com/gaziadib/voicetutor/internal/audio"
	"github.com/gaziadib/voicetutor/internal/speech"
)

type Service struct {
	llm      Completer
	tts      Synthesizer
	adjuster audio.Adjuster
	log      *logger.ZapLogger
}

func NewService(llm Completer, tts Synthesizer, adjuster audio.Adjuster, log *logger.ZapLogger) *Service {
	return &Service{
		llm:      llm,
		tts:      tts,
		adjuster: adjuster,
		log:      log,
	}
}

// Answer runs the question through the full pipeline: validate, complete,
// synthesize, optionally adjust speed, assemble the envelope.
func (s *Service) Answer(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, ErrEmptyQuestion
	}
	if req.Speed < MinSpeed || req.Speed > MaxSpeed {
		return nil, ErrSpeedOutOfRange
	}

	language, languageName := speech.ResolveLanguage(req.Language)

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("processing question: %s | speed=%gx lang=%s", preview(req.Question, 50), req.Speed, language),
		Service: "answer",
	})

	// 1) text answer
	answerText, err := s.llm.Complete(ctx, req.Question)
	if err != nil {
		return nil, fmt.Errorf("LLM failed: %w", err)
	}

	// 2) speech
	useSlowMode := req.Speed < SlowThreshold

	audioBytes, err := s.tts.Synthesize(ctx, answerText, language, useSlowMode)
	if err != nil {
		return nil, fmt.Errorf("TTS failed: %w", err)
	}
	if len(audioBytes) == 0 {
		return nil, fmt.Errorf("TTS failed: engine returned empty audio")
	}

	// 3) speed adjustment, skipped when slow mode already covered it
	if req.Speed != 1.0 && !useSlowMode {
		res := s.adjuster.Adjust(ctx, audioBytes, req.Speed)
		if res.Err != nil {
			s.log.Log(logger.LogEntry{
				Level:   "warn",
				Message: "speed adjustment failed, returning original audio",
				Service: "answer",
				Error:   res.Err,
			})
		}
		audioBytes = res.Data
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "audio ready: " + humanize.Bytes(uint64(len(audioBytes))),
		Service: "answer",
	})

	return &Response{
		Success:      true,
		YourQuestion: req.Question,
		AIAnswer:     answerText,
		AudioBase64:  base64.StdEncoding.EncodeToString(audioBytes),
		AudioSizeKB:  roundKB(len(audioBytes)),
		TTSEngine:    s.tts.Engine(),
		Speed:        req.Speed,
		Language:     language,
		LanguageName: languageName,
	}, nil
}

func roundKB(n int) float64 {
	return math.Round(float64(n)/1024*100) / 100
}

func preview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
