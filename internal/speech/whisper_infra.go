package speech

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrUnrecognized is returned when the recognizer produced no usable text.
// Callers surface it to the user instead of treating it as a hard failure.
var ErrUnrecognized = errors.New("speech not recognized")

type WhisperClient struct {
	client *openai.Client
}

func NewWhisperClient() *WhisperClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}
	return &WhisperClient{
		client: openai.NewClient(apiKey),
	}
}

// VOICE → TEXT
func (c *WhisperClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrUnrecognized
	}
	return text, nil
}
