package conversation

import (
	"context"
	"errors"

	"github.com/gaziadib/voicetutor/internal/answer"
)

var ErrNoInterview = errors.New("no interview in progress")

type Asker interface {
	Ask(ctx context.Context, question string, speed float64, language string) (*answer.Response, error)
}
