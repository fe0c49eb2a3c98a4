package answer

import (
	"context"
	"errors"
	"fmt"
)

const (
	MinSpeed = 0.5
	MaxSpeed = 2.0

	// Below this the engine's native slow synthesis beats resampling.
	SlowThreshold = 0.8
)

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrEmptyQuestion   = fmt.Errorf("%w: please provide a question", ErrInvalidInput)
	ErrSpeedOutOfRange = fmt.Errorf("%w: speed must be between %g and %g", ErrInvalidInput, MinSpeed, MaxSpeed)
)

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string, slow bool) ([]byte, error)
	Engine() string
}
