package ai

import "context"

type Completer interface {
	// Complete returns the model's answer for a single user prompt.
	Complete(ctx context.Context, prompt string) (string, error)
}
