package ai

import (
	"context"
)

// TextGenerator defines the contract for the external text-generation collaborator.
// The core supplies a stage-specific system prompt plus formatted conversation
// history and receives free-form text. Implementations are swappable (Gemini today,
// other providers later).
type TextGenerator interface {
	Generate(ctx context.Context, prompt, history string) (string, error)
}
