package ai

import (
	"context"
)

// TextGenerator defines the contract for the completion service.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type TextGenerator interface {
	// Generate produces free text for the given system instruction and user
	// prompt. The returned text is whitespace-trimmed model output; any error
	// is fatal for the request that issued it.
	Generate(ctx context.Context, system, prompt string) (string, error)
}
