package contracts

import "context"

type ModelRunner interface {
	InvokeModel(ctx context.Context, prompt string) (string, error)
	// InvokeModelStreaming calls onChunk for every delta and returns the
	// concatenated completion.
	InvokeModelStreaming(ctx context.Context, prompt string, onChunk func(chunk string)) (string, error)
}
