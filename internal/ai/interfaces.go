package ai

import (
	"context"

	"careersie/internal/types"
)

// AIProvider interface for different AI implementations
// All methods return token usage information - callers can ignore it if not needed
type AIProvider interface {
	ParseJob(ctx context.Context, input types.ParseJobInput) (types.ParsedJobData, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
