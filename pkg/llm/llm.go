package llm

import (
	"context"

	"github.com/insightstream/strategy-ai/pkg/model"
)

// MaxResponseTokens is the hard ceiling on requested output tokens.
// Caller-supplied values above it are capped, not rejected, to bound
// cost and latency on every call.
const MaxResponseTokens = 2000

// Default sampling parameters, matching the pipeline's calibration.
const (
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
)

// Options are the per-call sampling parameters.
type Options struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// DefaultOptions returns the standard sampling configuration.
func DefaultOptions() Options {
	return Options{
		Temperature: DefaultTemperature,
		MaxTokens:   MaxResponseTokens,
		TopP:        DefaultTopP,
	}
}

// capTokens clamps a requested token budget into (0, MaxResponseTokens].
func capTokens(requested int) int {
	if requested <= 0 || requested > MaxResponseTokens {
		return MaxResponseTokens
	}
	return requested
}

// Client is the single outbound dependency of the analysis pipeline:
// one chat completion per call, raw text back. Implementations do not
// retry; transport and HTTP failures surface verbatim to the caller.
type Client interface {
	Chat(ctx context.Context, messages []model.Message, opts Options) (string, error)
}
