// Package sentiment turns text into a SentimentResult using either a local
// VADER scorer or the remote Watson NLP service. Analyzers never return
// errors: failures come back as "invalid" or "error" sentinel results.
package sentiment

import (
	"context"
	"strings"

	"github.com/spacesedan/sentiscope/internal/models"
)

type Analyzer interface {
	Analyze(ctx context.Context, text string) models.SentimentResult
	// Backend names the producer, "local" or "remote".
	Backend() string
}

// Pinger is implemented by analyzers and caches that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NormalizeText trims surrounding whitespace and rejects blank input.
func NormalizeText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrInvalidInput
	}
	return text, nil
}

func InvalidResult(backend string) models.SentimentResult {
	return models.SentimentResult{
		Text:       "",
		Sentiment:  models.SentimentInvalid,
		Confidence: 0.0,
		Backend:    backend,
		Err:        ErrInvalidInput,
	}
}

func ErrorResult(text, backend string, err error) models.SentimentResult {
	return models.SentimentResult{
		Text:       text,
		Sentiment:  models.SentimentError,
		Confidence: 0.0,
		Backend:    backend,
		Err:        err,
	}
}
