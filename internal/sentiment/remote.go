package sentiment

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/spacesedan/sentiscope/internal/models"
)

// Predictor is the transport behind RemoteScorer.
type Predictor interface {
	SentimentPredict(ctx context.Context, text string) (*models.WatsonSentimentResponse, error)
}

// RemoteScorer adapts a Predictor to the Analyzer contract.
type RemoteScorer struct {
	client Predictor
}

func NewRemoteScorer(client Predictor) *RemoteScorer {
	return &RemoteScorer{client: client}
}

func (s *RemoteScorer) Backend() string {
	return models.BackendRemote
}

func (s *RemoteScorer) Analyze(ctx context.Context, raw string) models.SentimentResult {
	text, err := NormalizeText(raw)
	if err != nil {
		return InvalidResult(models.BackendRemote)
	}

	resp, err := s.client.SentimentPredict(ctx, text)
	if err != nil {
		slog.Warn("[RemoteScorer] Sentiment prediction failed",
			slog.String("cause", failureKind(err)),
			slog.String("error", err.Error()))
		return ErrorResult(text, models.BackendRemote, err)
	}

	label, score := models.SentimentUnknown, 0.0
	if resp != nil && resp.DocumentSentiment != nil {
		if resp.DocumentSentiment.Label != nil {
			label = NormalizeRemoteLabel(*resp.DocumentSentiment.Label)
		}
		if resp.DocumentSentiment.Score != nil {
			score = *resp.DocumentSentiment.Score
		}
	}

	return models.SentimentResult{
		Text:       text,
		Sentiment:  label,
		Confidence: score,
		Backend:    models.BackendRemote,
	}
}

// Ping reports whether the remote service answers at all.
func (s *RemoteScorer) Ping(ctx context.Context) error {
	if p, ok := s.client.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// NormalizeRemoteLabel lowercases the label and strips Watson's SENT_ prefix.
// An empty label becomes "unknown".
func NormalizeRemoteLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.TrimPrefix(label, "sent_")
	if label == "" {
		return models.SentimentUnknown
	}
	return label
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	default:
		return "unknown"
	}
}
