package sentiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/sentiscope/internal/models"
)

// recordingAnalyzer echoes a fixed result and remembers every text it saw.
type recordingAnalyzer struct {
	result models.SentimentResult
	seen   []string
}

func (a *recordingAnalyzer) Analyze(_ context.Context, text string) models.SentimentResult {
	a.seen = append(a.seen, text)
	r := a.result
	r.Text = text
	return r
}

func (a *recordingAnalyzer) Backend() string { return "fake" }

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain text", "hello", "hello", false},
		{"surrounding whitespace", "  I love this \n", "I love this", false},
		{"inner whitespace kept", "a  b", "a  b", false},
		{"empty", "", "", true},
		{"spaces only", "   ", "", true},
		{"tabs and newlines", "\t\n\r ", "", true},
		{"unicode space", "\u00a0\u3000", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeText(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSentinelResults(t *testing.T) {
	t.Run("invalid result", func(t *testing.T) {
		r := InvalidResult(models.BackendRemote)

		assert.Equal(t, "", r.Text)
		assert.Equal(t, models.SentimentInvalid, r.Sentiment)
		assert.Equal(t, 0.0, r.Confidence)
		assert.ErrorIs(t, r.Err, ErrInvalidInput)
		assert.True(t, r.IsSentinel())
	})

	t.Run("error result keeps the text", func(t *testing.T) {
		r := ErrorResult("hello", models.BackendRemote, ErrTransport)

		assert.Equal(t, "hello", r.Text)
		assert.Equal(t, models.SentimentError, r.Sentiment)
		assert.Equal(t, 0.0, r.Confidence)
		assert.ErrorIs(t, r.Err, ErrTransport)
		assert.True(t, r.IsSentinel())
	})
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "0.0"},
		{0.5, "0.5"},
		{-0.2, "-0.2"},
		{0.87, "0.87"},
		{1, "1.0"},
		{-1, "-1.0"},
		{0.123, "0.123"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatScore(tt.score))
		})
	}
}
