package sentiment

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiscope/internal/models"
)

func fixedPolarity(p float64) PolarityFunc {
	return func(string) float64 { return p }
}

func TestLocalScorer_Analyze(t *testing.T) {
	tests := []struct {
		name      string
		polarity  float64
		wantLabel string
		wantScore float64
	}{
		{"zero polarity is neutral", 0.0, models.LabelNeutral, 0.0},
		{"positive polarity", 0.5, models.LabelPositive, 0.5},
		{"negative polarity", -0.2, models.LabelNegative, -0.2},
		{"rounds to three decimals", 0.12345, models.LabelPositive, 0.123},
		{"rounds half away from zero", -0.6666, models.LabelNegative, -0.667},
		{"upper bound", 1.0, models.LabelPositive, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewLocalScorerWithPolarity(fixedPolarity(tt.polarity))

			result := scorer.Analyze(context.Background(), "  some text  ")

			assert.Equal(t, "some text", result.Text)
			assert.Equal(t, tt.wantLabel, result.Sentiment)
			assert.Equal(t, tt.wantScore, result.Confidence)
			assert.Equal(t, models.BackendLocal, result.Backend)
			assert.NoError(t, result.Err)
		})
	}
}

func TestLocalScorer_ZeroScoreHasNoSign(t *testing.T) {
	scorer := NewLocalScorerWithPolarity(fixedPolarity(math.Copysign(0, -1)))

	result := scorer.Analyze(context.Background(), "meh")

	assert.Equal(t, models.LabelNeutral, result.Sentiment)
	assert.False(t, math.Signbit(result.Confidence))
	assert.Equal(t, "0.0", FormatScore(result.Confidence))
}

func TestLocalScorer_BlankInputNeverScored(t *testing.T) {
	called := false
	scorer := NewLocalScorerWithPolarity(func(string) float64 {
		called = true
		return 1
	})

	for _, input := range []string{"", "   ", "\n\t"} {
		result := scorer.Analyze(context.Background(), input)

		assert.Equal(t, models.SentimentInvalid, result.Sentiment)
		assert.Equal(t, 0.0, result.Confidence)
		assert.ErrorIs(t, result.Err, ErrInvalidInput)
	}
	assert.False(t, called)
}

func TestLocalScorer_ScorerFailure(t *testing.T) {
	t.Run("panic becomes error sentinel", func(t *testing.T) {
		scorer := NewLocalScorerWithPolarity(func(string) float64 {
			panic("lexicon not loaded")
		})

		var result models.SentimentResult
		require.NotPanics(t, func() {
			result = scorer.Analyze(context.Background(), "hello")
		})

		assert.Equal(t, "hello", result.Text)
		assert.Equal(t, models.SentimentError, result.Sentiment)
		assert.Equal(t, 0.0, result.Confidence)
		assert.ErrorIs(t, result.Err, ErrScorerFailure)
	})

	t.Run("NaN becomes error sentinel", func(t *testing.T) {
		scorer := NewLocalScorerWithPolarity(fixedPolarity(math.NaN()))

		result := scorer.Analyze(context.Background(), "hello")

		assert.Equal(t, models.SentimentError, result.Sentiment)
		assert.ErrorIs(t, result.Err, ErrScorerFailure)
	})
}

func TestLocalScorer_CleansMarkdownBeforeScoring(t *testing.T) {
	var got string
	scorer := NewLocalScorerWithPolarity(func(text string) float64 {
		got = text
		return 0.3
	})

	result := scorer.Analyze(context.Background(), "**great** [link](https://example.com/a)")

	assert.Equal(t, "great link", got)
	assert.Equal(t, "**great** [link](https://example.com/a)", result.Text)
}

func TestLocalScorer_Vader(t *testing.T) {
	scorer := NewLocalScorer()
	ctx := context.Background()

	good := scorer.Analyze(ctx, "This is a good, wonderful day")
	assert.Equal(t, models.LabelPositive, good.Sentiment)
	assert.Greater(t, good.Confidence, 0.0)
	assert.LessOrEqual(t, good.Confidence, 1.0)

	bad := scorer.Analyze(ctx, "This is a terrible, awful day")
	assert.Equal(t, models.LabelNegative, bad.Sentiment)
	assert.Less(t, bad.Confidence, 0.0)
	assert.GreaterOrEqual(t, bad.Confidence, -1.0)
}

func TestConvertMarkdownToText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "I love it", "I love it"},
		{"emphasis stripped", "I *really* love **it**", "I really love it"},
		{"inline link keeps text", "see [the docs](https://example.com) now", "see the docs now"},
		{"bare url removed", "visit https://example.com today", "visit today"},
		{"www url removed", "visit www.example.com today", "visit today"},
		{"paragraphs joined", "first line\n\nsecond line", "first line second line"},
		{"heading kept as text", "# Title\nbody", "Title body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertMarkdownToText(tt.input))
		})
	}
}

func TestLabelForPolarity(t *testing.T) {
	assert.Equal(t, models.LabelPositive, LabelForPolarity(0.0001))
	assert.Equal(t, models.LabelNegative, LabelForPolarity(-0.0001))
	assert.Equal(t, models.LabelNeutral, LabelForPolarity(0))
}
