package sentiment

import (
	"context"

	"github.com/spacesedan/sentiscope/internal/models"
)

// ProgressFunc is called after each item of a batch.
type ProgressFunc func(done, total int, result models.SentimentResult)

// AnalyzeBatch analyzes texts one at a time, preserving order and length.
func AnalyzeBatch(ctx context.Context, analyzer Analyzer, texts []string, progress ProgressFunc) []models.SentimentResult {
	results := make([]models.SentimentResult, 0, len(texts))
	for i, text := range texts {
		result := analyzer.Analyze(ctx, text)
		results = append(results, result)
		if progress != nil {
			progress(i+1, len(texts), result)
		}
	}
	return results
}
