package sentiment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/spacesedan/sentiscope/internal/models"
)

type ResultCache interface {
	Get(ctx context.Context, key string) (models.SentimentResult, bool, error)
	Set(ctx context.Context, key string, result models.SentimentResult) error
}

// CachedAnalyzer serves repeated texts from a ResultCache. Sentinel results
// are never stored and cache failures fall through to the wrapped analyzer.
type CachedAnalyzer struct {
	next  Analyzer
	cache ResultCache
}

func NewCachedAnalyzer(next Analyzer, cache ResultCache) *CachedAnalyzer {
	return &CachedAnalyzer{next: next, cache: cache}
}

func (c *CachedAnalyzer) Backend() string {
	return c.next.Backend()
}

func (c *CachedAnalyzer) Analyze(ctx context.Context, raw string) models.SentimentResult {
	text, err := NormalizeText(raw)
	if err != nil {
		return InvalidResult(c.Backend())
	}

	key := CacheKey(c.Backend(), text)
	cached, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("[CachedAnalyzer] Cache lookup failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	} else if ok {
		slog.Debug("[CachedAnalyzer] Cache hit", slog.String("key", key))
		return cached
	}

	result := c.next.Analyze(ctx, text)
	if result.Err != nil || result.IsSentinel() {
		return result
	}

	if err := c.cache.Set(ctx, key, result); err != nil {
		slog.Warn("[CachedAnalyzer] Cache store failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	return result
}

func (c *CachedAnalyzer) Ping(ctx context.Context) error {
	if p, ok := c.next.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func CacheKey(backend, text string) string {
	sum := sha256.Sum256([]byte(text))
	return "sentiment:" + backend + ":" + hex.EncodeToString(sum[:])
}
