package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/sentiscope/config"
	"github.com/spacesedan/sentiscope/internal/clients"
	"github.com/spacesedan/sentiscope/internal/sentiment"
)

// NewAnalyzer returns the analyzer for backend without any cache.
func NewAnalyzer(cfg *config.Config, backend string) (sentiment.Analyzer, error) {
	switch backend {
	case config.BackendLocal:
		return sentiment.NewLocalScorer(), nil
	case config.BackendRemote:
		return sentiment.NewRemoteScorer(clients.NewWatsonClient(cfg.Watson, nil)), nil
	default:
		return nil, fmt.Errorf("unknown analyzer backend %q", backend)
	}
}

// Build wires the configured analyzer and, when VALKEY_ADDRESS is set, wraps
// it in a result cache. The returned cache is nil when caching is off; a
// cache that cannot be reached is logged and skipped.
func Build(ctx context.Context, cfg *config.Config) (sentiment.Analyzer, *clients.ValkeyCache, error) {
	analyzer, err := NewAnalyzer(cfg, cfg.Backend)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("[App] Analyzer configured", slog.String("backend", analyzer.Backend()))

	if !cfg.Valkey.Enabled() {
		return analyzer, nil, nil
	}

	cache, err := clients.NewValkeyCache(ctx, cfg.Valkey)
	if err != nil {
		slog.Warn("[App] Result cache unavailable, continuing without it",
			slog.String("error", err.Error()))
		return analyzer, nil, nil
	}

	return sentiment.NewCachedAnalyzer(analyzer, cache), cache, nil
}
