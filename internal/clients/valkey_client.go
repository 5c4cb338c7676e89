package clients

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/sentiscope/config"
	"github.com/spacesedan/sentiscope/internal/models"
)

// ValkeyCache stores successful sentiment results as JSON strings with a TTL.
type ValkeyCache struct {
	Client valkey.Client
	ttl    time.Duration
}

func NewValkeyCache(ctx context.Context, cfg config.ValkeyConfig) (*ValkeyCache, error) {
	opts := valkey.ClientOption{
		InitAddress: []string{
			cfg.Address,
		},
		Password:         cfg.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if cfg.TLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	vc := &ValkeyCache{Client: client, ttl: cfg.TTL}
	if err := vc.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey",
		slog.String("address", cfg.Address),
		slog.Duration("ttl", cfg.TTL))

	return vc, nil
}

func (vc *ValkeyCache) Get(ctx context.Context, key string) (models.SentimentResult, bool, error) {
	raw, err := vc.Client.Do(ctx, vc.Client.B().Get().Key(key).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return models.SentimentResult{}, false, nil
	}
	if err != nil {
		return models.SentimentResult{}, false, err
	}

	result, err := decodeResult(raw)
	if err != nil {
		return models.SentimentResult{}, false, err
	}
	return result, true, nil
}

func (vc *ValkeyCache) Set(ctx context.Context, key string, result models.SentimentResult) error {
	raw, err := encodeResult(result)
	if err != nil {
		return err
	}

	cmd := vc.Client.B().Set().Key(key).Value(raw).ExSeconds(ttlSeconds(vc.ttl)).Build()
	return vc.Client.Do(ctx, cmd).Error()
}

func (vc *ValkeyCache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, PING_TIMEOUT)
	defer cancel()

	return vc.Client.Do(ctx, vc.Client.B().Ping().Build()).Error()
}

func (vc *ValkeyCache) Close() {
	if vc != nil && vc.Client != nil {
		vc.Client.Close()
	}
}

func encodeResult(result models.SentimentResult) (string, error) {
	b, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cached result: %w", err)
	}
	return string(b), nil
}

func decodeResult(raw string) (models.SentimentResult, error) {
	var result models.SentimentResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return models.SentimentResult{}, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}
	return result, nil
}

// ttlSeconds rounds up to whole seconds; expiry is at least one second.
func ttlSeconds(ttl time.Duration) int64 {
	secs := int64((ttl + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
