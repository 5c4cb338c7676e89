package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spacesedan/sentiscope/config"
	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/spacesedan/sentiscope/internal/sentiment"
)

// WatsonClient posts text to the Watson NLP SentimentPredict endpoint.
// It is safe for concurrent use.
type WatsonClient struct {
	url     string
	modelID string
	Client  *http.Client
}

// NewWatsonClient builds a client from cfg. httpClient may be nil; when it
// has no timeout the configured one (or DEFAULT_WATSON_TIMEOUT) is applied.
func NewWatsonClient(cfg config.WatsonConfig, httpClient *http.Client) *WatsonClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DEFAULT_WATSON_TIMEOUT
	}

	var client http.Client
	if httpClient != nil {
		client = *httpClient
	}
	if client.Timeout <= 0 {
		client.Timeout = timeout
	}

	slog.Info("[WatsonClient] Initializing Client",
		slog.String("url", cfg.URL),
		slog.String("model_id", cfg.ModelID),
		slog.Duration("timeout", client.Timeout))

	return &WatsonClient{
		url:     cfg.URL,
		modelID: cfg.ModelID,
		Client:  &client,
	}
}

func (w *WatsonClient) SentimentPredict(ctx context.Context, text string) (*models.WatsonSentimentResponse, error) {
	var result models.WatsonSentimentResponse
	slog.Debug("[WatsonClient] Requesting sentiment prediction",
		slog.Int("text_length", len(text)))
	start := time.Now()

	input := models.WatsonSentimentRequest{
		RawDocument: models.WatsonRawDocument{Text: text},
	}
	if err := w.postJSON(ctx, input, &result); err != nil {
		slog.Error("[WatsonClient] Sentiment prediction request failed",
			slog.Duration("elapsed", time.Since(start)))
		return nil, err
	}

	slog.Debug("[WatsonClient] Sentiment prediction request successful",
		slog.Duration("elapsed", time.Since(start)))
	return &result, nil
}

// Ping treats any HTTP reply as reachable; only transport failures count.
func (w *WatsonClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, PING_TIMEOUT)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, w.url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", sentiment.ErrTransport, err)
	}
	resp.Body.Close()

	return nil
}

func (w *WatsonClient) postJSON(ctx context.Context, input interface{}, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		slog.Error("[WatsonClient] Failed to marshal input",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		slog.Error("[WatsonClient] Failed to build request",
			slog.String("endpoint", w.url),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: failed to build request: %w", sentiment.ErrTransport, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set(MODEL_ID_HEADER, w.modelID)

	resp, err := w.Client.Do(req)
	if err != nil {
		slog.Error("[WatsonClient] Request failed",
			slog.String("endpoint", w.url),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", sentiment.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("[WatsonClient] Failed to read response",
			slog.String("endpoint", w.url),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: failed to read response: %w", sentiment.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("[WatsonClient] Unexpected status code",
			slog.String("endpoint", w.url),
			slog.String("error", errMsg(nil, resp)),
			getPreview(respBody))
		return fmt.Errorf("%w: %s", sentiment.ErrTransport, errMsg(nil, resp))
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[WatsonClient] Failed to unmarshal response",
			slog.String("endpoint", w.url),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))

		return fmt.Errorf("%w: %w", sentiment.ErrMalformedResponse, err)
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
