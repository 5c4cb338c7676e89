package models

const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

// Sentinel and remote labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
	SentimentUnknown  = "unknown"
	SentimentInvalid  = "invalid"
	SentimentError    = "error"
)

const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// SentimentResult is what every analyzer hands back, including on failure.
// Err carries the classified cause and is never serialized.
type SentimentResult struct {
	Text       string  `json:"text"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Backend    string  `json:"backend,omitempty"`
	Err        error   `json:"-"`
}

func (r SentimentResult) IsSentinel() bool {
	return r.Sentiment == SentimentInvalid || r.Sentiment == SentimentError
}

type SentimentBatchRequest struct {
	Texts []string `json:"texts"`
}

type SentimentBatchResponse struct {
	Results []SentimentResult `json:"results"`
}

// Watson NLP SentimentPredict wire types.
type (
	WatsonSentimentRequest struct {
		RawDocument WatsonRawDocument `json:"raw_document"`
	}
	WatsonRawDocument struct {
		Text string `json:"text"`
	}
)

type (
	WatsonSentimentResponse struct {
		DocumentSentiment *WatsonDocumentSentiment `json:"documentSentiment"`
	}
	WatsonDocumentSentiment struct {
		Label *string  `json:"label"`
		Score *float64 `json:"score"`
	}
)
