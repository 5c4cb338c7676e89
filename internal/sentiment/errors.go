package sentiment

import "errors"

var (
	// ErrInvalidInput marks blank or missing text. It never reaches a backend.
	ErrInvalidInput = errors.New("no text to analyze")
	// ErrTransport covers timeouts, connection failures and non-2xx replies.
	ErrTransport = errors.New("sentiment service unreachable")
	// ErrMalformedResponse marks a reply body that is not the expected JSON object.
	ErrMalformedResponse = errors.New("malformed sentiment response")
	// ErrScorerFailure marks a failure inside the local polarity scorer.
	ErrScorerFailure = errors.New("local sentiment scorer failed")
)
