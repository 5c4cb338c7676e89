package clients

import "time"

const (
	DEFAULT_WATSON_TIMEOUT = 10 * time.Second
	PING_TIMEOUT           = 3 * time.Second
	MODEL_ID_HEADER        = "grpc-metadata-mm-model-id"
	USER_AGENT             = "sentiscope-client/1.0 (+https://github.com/spacesedan/sentiscope)"
)
