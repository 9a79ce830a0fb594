package transcription

import (
	"net/http"
	"time"

	"video-archivist/internal/config"
	"video-archivist/internal/logger"
)

type implTranscriber struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  logger.Logger
}

// New creates a Transcriber backed by the ElevenLabs speech-to-text API.
// The HTTP client carries the bounded wait for the whole transcription
// call (uploads of long recordings can take a while).
func New(cfg config.SpeechTextConfig, apiKey string, log logger.Logger) Transcriber {
	return &implTranscriber{
		apiKey:  apiKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		},
		logger: log,
	}
}
