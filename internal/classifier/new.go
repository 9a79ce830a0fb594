package classifier

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"video-archivist/internal/config"
	"video-archivist/internal/logger"
)

// messageCreator is the slice of the Anthropic client the classifier
// needs; tests inject a fake.
type messageCreator interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type implClassifier struct {
	messages  messageCreator
	model     string
	maxTokens int
	logger    logger.Logger
}

// New creates a Classifier backed by the Anthropic Messages API.
func New(cfg config.ClassifierConfig, apiKey string, log logger.Logger) Classifier {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &implClassifier{
		messages:  &client.Messages,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    log,
	}
}
