package processor

import (
	"video-archivist/internal/classifier"
	"video-archivist/internal/config"
	"video-archivist/internal/logger"
	"video-archivist/internal/media"
	"video-archivist/internal/transcription"
)

type implProcessor struct {
	cfg         *config.Config
	acquirer    media.Acquirer
	transcriber transcription.Transcriber
	classifier  classifier.Classifier
	logger      logger.Logger
	writeDocx   bool
}

// Option customizes Processor creation
type Option func(*implProcessor)

// WithDocx additionally writes a transcription.docx artifact per entry
func WithDocx() Option {
	return func(p *implProcessor) {
		p.writeDocx = true
	}
}

// New creates a new Processor instance
func New(cfg *config.Config, acq media.Acquirer, tr transcription.Transcriber,
	cl classifier.Classifier, log logger.Logger, opts ...Option) Processor {

	p := &implProcessor{
		cfg:         cfg,
		acquirer:    acq,
		transcriber: tr,
		classifier:  cl,
		logger:      log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
