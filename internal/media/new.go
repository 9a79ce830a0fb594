package media

import (
	"video-archivist/internal/config"
	"video-archivist/internal/logger"
	"video-archivist/pkg/executor"
)

type implAcquirer struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Acquirer that shells out to yt-dlp and ffmpeg.
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Acquirer {
	return &implAcquirer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
