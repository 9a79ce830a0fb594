package media

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DownloadAudio fetches the audio track of a remote video with yt-dlp,
// transcoding to the configured audio format.
func (a *implAcquirer) DownloadAudio(ctx context.Context, url, destPath string) error {
	if !a.executor.Available("yt-dlp") {
		return fmt.Errorf("yt-dlp not found in PATH; install it with 'brew install yt-dlp' or 'pip install yt-dlp'")
	}

	a.logger.Info(ctx, "Downloading audio: %s", url)

	args := []string{
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", a.cfg.AudioBitrate,
		"-o", destPath,
		"--no-playlist",
		url,
	}

	if _, err := a.executor.Execute(ctx, "yt-dlp", args...); err != nil {
		return fmt.Errorf("yt-dlp download audio: %w", err)
	}

	a.logger.Info(ctx, "Audio downloaded: %s", destPath)
	return nil
}

// ExtractAudio extracts the audio track of a local video with ffmpeg at
// the fixed target codec and bitrate.
func (a *implAcquirer) ExtractAudio(ctx context.Context, videoPath, destPath string) error {
	if !a.executor.Available("ffmpeg") {
		return fmt.Errorf("ffmpeg not found in PATH; install it with 'brew install ffmpeg' or your package manager")
	}

	a.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn", // no video
		"-c:a", a.cfg.AudioCodec,
		"-b:a", a.cfg.AudioBitrate,
		"-y",
		destPath,
	}

	if _, err := a.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	a.logger.Info(ctx, "Audio extracted: %s", destPath)
	return nil
}

// FetchTitle asks yt-dlp for the video's display title. On any failure a
// timestamp-derived placeholder is returned instead.
func (a *implAcquirer) FetchTitle(ctx context.Context, url string) string {
	if a.executor.Available("yt-dlp") {
		out, err := a.executor.Execute(ctx, "yt-dlp", "--get-title", "--no-playlist", url)
		if err == nil {
			if title := strings.TrimSpace(strings.Split(out, "\n")[0]); title != "" {
				return title
			}
		} else {
			a.logger.Warn(ctx, "Title lookup failed, using placeholder: %v", err)
		}
	}
	return fmt.Sprintf("video-%s", time.Now().Format("20060102-150405"))
}
