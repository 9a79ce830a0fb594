package media

import "context"

// Acquirer defines the interface for turning a pipeline input (remote URL
// or local video file) into a local audio file ready for transcription.
type Acquirer interface {
	// DownloadAudio fetches the audio track of a remote video to destPath.
	DownloadAudio(ctx context.Context, url, destPath string) error
	// ExtractAudio extracts the audio track of a local video file to
	// destPath with the configured target codec and bitrate.
	ExtractAudio(ctx context.Context, videoPath, destPath string) error
	// FetchTitle returns a best-effort display title for a remote video.
	// Never fatal: failures fall back to a timestamp-derived placeholder.
	FetchTitle(ctx context.Context, url string) string
}
