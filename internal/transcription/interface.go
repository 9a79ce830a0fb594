package transcription

import "context"

// Transcriber defines the interface for the external speech-to-text
// service. A failed transcription is fatal for the pipeline run.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}
