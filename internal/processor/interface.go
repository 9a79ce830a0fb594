package processor

import "context"

// Processor defines the interface for one full ingest run: acquisition,
// transcription, assembly, classification and persistence.
type Processor interface {
	Process(ctx context.Context, input string) error
}
