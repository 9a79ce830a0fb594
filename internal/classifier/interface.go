package classifier

import "context"

// Input carries everything the classification service sees for one run.
type Input struct {
	Transcript string // already truncated to the token ceiling upstream
	Source     string
	Title      string
	Digest     string // rendered library tree
	HasEntries bool   // selects the bootstrap vs incremental prompt
}

// Plan is the classifier's placement decision for a new transcript.
// Transient: consumed immediately to compute an output path and then
// folded into the entry's metadata.
type Plan struct {
	Category   string `json:"category"` // kebab-case, single path segment
	Reasoning  string `json:"reasoning"`
	Confidence string `json:"confidence"` // high, medium, low
}

// Classifier defines the interface for the library placement planner.
type Classifier interface {
	Classify(ctx context.Context, in Input) (*Plan, error)
}
