package library

// MetadataFile is the marker record whose presence (and validity) makes a
// directory a transcript entry. Any component reading the archive must
// honor this contract.
const MetadataFile = "metadata.json"

// NodeKind tags a library node as either a category folder or a
// transcript entry.
type NodeKind int

const (
	CategoryFolder NodeKind = iota
	TranscriptEntry
)

// Node is one directory in the archive tree. A category folder has
// children and no metadata; a transcript entry has metadata and no
// children. Identity is the path relative to the archive root.
type Node struct {
	Name     string
	Path     string // relative to the archive root; "" for the root itself
	Kind     NodeKind
	Meta     *Metadata // non-nil iff Kind == TranscriptEntry
	Children []*Node
}

// HasEntries reports whether any transcript entry exists under the node.
func (n *Node) HasEntries() bool {
	if n.Kind == TranscriptEntry {
		return true
	}
	for _, c := range n.Children {
		if c.HasEntries() {
			return true
		}
	}
	return false
}

// Theme is the classification decision folded into a transcript entry's
// metadata at write time.
type Theme struct {
	Category   string `json:"category"`
	Label      string `json:"label"`
	Folder     string `json:"folder"`
	Confidence string `json:"confidence"` // high, medium, low
	Summary    string `json:"summary"`
}

// Quality holds the transcription quality fields reported by the
// speech-to-text service.
type Quality struct {
	Language           string  `json:"language"`
	LanguageConfidence float64 `json:"language_confidence"`
	WordCount          int     `json:"word_count"`
}

// Metadata is the persisted record for one transcript entry. Created once
// at write time; never updated in place by this pipeline.
type Metadata struct {
	Source  string  `json:"source"`
	Title   string  `json:"title"`
	Date    string  `json:"date"` // ISO date, YYYY-MM-DD
	Theme   Theme   `json:"theme"`
	Quality Quality `json:"quality"`
}
