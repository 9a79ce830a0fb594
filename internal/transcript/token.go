package transcript

// Token kinds reported by the speech-to-text service. The kind field is
// open-ended: providers may emit values beyond these (e.g. "audio_event"),
// which the assembler treats like words.
const (
	KindWord        = "word"
	KindSpacing     = "spacing"
	KindPunctuation = "punctuation"
)

// SpeakerUnknown is the speaker id substituted when the provider omits one.
const SpeakerUnknown = "unknown"

// Token is one unit of speech output: a timestamped word, punctuation mark
// or spacing gap with a speaker attribution. Tokens are immutable after
// normalization.
type Token struct {
	Text      string
	Start     float64
	End       float64
	Kind      string
	SpeakerID string
}
