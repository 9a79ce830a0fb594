package transcription

// Word represents a single raw word/event record from the speech-to-text
// service. Any field may be absent in the wire response; the transcript
// normalizer fills the gaps with defaults.
type Word struct {
	Text      string  `json:"text"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Type      string  `json:"type"` // "word", "spacing", "punctuation", ...
	SpeakerID string  `json:"speaker_id"`
}

// Result is the top-level speech-to-text response: the full transcript
// text plus the ordered word records and language detection fields.
// Raw preserves the verbatim response body, including provider fields
// this pipeline does not model.
type Result struct {
	LanguageCode        string  `json:"language_code"`
	LanguageProbability float64 `json:"language_probability"`
	Text                string  `json:"text"`
	Words               []Word  `json:"words"`

	Raw []byte `json:"-"`
}
