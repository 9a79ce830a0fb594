package transcript

import "video-archivist/internal/transcription"

// Normalize maps raw provider word records onto Tokens one-to-one,
// in order, substituting defaults for absent fields. No reordering,
// no filtering, no merging.
func Normalize(words []transcription.Word) []Token {
	tokens := make([]Token, len(words))
	for i, w := range words {
		kind := w.Type
		if kind == "" {
			kind = KindWord
		}
		speaker := w.SpeakerID
		if speaker == "" {
			speaker = SpeakerUnknown
		}
		tokens[i] = Token{
			Text:      w.Text,
			Start:     w.Start,
			End:       w.End,
			Kind:      kind,
			SpeakerID: speaker,
		}
	}
	return tokens
}
