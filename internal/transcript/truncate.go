package transcript

// Omission markers joining the three excerpts of a truncated transcript.
const (
	MarkerMiddleOmitted = "[... middle section omitted ...]"
	MarkerLaterOmitted  = "[... later section omitted ...]"
)

// EstimateTokens approximates the model token count of a text as
// ceil(characters / 4). A coarse, provider-agnostic heuristic, not an
// exact tokenizer.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// TruncateForPrompt caps a transcript for inclusion in a classification
// prompt. Text within ceiling estimated tokens is returned unmodified.
// Longer text is replaced by three equal-sized excerpts (a leading slice,
// a slice centered on the document midpoint, and a trailing slice),
// joined with explicit omission markers. This keeps thematic signal from
// the start, middle and end of long-form content; continuity between the
// samples is lost, which is acceptable for topic classification.
func TruncateForPrompt(text string, ceiling int) string {
	if ceiling <= 0 || EstimateTokens(text) <= ceiling {
		return text
	}

	excerpt := ceiling * 4 / 3
	mid := len(text) / 2

	head := text[:excerpt]
	middle := text[mid-excerpt/2 : mid+excerpt/2]
	tail := text[len(text)-excerpt:]

	return head +
		"\n\n" + MarkerMiddleOmitted + "\n\n" + middle +
		"\n\n" + MarkerLaterOmitted + "\n\n" + tail
}
