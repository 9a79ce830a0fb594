package transcript

import (
	"regexp"
	"strings"
)

// Collapses the synthesized space in front of a punctuation mark so that
// punctuation hugs the preceding word ("world ." -> "world.").
var reSpaceBeforePunct = regexp.MustCompile(`\s+(\p{P})`)

// Assemble renders an ordered token sequence as speaker-grouped transcript
// text: one "speaker: joined text" line per maximal run of consecutive
// tokens sharing a speaker id. Spacing tokens contribute no text (fragments
// are joined with synthesized spaces) but do not break a run. An empty
// token sequence yields empty output.
func Assemble(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}

	var lines []string
	speaker := tokens[0].SpeakerID
	var fragments []string

	flush := func() {
		if len(fragments) == 0 {
			return
		}
		joined := strings.Join(fragments, " ")
		joined = reSpaceBeforePunct.ReplaceAllString(joined, "$1")
		lines = append(lines, speaker+": "+joined)
		fragments = fragments[:0]
	}

	for _, tok := range tokens {
		if tok.SpeakerID != speaker {
			flush()
			speaker = tok.SpeakerID
		}
		if tok.Kind == KindSpacing {
			continue
		}
		fragments = append(fragments, tok.Text)
	}
	flush()

	return strings.Join(lines, "\n")
}

// CountWords returns the number of word tokens in the sequence.
func CountWords(tokens []Token) int {
	n := 0
	for _, tok := range tokens {
		if tok.Kind == KindWord {
			n++
		}
	}
	return n
}
