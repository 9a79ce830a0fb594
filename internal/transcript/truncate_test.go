package transcript

import (
	"strings"
	"testing"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"one char", "a", 1},
		{"four chars", "abcd", 1},
		{"five chars rounds up", "abcde", 2},
		{"eight chars", "abcdefgh", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateTokens(tt.text); got != tt.want {
				t.Errorf("EstimateTokens(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestTruncateForPromptUnderCeiling(t *testing.T) {
	text := strings.Repeat("hello world. ", 100)
	got := TruncateForPrompt(text, 10000)
	if got != text {
		t.Error("text under the ceiling should be returned unmodified")
	}
}

func TestTruncateForPromptOverCeiling(t *testing.T) {
	const ceiling = 100
	text := strings.Repeat("x", ceiling*4*10) // far over the ceiling

	got := TruncateForPrompt(text, ceiling)

	if !strings.Contains(got, MarkerMiddleOmitted) {
		t.Errorf("output missing middle omission marker")
	}
	if !strings.Contains(got, MarkerLaterOmitted) {
		t.Errorf("output missing later omission marker")
	}

	// Three excerpts of ceiling*4/3 chars each: total bounded near ceiling*4
	if len(got) > ceiling*4+2*len(MarkerMiddleOmitted)+16 {
		t.Errorf("truncated length = %d, want near %d", len(got), ceiling*4)
	}

	// Leading and trailing excerpts are taken verbatim
	if !strings.HasPrefix(got, text[:10]) {
		t.Error("output does not start with the leading slice")
	}
	if !strings.HasSuffix(got, text[len(text)-10:]) {
		t.Error("output does not end with the trailing slice")
	}
}
