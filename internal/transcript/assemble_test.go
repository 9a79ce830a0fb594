package transcript

import (
	"strings"
	"testing"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{
			name:   "empty input",
			tokens: nil,
			want:   "",
		},
		{
			name: "single speaker single word",
			tokens: []Token{
				{Text: "Hello", Kind: KindWord, SpeakerID: "speaker_0"},
			},
			want: "speaker_0: Hello",
		},
		{
			name: "spacing tokens carry no text",
			tokens: []Token{
				{Text: "Hello", Kind: KindWord, SpeakerID: "A"},
				{Text: " ", Kind: KindSpacing, SpeakerID: "A"},
				{Text: "world", Kind: KindWord, SpeakerID: "A"},
			},
			want: "A: Hello world",
		},
		{
			name: "punctuation hugs preceding word",
			tokens: []Token{
				{Text: "Hello", Kind: KindWord, SpeakerID: "A"},
				{Text: " ", Kind: KindSpacing, SpeakerID: "A"},
				{Text: "world", Kind: KindWord, SpeakerID: "A"},
				{Text: ".", Kind: KindPunctuation, SpeakerID: "A"},
				{Text: "Hi", Kind: KindWord, SpeakerID: "B"},
			},
			want: "A: Hello world.\nB: Hi",
		},
		{
			name: "speaker switch opens new line",
			tokens: []Token{
				{Text: "one", Kind: KindWord, SpeakerID: "A"},
				{Text: "two", Kind: KindWord, SpeakerID: "B"},
				{Text: "three", Kind: KindWord, SpeakerID: "A"},
			},
			want: "A: one\nB: two\nA: three",
		},
		{
			name: "unknown speaker is an ordinary label",
			tokens: []Token{
				{Text: "hey", Kind: KindWord, SpeakerID: SpeakerUnknown},
				{Text: "there", Kind: KindWord, SpeakerID: SpeakerUnknown},
			},
			want: "unknown: hey there",
		},
		{
			name: "run of only spacing tokens produces no line",
			tokens: []Token{
				{Text: " ", Kind: KindSpacing, SpeakerID: "A"},
				{Text: "hello", Kind: KindWord, SpeakerID: "B"},
			},
			want: "B: hello",
		},
		{
			name: "provider-defined kind treated like a word",
			tokens: []Token{
				{Text: "(laughs)", Kind: "audio_event", SpeakerID: "A"},
				{Text: "ok", Kind: KindWord, SpeakerID: "A"},
			},
			want: "A: (laughs) ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(tt.tokens)
			if got != tt.want {
				t.Errorf("Assemble() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssembleLineCountMatchesSpeakerRuns(t *testing.T) {
	// One output line per maximal same-speaker run
	tokens := []Token{
		{Text: "a", Kind: KindWord, SpeakerID: "A"},
		{Text: "b", Kind: KindWord, SpeakerID: "A"},
		{Text: "c", Kind: KindWord, SpeakerID: "B"},
		{Text: "d", Kind: KindWord, SpeakerID: "A"},
		{Text: "e", Kind: KindWord, SpeakerID: "C"},
	}

	got := Assemble(tokens)
	if n := len(strings.Split(got, "\n")); n != 4 {
		t.Errorf("line count = %d, want 4 (got %q)", n, got)
	}
}

func TestCountWords(t *testing.T) {
	tokens := []Token{
		{Text: "a", Kind: KindWord},
		{Text: " ", Kind: KindSpacing},
		{Text: ".", Kind: KindPunctuation},
		{Text: "b", Kind: KindWord},
	}
	if got := CountWords(tokens); got != 2 {
		t.Errorf("CountWords() = %d, want 2", got)
	}
}
