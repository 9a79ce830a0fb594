package transcript

import (
	"testing"

	"video-archivist/internal/transcription"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		words []transcription.Word
		want  []Token
	}{
		{
			name:  "empty input",
			words: nil,
			want:  []Token{},
		},
		{
			name: "fully populated record passes through",
			words: []transcription.Word{
				{Text: "hello", Start: 0.5, End: 1.0, Type: "word", SpeakerID: "speaker_0"},
			},
			want: []Token{
				{Text: "hello", Start: 0.5, End: 1.0, Kind: "word", SpeakerID: "speaker_0"},
			},
		},
		{
			name:  "missing fields get defaults",
			words: []transcription.Word{{}},
			want: []Token{
				{Text: "", Start: 0, End: 0, Kind: KindWord, SpeakerID: SpeakerUnknown},
			},
		},
		{
			name: "order preserved one to one",
			words: []transcription.Word{
				{Text: "b", Type: "punctuation"},
				{Text: "a", SpeakerID: "s1"},
			},
			want: []Token{
				{Text: "b", Kind: "punctuation", SpeakerID: SpeakerUnknown},
				{Text: "a", Kind: KindWord, SpeakerID: "s1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.words)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
