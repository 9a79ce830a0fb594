package media

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveInput(t *testing.T) {
	dir := t.TempDir()

	videoPath := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(videoPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	textPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(textPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   string
		want    InputKind
		wantErr bool
	}{
		{"https url", "https://example.com/watch?v=abc", InputRemote, false},
		{"http url", "http://example.com/v/abc", InputRemote, false},
		{"local video file", videoPath, InputLocal, false},
		{"missing local file", filepath.Join(dir, "missing.mp4"), 0, true},
		{"unsupported extension", textPath, 0, true},
		{"directory input", dir, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ResolveInput() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.mp4", true},
		{"a.MOV", true},
		{"b.webm", true},
		{"c.mp3", false},
		{"d", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsVideoFile(tt.path); got != tt.want {
				t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
