package transcription

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"video-archivist/internal/config"
	"video-archivist/internal/logger"
)

func TestTranscribe(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "audio.mp3")
	if err := os.WriteFile(audioPath, []byte("fake-audio-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("xi-api-key"); got != "test-key" {
			t.Errorf("xi-api-key = %q, want test-key", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("model_id"); got != "scribe_v1" {
			t.Errorf("model_id = %q, want scribe_v1", got)
		}
		if got := r.FormValue("diarize"); got != "true" {
			t.Errorf("diarize = %q, want true", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("missing file part: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"language_code": "en",
			"language_probability": 0.97,
			"text": "Hello world.",
			"words": [
				{"text": "Hello", "start": 0.1, "end": 0.4, "type": "word", "speaker_id": "speaker_0"},
				{"text": " ", "start": 0.4, "end": 0.5, "type": "spacing", "speaker_id": "speaker_0"},
				{"text": "world", "start": 0.5, "end": 0.9, "type": "word", "speaker_id": "speaker_0"},
				{"text": ".", "type": "punctuation", "speaker_id": "speaker_0"}
			]
		}`))
	}))
	defer srv.Close()

	tr := New(config.SpeechTextConfig{
		BaseURL:    srv.URL,
		Model:      "scribe_v1",
		TimeoutSec: 5,
	}, "test-key", logger.New("error"))

	result, err := tr.Transcribe(context.Background(), audioPath)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if result.Text != "Hello world." {
		t.Errorf("Text = %q", result.Text)
	}
	if result.LanguageCode != "en" {
		t.Errorf("LanguageCode = %q", result.LanguageCode)
	}
	if len(result.Words) != 4 {
		t.Fatalf("words = %d, want 4", len(result.Words))
	}
	if result.Words[3].Type != "punctuation" || result.Words[3].Start != 0 {
		t.Errorf("words[3] = %+v", result.Words[3])
	}
}

func TestTranscribeErrorStatus(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "audio.mp3")
	if err := os.WriteFile(audioPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	tr := New(config.SpeechTextConfig{BaseURL: srv.URL, Model: "scribe_v1", TimeoutSec: 5},
		"bad-key", logger.New("error"))

	if _, err := tr.Transcribe(context.Background(), audioPath); err == nil {
		t.Error("Transcribe() expected error for non-200 status")
	}
}
