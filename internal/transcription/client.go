package transcription

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Transcribe uploads an audio file to the speech-to-text API and returns
// the full transcript with per-word timing and speaker attribution.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	// Stream the multipart body so large recordings are not buffered in memory
	errCh := make(chan error, 1)
	go func() {
		defer pw.Close()
		defer mw.Close()

		if err := mw.WriteField("model_id", t.model); err != nil {
			errCh <- err
			return
		}
		if err := mw.WriteField("diarize", "true"); err != nil {
			errCh <- err
			return
		}
		part, err := mw.CreateFormFile("file", filepath.Base(audioPath))
		if err != nil {
			errCh <- err
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	url := strings.TrimRight(t.baseURL, "/") + "/speech-to-text"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, pr)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("xi-api-key", t.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	t.logger.Info(ctx, "Uploading audio for transcription: %s", audioPath)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech-to-text request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("speech-to-text API returned status %d: %s", resp.StatusCode, string(body))
	}

	if writeErr := <-errCh; writeErr != nil {
		return nil, fmt.Errorf("multipart write: %w", writeErr)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read speech-to-text response: %w", err)
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode speech-to-text response: %w", err)
	}
	result.Raw = body

	t.logger.Info(ctx, "Transcription completed: language=%s confidence=%.2f words=%d",
		result.LanguageCode, result.LanguageProbability, len(result.Words))

	return &result, nil
}
