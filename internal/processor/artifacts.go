package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"video-archivist/internal/library"
	"video-archivist/internal/transcription"
)

// Artifact file names within a transcript entry directory.
const (
	rawTextFile     = "transcription-raw.txt"
	rawResponseFile = "transcription-raw.json"
	transcriptFile  = "transcription.txt"
	docxFile        = "transcription.docx"
)

// writeArtifacts persists the run's output files. The four files are
// independent, so they are written concurrently and joined before
// returning.
func (p *implProcessor) writeArtifacts(ctx context.Context, destDir, title, text string,
	result *transcription.Result, meta *library.Metadata) error {

	rawJSON, err := prettyRawResponse(result)
	if err != nil {
		return fmt.Errorf("marshal raw response: %w", err)
	}
	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return writeFile(filepath.Join(destDir, rawTextFile), []byte(result.Text))
	})
	g.Go(func() error {
		return writeFile(filepath.Join(destDir, rawResponseFile), rawJSON)
	})
	g.Go(func() error {
		return writeFile(filepath.Join(destDir, transcriptFile), []byte(text))
	})
	g.Go(func() error {
		return writeFile(filepath.Join(destDir, library.MetadataFile), metaJSON)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if p.writeDocx {
		docxPath := filepath.Join(destDir, docxFile)
		if err := transcriptToDocx(title, text, docxPath); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		p.logger.Debug(ctx, "Wrote docx artifact: %s", docxPath)
	}

	return nil
}

// prettyRawResponse pretty-prints the verbatim service response when the
// transcriber captured one, falling back to marshalling the parsed fields.
func prettyRawResponse(result *transcription.Result) ([]byte, error) {
	if len(result.Raw) > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, result.Raw, "", "  "); err == nil {
			return buf.Bytes(), nil
		}
	}
	return json.MarshalIndent(result, "", "  ")
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
