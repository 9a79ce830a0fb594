package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"video-archivist/internal/classifier"
	"video-archivist/internal/library"
	"video-archivist/internal/media"
	"video-archivist/internal/transcript"
)

// Process runs the whole pipeline for one input. On any unrecovered
// failure the temporary audio file is still cleaned up best-effort
// before the error propagates.
func (p *implProcessor) Process(ctx context.Context, input string) error {
	startTime := time.Now()

	kind, err := media.ResolveInput(input)
	if err != nil {
		return err
	}

	p.logger.Info(ctx, "Starting ingest: %s", input)

	// Temp audio is scoped to this run and never shared across runs
	audioPath := filepath.Join(p.cfg.Paths.Temp,
		fmt.Sprintf("archivist-audio-%s.mp3", time.Now().Format("20060102-150405")))
	defer p.cleanupTempFile(ctx, audioPath)

	var title string
	switch kind {
	case media.InputRemote:
		title = p.acquirer.FetchTitle(ctx, input)
		if err := p.acquirer.DownloadAudio(ctx, input, audioPath); err != nil {
			return fmt.Errorf("acquire audio: %w", err)
		}
	default:
		title = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		if err := p.acquirer.ExtractAudio(ctx, input, audioPath); err != nil {
			return fmt.Errorf("acquire audio: %w", err)
		}
	}

	result, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	tokens := transcript.Normalize(result.Words)
	text := transcript.Assemble(tokens)

	tree, err := library.Read(p.cfg.Library.Root)
	if err != nil {
		return fmt.Errorf("read library: %w", err)
	}

	plan, err := p.classifier.Classify(ctx, classifier.Input{
		Transcript: transcript.TruncateForPrompt(text, p.cfg.Classifier.TokenCeiling),
		Source:     input,
		Title:      title,
		Digest:     library.Render(tree, library.DefaultMaxChildren),
		HasEntries: tree.HasEntries(),
	})
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	isoDate := time.Now().Format("2006-01-02")
	entryName := fmt.Sprintf("%s-%s", sanitizeFolderName(title), isoDate)
	destDir := filepath.Join(p.cfg.Library.Root, plan.Category, entryName)

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create entry directory: %w", err)
	}

	meta := &library.Metadata{
		Source: input,
		Title:  title,
		Date:   isoDate,
		Theme: library.Theme{
			Category:   plan.Category,
			Folder:     entryName,
			Confidence: plan.Confidence,
			Summary:    plan.Reasoning,
		},
		Quality: library.Quality{
			Language:           result.LanguageCode,
			LanguageConfidence: result.LanguageProbability,
			WordCount:          transcript.CountWords(tokens),
		},
	}

	if err := p.writeArtifacts(ctx, destDir, title, text, result, meta); err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}

	p.logger.Info(ctx, "Filed under %s (confidence: %s) in %s",
		filepath.Join(plan.Category, entryName), plan.Confidence, time.Since(startTime))

	return nil
}

// sanitizeFolderName strips characters that are hostile to filesystem
// paths from a video title.
func sanitizeFolderName(title string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "",
		"?", "",
		"\"", "",
		"<", "",
		">", "",
		"|", "",
		"\x00", "",
	)
	clean := strings.TrimSpace(replacer.Replace(title))
	if clean == "" {
		clean = "untitled"
	}
	return clean
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		if !os.IsNotExist(err) {
			p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
		}
		return
	}
	p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
}
