package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"video-archivist/internal/classifier"
	"video-archivist/internal/config"
	"video-archivist/internal/logger"
	"video-archivist/internal/media"
	"video-archivist/internal/processor"
	"video-archivist/internal/transcription"
	"video-archivist/pkg/executor"
)

var (
	configPath string
	withDocx   bool
)

var rootCmd = &cobra.Command{
	Use:   "archivist <url|video-file>",
	Short: "Transcribe a video and file it into a self-organizing archive",
	Long: `archivist ingests a video (remote URL or local file), produces a
speaker-attributed transcript via ElevenLabs speech-to-text, and files it
into a category-based archive, with the category chosen by a language model
from the archive's current contents.`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		// Argument errors above still print usage; pipeline errors should not
		c.SilenceUsage = true

		deps, err := setup()
		if err != nil {
			return err
		}
		return deps.processor.Process(c.Context(), args[0])
	},
}

// Execute runs the root command. Any failure terminates the process with
// a non-zero outcome.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&withDocx, "docx", false, "additionally write a transcription.docx artifact")

	rootCmd.AddCommand(watchCmd)
}

type deps struct {
	cfg       *config.Config
	logger    logger.Logger
	processor processor.Processor
}

// setup resolves configuration and secrets and wires the pipeline.
// Missing secrets are fatal here, before any pipeline stage runs.
func setup() (*deps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	secrets, err := config.LoadSecrets()
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level)
	exec := executor.New()

	acquirer := media.New(cfg.FFmpeg, exec, log)
	transcriber := transcription.New(cfg.SpeechText, secrets.ElevenLabsAPIKey, log)
	planner := classifier.New(cfg.Classifier, secrets.AnthropicAPIKey, log)

	var opts []processor.Option
	if withDocx {
		opts = append(opts, processor.WithDocx())
	}

	return &deps{
		cfg:       cfg,
		logger:    log,
		processor: processor.New(cfg, acquirer, transcriber, planner, log, opts...),
	}, nil
}
