package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"video-archivist/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a drop folder and ingest each new video file",
	Long: `watch monitors a directory and runs the full ingest pipeline for every
video file created in it, one file at a time. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		c.SilenceUsage = true

		deps, err := setup()
		if err != nil {
			return err
		}

		w, err := watcher.New(args[0], deps.processor.Process, deps.logger)
		if err != nil {
			return err
		}
		defer w.Stop()

		ctx, cancel := context.WithCancel(c.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		errChan := make(chan error, 1)
		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				errChan <- err
			}
		}()

		select {
		case <-sigChan:
			deps.logger.Info(ctx, "Shutdown signal received")
			cancel()
			return nil
		case err := <-errChan:
			return err
		}
	},
}
