package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/abdul-hamid-achik/sheetfn/packages/output"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// WatchDebounceDelay is the default debounce delay for file watch events
const WatchDebounceDelay = 300 * time.Millisecond

// watchFiles re-runs run whenever one of paths is written, until interrupted.
// Editors often save with several events in a row, so runs are debounced.
func watchFiles(cmd *cobra.Command, paths []string, run func() error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch parent directories so files replaced on save are still seen.
	watched := make(map[string]bool)
	watchedDirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true

		dir := filepath.Dir(abs)
		if watchedDirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watchedDirs[dir] = true
	}

	delay := time.Duration(getEnvInt("SHEETFN_WATCH_DEBOUNCE_MS", int(WatchDebounceDelay.Milliseconds()))) * time.Millisecond
	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "\nWatching for changes... (press Ctrl+C to stop)\n")

	var (
		debounce <-chan time.Time
		changed  string
	)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(event.Name)
			if !watched[abs] || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			changed = event.Name
			debounce = time.After(delay)

		case <-debounce:
			debounce = nil
			fmt.Fprintf(stderr, "\nFile changed: %s\nRe-running...\n\n", changed)
			if err := run(); err != nil {
				output.FormatError(stderr, err, noColorFlag)
			}
			fmt.Fprintf(stderr, "\nWatching for changes... (press Ctrl+C to stop)\n")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			output.FormatError(stderr, fmt.Errorf("watcher error: %w", err), noColorFlag)
		}
	}
}
