package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/manifest"
)

// requireManifests rejects an invocation without manifest paths.
func requireManifests(cmd *cobra.Command, args []string) error {
	if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
		return WrapExitError(ExitCommandError, "usage", err)
	}

	return nil
}

// newLogger returns a text logger on w: Debug level when verbose, Warn
// otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadManifests loads every path, failing on the first unreadable one.
func loadManifests(paths []string, logger *slog.Logger) ([]*manifest.Manifest, error) {
	ms := make([]*manifest.Manifest, 0, len(paths))
	for _, p := range paths {
		m, err := manifest.Load(p)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "loading manifest", err)
		}
		logger.Debug("manifest loaded", "path", p, "name", m.Name, "items", len(m.Items))
		ms = append(ms, m)
	}

	return ms, nil
}
