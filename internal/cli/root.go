// Package cli implements the lvtopo command line: loading manifests, sorting
// them and printing the result.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/render"
)

// version is reported by --version; set from main.
var version = "dev"

// SetVersion sets the version string printed by --version.
func SetVersion(v string) {
	version = v
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "table"

	format render.Format // parsed Format, set in PersistentPreRunE
}

// NewRootCommand creates the root command for the lvtopo CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lvtopo",
		Short: "lvtopo - order items by group constraints",
		Long: `Order declared items by group-level before/after constraints.

Manifests (YAML, TOML or JSON) list named items with their group, the groups
they must come before or after, and an optional sort rank. Several manifests
are merged in the order given on the command line.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(opts.Format)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid --format", err)
			}
			opts.format = f
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", string(render.FormatText),
		fmt.Sprintf("output format %v", render.Formats))

	cmd.AddCommand(NewSortCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code. Errors
// are printed to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return GetExitCode(err)
	}

	return ExitSuccess
}
