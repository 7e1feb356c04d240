package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/manifest"
	"github.com/katalvlaran/lvtopo/render"
	"github.com/katalvlaran/lvtopo/sorter"
)

// ValidationResult is the outcome of validating one manifest.
type ValidationResult struct {
	Path  string `json:"path"`
	Name  string `json:"name,omitempty"`
	Items int    `json:"items"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <manifest>...",
		Short: "Check that each manifest can be ordered on its own",
		Long: `Load and build every manifest separately, stopping at the first one
that cannot be read or ordered. Cross-manifest cycles are reported by sort.`,
		Args: requireManifests,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	results := make([]ValidationResult, 0, len(paths))
	var failure error
	for _, p := range paths {
		res := ValidationResult{Path: p}
		m, err := manifest.Load(p)
		if err != nil {
			failure = WrapExitError(ExitCommandError, "loading manifest", err)
		} else {
			res.Name, res.Items = m.Name, len(m.Items)
			if _, err = manifest.Build(m, sorter.WithLogger(logger)); err != nil {
				failure = WrapExitError(ExitFailure, "invalid manifest", err)
			}
		}
		if err != nil {
			res.Error = err.Error()
		}
		res.Valid = err == nil
		results = append(results, res)
		if failure != nil {
			break
		}
	}

	if err := writeResults(cmd.OutOrStdout(), opts.format, results); err != nil {
		return err
	}

	return failure
}

// writeResults prints results as JSON or as one line per manifest; table
// output shares the line form.
func writeResults(w io.Writer, f render.Format, results []ValidationResult) error {
	if f == render.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(results)
	}

	for _, r := range results {
		var err error
		if r.Valid {
			_, err = fmt.Fprintf(w, "%s: ok (items=%d)\n", r.Path, r.Items)
		} else {
			_, err = fmt.Fprintf(w, "%s: FAIL\n", r.Path)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
