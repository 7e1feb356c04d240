package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/manifest"
	"github.com/katalvlaran/lvtopo/render"
	"github.com/katalvlaran/lvtopo/sorter"
)

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <manifest>...",
		Short: "Print the combined order of one or more manifests",
		Long: `Load every manifest, merge them in command-line order and print the
resulting order. Entries of later manifests follow earlier ones unless a
constraint or sort rank says otherwise.`,
		Args: requireManifests,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runSort(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	ms, err := loadManifests(paths, logger)
	if err != nil {
		return err
	}

	s, err := manifest.Combine(ms, sorter.WithLogger(logger))
	if err != nil {
		return WrapExitError(ExitFailure, "sorting manifests", err)
	}

	return render.Write(cmd.OutOrStdout(), opts.format, s.Nodes())
}
