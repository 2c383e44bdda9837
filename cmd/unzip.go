package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"prae/pkg/core"
)

func newUnzipCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unzip <file> [folder]",
		Short: "Extract the given archive to a folder",
		Long: `Extract the given archive to a folder.

The folder defaults to the archive name without its .dat suffix. Files
that cannot be written are reported and skipped.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			archive := args[0]
			target := defaultExtractDir(archive)
			if len(args) == 2 {
				target = args[1]
			}

			result, err := core.Unpack(archive, target, a.options(cmd, "Unzipping %d files.")...)
			if err != nil {
				return exitError(err)
			}
			if !a.cfg.Quiet {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf("Unzipped %d of %d files into %s",
					result.Written, result.Entries, target)))
				if result.Skipped > 0 {
					fmt.Fprintln(out, WarningStyle.Render(fmt.Sprintf("Skipped %d files", result.Skipped)))
				}
			}
			return nil
		},
	}
}

// defaultExtractDir strips one trailing .dat from the archive name. Names
// without it get a .d suffix so the archive itself is never overwritten.
func defaultExtractDir(archive string) string {
	if trimmed, ok := strings.CutSuffix(archive, core.DefaultExt); ok && trimmed != "" {
		return trimmed
	}
	return archive + ".d"
}
