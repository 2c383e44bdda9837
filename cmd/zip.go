package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"prae/pkg/core"
)

func newZipCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "zip <folder> [file]",
		Short: "Compress the given folder to an archive",
		Long: `Compress the given folder to an archive.

Textures (.png, .jpg) are stored first, followed by every other known
asset. Files of unknown type are skipped. The archive defaults to
<folder>.dat.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			target := defaultArchiveName(source)
			if len(args) == 2 {
				target = args[1]
			}

			result, err := core.Pack(source, target, a.options(cmd, "Zipping %d files.")...)
			if err != nil {
				return exitError(err)
			}
			if !a.cfg.Quiet {
				printPackSummary(cmd, result)
			}
			return nil
		},
	}
}

// defaultArchiveName returns <folder>.dat for a source folder
func defaultArchiveName(folder string) string {
	return filepath.Clean(folder) + core.DefaultExt
}

func printPackSummary(cmd *cobra.Command, r *core.PackResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf("Wrote %s: %d textures, %d files, %s -> %s",
		filepath.Base(r.OutputPath), r.Textures, r.Files,
		humanize.IBytes(uint64(r.RawSize)), humanize.IBytes(uint64(r.CompressedSize)))))
	if r.Skipped > 0 {
		fmt.Fprintln(out, WarningStyle.Render(fmt.Sprintf("Skipped %d files", r.Skipped)))
	}
}
