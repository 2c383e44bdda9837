package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"prae/pkg/core"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "List the files inside the given archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := core.List(args[0], a.options(cmd, "")...)
			if err != nil {
				return exitError(err)
			}
			printEntries(cmd, entries)
			return nil
		},
	}
}

func printEntries(cmd *cobra.Command, entries []core.Entry) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render(fmt.Sprintf("Found %d files.", len(entries))))
	for _, e := range entries {
		fmt.Fprintf(out, "      %s %s\n", e.Path, SubtitleStyle.Render("("+e.Type.String()+")"))
	}
}
