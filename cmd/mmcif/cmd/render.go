package cmd

import (
	"github.com/shapestone/shape-mmcif/pkg/mmcif"
	"github.com/spf13/cobra"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Re-emit a file as normalized mmCIF",
		Long: `Parses an mmCIF file and writes it back with one value spelling per
value, '#' between tables and loop_ blocks for multi-row tables.

Examples:
  mmcif render 1abc.cif > 1abc.normalized.cif`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := root.load(cmd, fileArg(args))
			if err != nil {
				return err
			}
			out, err := mmcif.Render(doc)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
