package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTablesCmd(root *rootOptions) *cobra.Command {
	var showFields bool

	cmd := &cobra.Command{
		Use:   "tables [file]",
		Short: "List table names and record counts",
		Long: `Lists every table in document order with its record count.

Examples:
  mmcif tables 1abc.cif
  mmcif tables --fields 1abc.cif`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := root.load(cmd, fileArg(args))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range doc.Tables() {
				if showFields {
					fmt.Fprintf(tw, "%s\t%d\t%s\n", t.Name(), t.Len(), strings.Join(t.Fields(), ","))
				} else {
					fmt.Fprintf(tw, "%s\t%d\n", t.Name(), t.Len())
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&showFields, "fields", false, "Also list field names")
	return cmd
}
