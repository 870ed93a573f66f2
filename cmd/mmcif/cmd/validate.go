package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check that files parse",
		Long: `Parses each file and reports "ok" or the first error found in it.
Exits non-zero if any file fails.

Examples:
  mmcif validate 1abc.cif 2xyz.cif
  mmcif validate < 1abc.cif`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			failed := 0
			for _, path := range args {
				if _, err := root.load(cmd, path); err != nil {
					failed++
					printError(cmd.OutOrStdout(), err)
					continue
				}
				name := path
				if name == "-" {
					name = "<stdin>"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed", failed, len(args))
			}
			return nil
		},
	}
}
