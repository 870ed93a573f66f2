// Package cmd implements the mmcif command line tool.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/shapestone/shape-mmcif/pkg/mmcif"
	"github.com/spf13/cobra"
)

// options shared by every subcommand
type rootOptions struct {
	verbose             bool
	allowIncompleteLoop bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "mmcif",
		Short: "Read mmCIF structure files",
		Long: `mmcif reads macromolecular mmCIF files into named tables.

Commands:
  parse     - print tables as JSON or YAML
  tables    - list table names and record counts
  validate  - check that files parse
  render    - re-emit a file as normalized mmCIF

A file argument of "-", or no file, reads standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output on stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.allowIncompleteLoop, "allow-incomplete-loop", false,
		"Drop a partial loop row at end of input instead of failing")

	rootCmd.AddCommand(
		newParseCmd(opts),
		newTablesCmd(opts),
		newValidateCmd(opts),
		newRenderCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "mmcif: %v\n", err)
}

func (o *rootOptions) readerOptions() mmcif.ReaderOptions {
	opts := mmcif.DefaultReaderOptions()
	opts.AllowIncompleteLoop = o.allowIncompleteLoop
	return opts
}

// load parses the named file, or standard input for "" and "-".
func (o *rootOptions) load(cmd *cobra.Command, path string) (*mmcif.Document, error) {
	var (
		doc *mmcif.Document
		err error
	)
	if path == "" || path == "-" {
		doc, err = mmcif.ParseReaderWithOptions(cmd.InOrStdin(), o.readerOptions())
		path = "<stdin>"
	} else {
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		doc, err = mmcif.ParseReaderWithOptions(f, o.readerOptions())
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if o.verbose {
		records := 0
		for _, t := range doc.Tables() {
			records += t.Len()
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d tables, %d records\n", path, doc.Len(), records)
	}
	return doc, nil
}

func fileArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
