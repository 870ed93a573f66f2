package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shapestone/shape-mmcif/pkg/mmcif"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newParseCmd(root *rootOptions) *cobra.Command {
	var (
		output string
		tables []string
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print tables as JSON or YAML",
		Long: `Parses an mmCIF file and prints its tables, keeping table and field order.

Examples:
  mmcif parse 1abc.cif
  mmcif parse --output yaml 1abc.cif
  mmcif parse --table atom_site --table entity 1abc.cif
  cat 1abc.cif | mmcif parse`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := root.load(cmd, fileArg(args))
			if err != nil {
				return err
			}
			if len(tables) > 0 {
				if doc, err = selectTables(doc, tables); err != nil {
					return err
				}
			}
			return writeDocument(cmd.OutOrStdout(), doc, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")
	cmd.Flags().StringSliceVarP(&tables, "table", "t", nil, "Only print the named tables (repeatable)")
	return cmd
}

// selectTables returns a document holding only the named tables, in the
// order given.
func selectTables(doc *mmcif.Document, names []string) (*mmcif.Document, error) {
	out := mmcif.NewDocument().SetName(doc.Name())
	for _, name := range names {
		t, ok := doc.Table(name)
		if !ok {
			return nil, fmt.Errorf("table %q not found", name)
		}
		nt := out.AddTable(name).AddFields(t.Fields()...)
		for _, r := range t.Records() {
			nt.AddRecord(r)
		}
	}
	return out, nil
}

func writeDocument(w io.Writer, doc *mmcif.Document, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlDocument(doc)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}

// yamlDocument builds an ordered YAML mapping of tables to record lists.
func yamlDocument(doc *mmcif.Document) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, t := range doc.Tables() {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, r := range t.Records() {
			seq.Content = append(seq.Content, yamlRecord(r))
		}
		root.Content = append(root.Content, yamlString(t.Name()), seq)
	}
	return root
}

func yamlRecord(r mmcif.Record) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	names, values := r.Names(), r.Values()
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		m.Content = append(m.Content, yamlString(name), yamlString(values[i]))
	}
	return m
}

// yamlString tags every scalar as a string so values like "1" or "no" stay text.
func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
