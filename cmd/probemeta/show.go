// Show command renders a loaded metadata record.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuroforge/probemeta/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show the loaded form of a metadata document",
	Long: `Show loads a metadata document and renders the resulting record:
every field with its inferred shape and value, in declaration order.

Example:
  probemeta show implant.yaml
  probemeta show --json implant.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	rec, err := loadRecordFile(args[0])
	if err != nil {
		return err
	}

	if jsonOutput() {
		output, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printRecord(rec, 0)
	return nil
}

// printRecord renders the record as an indented tree, one field per line.
func printRecord(rec *types.Record, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, name := range rec.Names() {
		field, _ := rec.Field(name)
		switch f := field.(type) {
		case *types.ScalarField:
			fmt.Printf("%s%s: %s\n", indent, name, formatValue(f.Value))
		case *types.UnitField:
			fmt.Printf("%s%s: %s [%s]\n", indent, name, formatValue(f.Value), f.Unit)
		case *types.EnumField:
			fmt.Printf("%s%s: %s (one of: %s)\n", indent, name, formatValue(f.Value), strings.Join(f.Allowed, ", "))
		case *types.ArrayField:
			fmt.Printf("%s%s: %s\n", indent, name, formatValue(f.Value))
		case *types.CompositeField:
			fmt.Printf("%s%s:\n", indent, name)
			printRecord(f.Record, depth+1)
		}
	}
}

// formatValue renders a field value for terminal output, marking unset
// values explicitly.
func formatValue(v any) string {
	if types.EmptyValue(v) {
		return "(unset)"
	}
	if seq, ok := v.([]any); ok {
		parts := make([]string, len(seq))
		for i, e := range seq {
			parts[i] = fmt.Sprint(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprint(v)
}
