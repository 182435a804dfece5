// Get command retrieves a single field from a metadata document.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuroforge/probemeta/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <field>",
	Short: "Get a field from a metadata document",
	Long: `Get loads a metadata document and prints one field. Dotted paths
descend into composite fields.

Example:
  probemeta get implant.yaml hemisphere
  probemeta get implant.yaml electrophysiology.channel_groups`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	path := args[1]

	rec, err := loadRecordFile(args[0])
	if err != nil {
		return err
	}

	field, err := resolveField(rec, path)
	if err != nil {
		if errors.Is(err, types.ErrFieldNotFound) {
			return fmt.Errorf("field %q not found in %s", path, args[0])
		}
		return err
	}

	if jsonOutput() {
		output, err := json.MarshalIndent(field, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal field: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printField(path, field)
	return nil
}

// resolveField follows a dotted path through composite fields to the named
// field.
func resolveField(rec *types.Record, path string) (types.Field, error) {
	parts := strings.Split(path, ".")
	for _, part := range parts[:len(parts)-1] {
		sub, err := rec.Composite(part)
		if err != nil {
			return nil, err
		}
		rec = sub
	}

	name := parts[len(parts)-1]
	field, ok := rec.Field(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrFieldNotFound, name)
	}
	return field, nil
}

func printField(path string, field types.Field) {
	switch f := field.(type) {
	case *types.ScalarField:
		fmt.Println(formatValue(f.Value))
	case *types.UnitField:
		fmt.Printf("%s [%s]\n", formatValue(f.Value), f.Unit)
	case *types.EnumField:
		fmt.Println(formatValue(f.Value))
		fmt.Printf("allowed: %s\n", strings.Join(f.Allowed, ", "))
	case *types.ArrayField:
		fmt.Println(formatValue(f.Value))
	case *types.CompositeField:
		printRecord(f.Record, 0)
	}
}
