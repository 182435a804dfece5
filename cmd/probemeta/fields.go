// Fields command prints the schema registry catalog.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuroforge/probemeta/internal/schema"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the recognized record fields and their shapes",
	Args:  cobra.NoArgs,
	RunE:  runFields,
}

func runFields(cmd *cobra.Command, args []string) error {
	specs := schema.Fields()

	if jsonOutput() {
		output, err := json.MarshalIndent(specs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printSpecs(specs, 0)
	return nil
}

func printSpecs(specs []schema.FieldSpec, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, s := range specs {
		required := ""
		if s.Required {
			required = " (required)"
		}
		fmt.Printf("%s%s: %s%s\n", indent, s.Name, s.Shape, required)
		printSpecs(s.Children, depth+1)
	}
}
