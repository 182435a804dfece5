// Validate command checks a metadata document against the record rules.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neuroforge/probemeta/internal/schema"
	"github.com/neuroforge/probemeta/internal/validate"
	"github.com/neuroforge/probemeta/pkg/types"
)

var flagStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a metadata document",
	Long: `Validate loads a metadata document and reports every rule violation
found: enum values outside their alternatives, empty required fields, an
identifier that disagrees with the name, numeric values without units, and
arrays mixing element types. With --strict the record is also checked
against the schema registry for unknown fields and shape conflicts.

Exits 0 when the document is valid, 1 when issues were found.

Example:
  probemeta validate implant.yaml
  probemeta validate --strict --json implant.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagStrict, "strict", false, "also check fields against the schema registry")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	rec, err := loadRecordFile(path)
	if err != nil {
		return err
	}

	issues := validate.Validate(rec)
	if flagStrict || configStrict {
		issues = append(issues, schema.Check(rec)...)
	}

	report := types.NewReport(path, issues)
	if err := printReport(report); err != nil {
		return err
	}

	if !report.Valid {
		os.Exit(exitUserError)
	}
	return nil
}

func printReport(report *types.Report) error {
	if jsonOutput() {
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if report.Valid {
		fmt.Printf("%s: valid\n", report.Subject)
		return nil
	}
	for _, issue := range report.Issues {
		fmt.Println(issue.String())
	}
	fmt.Printf("%s: %d issue(s) found\n", report.Subject, len(report.Issues))
	return nil
}
