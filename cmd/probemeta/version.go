// Version command for the probemeta CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuroforge/probemeta/pkg/probemeta"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the probemeta version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("probemeta", probemeta.Version)
	},
}
