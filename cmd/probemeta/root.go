// Root command for the probemeta CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/neuroforge/probemeta/pkg/probemeta"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
)

// Defaults loaded from config.yaml by PersistentPreRunE, available to all
// subcommands.
var (
	configFormat string
	configStrict bool
)

var rootCmd = &cobra.Command{
	Use:     "probemeta",
	Short:   "Probemeta inspects and validates implant-procedure metadata records",
	Version: probemeta.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configFormat = cfg.GetString(cfgKeyFormat)
		configStrict = cfg.GetBool(cfgKeyStrict)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(fieldsCmd)
}

// jsonOutput reports whether output should be JSON, combining the --json
// flag with the configured default format.
func jsonOutput() bool {
	return flagJSON || configFormat == "json"
}
