package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"l10nlint/pkg/logging"
	"l10nlint/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "l10nlint",
	Short: "Audit multi-locale translation catalogs for consistency",
	Long: "l10nlint compares every locale catalog in a directory against a reference\n" +
		"locale and reports missing keys, orphaned keys, untranslated values and\n" +
		"interpolation placeholder mismatches. A companion scan finds UI strings\n" +
		"hardcoded in markup sources instead of routed through the catalogs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(cmd.UsageString())
		return nil
	},
}

func Execute() {
	if err := logging.ConfigureDefault(); err != nil {
		writeError("configure logging failed: %v", err)
	}
	if err := rootCmd.Execute(); err != nil {
		writeError("Error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate("l10nlint {{.Version}}\n")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}
