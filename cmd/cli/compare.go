package main

import (
	"github.com/spf13/cobra"

	"l10nlint/pkg/audit"
	"l10nlint/pkg/config"
	"l10nlint/pkg/util"
)

type compareOptions struct {
	dir             string
	reference       string
	out             string
	excludePrefixes []string
}

var compareOpts compareOptions

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare locale catalogs against the reference locale",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("dir") {
			cfg.LocalesDir = compareOpts.dir
		}
		if cmd.Flags().Changed("reference") {
			cfg.ReferenceName = compareOpts.reference
		}
		if cmd.Flags().Changed("out") {
			cfg.ReportPath = compareOpts.out
		}
		if cmd.Flags().Changed("exclude-prefix") {
			cfg.ExcludePrefixes = compareOpts.excludePrefixes
		}
		return runCompare(cfg)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&compareOpts.dir, "dir", "src/locales", "directory holding one catalog file per locale")
	compareCmd.Flags().StringVar(&compareOpts.reference, "reference", "en.json", "file name of the reference catalog")
	compareCmd.Flags().StringVar(&compareOpts.out, "out", "locale_audit.txt", "path of the report file")
	compareCmd.Flags().StringSliceVar(&compareOpts.excludePrefixes, "exclude-prefix", nil, "key-path prefixes exempt from the untranslated check")
}

func runCompare(cfg *config.Config) error {
	dir, err := util.ExpandPath(cfg.LocalesDir)
	if err != nil {
		return err
	}
	cfg.LocalesDir = dir

	summary, err := audit.Run(cfg)
	if err != nil {
		return err
	}
	writeInfo("Audit complete. %d locales compared, %d with findings, %d files failed to load. See %s",
		summary.TargetsAudited, summary.TargetsWithFindings, summary.FailedFiles, summary.ReportPath)
	return nil
}
