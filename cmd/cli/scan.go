package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"l10nlint/pkg/config"
	"l10nlint/pkg/scanner"
	"l10nlint/pkg/util"
)

type scanOptions struct {
	roots      []string
	extensions []string
	out        string
}

var scanOpts scanOptions

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan markup sources for hardcoded display strings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("root") {
			cfg.ScanRoots = scanOpts.roots
		}
		if cmd.Flags().Changed("ext") {
			cfg.ScanExtensions = scanOpts.extensions
		}
		if cmd.Flags().Changed("out") {
			cfg.ScanReportPath = scanOpts.out
		}
		return runScan(cfg)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringSliceVar(&scanOpts.roots, "root", []string{"src"}, "source trees to walk")
	scanCmd.Flags().StringSliceVar(&scanOpts.extensions, "ext", []string{".tsx"}, "file extensions to inspect")
	scanCmd.Flags().StringVar(&scanOpts.out, "out", "hardcoded_audit.txt", "path of the scan report file")
}

func runScan(cfg *config.Config) error {
	files, err := scanner.Scan(scanner.Options{
		Roots:       cfg.ScanRoots,
		Extensions:  cfg.ScanExtensions,
		ExcludeDirs: config.ScanExcludeDirs,
	})
	if err != nil {
		return err
	}
	text := scanner.RenderReport(files)
	if err := util.MkDirWithPerm(cfg.ScanReportPath, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(cfg.ScanReportPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", cfg.ScanReportPath, err)
	}
	suspects := 0
	for _, f := range files {
		suspects += len(f.Findings)
	}
	writeInfo("Scan complete. Found %d suspected strings in %d files. See %s",
		suspects, len(files), cfg.ScanReportPath)
	return nil
}
