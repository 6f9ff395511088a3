// Package audit runs the full catalog audit: load the locales directory,
// diff every target against the reference, write the report.
package audit

import (
	"fmt"
	"os"

	"l10nlint/pkg/catalog"
	"l10nlint/pkg/compare"
	"l10nlint/pkg/config"
	"l10nlint/pkg/logging"
	"l10nlint/pkg/report"
	"l10nlint/pkg/util"
)

// Summary is what the CLI prints after a completed run.
type Summary struct {
	TargetsAudited      int
	TargetsWithFindings int
	FailedFiles         int
	ReportPath          string
}

// Run executes one audit. A missing or unloadable reference catalog is the
// only fatal condition; target failures end up in the report instead.
func Run(cfg *config.Config) (*Summary, error) {
	set, err := catalog.LoadDir(cfg.LocalesDir, cfg.ReferenceName)
	if err != nil {
		return nil, err
	}
	logging.Debugf("reference %s: %d keys, %d targets, %d failed files",
		cfg.ReferenceName, len(set.Reference.Flat), len(set.Targets), len(set.Failures))

	opts := compare.Options{ExcludedPrefixes: cfg.ExcludePrefixes}
	summary := &Summary{
		TargetsAudited: len(set.Targets),
		FailedFiles:    len(set.Failures),
		ReportPath:     cfg.ReportPath,
	}
	results := make([]compare.Result, 0, len(set.Targets))
	for _, target := range set.Targets {
		res := compare.Diff(target.Name, set.Reference.Flat, target.Flat, opts)
		res.DisplayName = target.DisplayName
		if res.HasFindings() {
			summary.TargetsWithFindings++
		}
		results = append(results, res)
	}

	text := report.Render(results, set.Failures, cfg.ReferenceName)
	if err := util.MkDirWithPerm(cfg.ReportPath, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(cfg.ReportPath, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("write report %s: %w", cfg.ReportPath, err)
	}
	return summary, nil
}
