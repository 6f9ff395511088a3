// Package scanner is the companion heuristic for catalog audits: it walks
// markup sources and pattern-matches display strings that were likely
// hardcoded instead of routed through the translation catalogs. It is a
// best-effort substring match with no parser behind it, so results are
// leads, not verdicts. It shares no state with the catalog comparator.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"l10nlint/pkg/logging"
)

var (
	// Capitalized text between markup tags: >Some Text<
	tagTextPattern = regexp.MustCompile(`>\s*([A-Z][^<>{}]*)\s*<`)
	// Capitalized values of display-ish string props: label="Some Text"
	propPattern = regexp.MustCompile(`\s(?:label|placeholder|title|description|message|alt|header)="([^"]*[A-Z][^"]*)"`)
)

// Options configures one scan.
type Options struct {
	Roots       []string // source trees to walk
	Extensions  []string // file extensions to inspect, e.g. ".tsx"
	ExcludeDirs []string // directory names skipped at any depth
}

// Finding is one suspect string in one file.
type Finding struct {
	Kind string // "Tag text" or "Prop text"
	Text string
}

// FileFindings groups the suspects of a single file.
type FileFindings struct {
	Path     string
	Findings []Finding
}

// Scan walks every root and collects suspect strings from matching files.
// Unreadable files are logged and skipped; a missing root is an error.
func Scan(opts Options) ([]FileFindings, error) {
	var all []FileFindings
	for _, root := range opts.Roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if excludedDir(d.Name(), opts.ExcludeDirs) {
					return filepath.SkipDir
				}
				return nil
			}
			if !matchesExtension(path, opts.Extensions) {
				return nil
			}
			content, err := os.ReadFile(path)
			if err != nil {
				logging.Warnf("skipping %s: %v", path, err)
				return nil
			}
			if findings := scanContent(string(content)); len(findings) > 0 {
				all = append(all, FileFindings{Path: path, Findings: findings})
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Path < all[j].Path })
	return all, nil
}

func scanContent(content string) []Finding {
	var findings []Finding
	for _, m := range tagTextPattern.FindAllStringSubmatch(content, -1) {
		if text := strings.TrimSpace(m[1]); suspect(text) {
			findings = append(findings, Finding{Kind: "Tag text", Text: text})
		}
	}
	for _, m := range propPattern.FindAllStringSubmatch(content, -1) {
		if text := strings.TrimSpace(m[1]); suspect(text) {
			findings = append(findings, Finding{Kind: "Prop text", Text: text})
		}
	}
	return findings
}

// suspect drops matches too short to be display copy and purely numeric
// fragments (prices, counters) that need no translation.
func suspect(text string) bool {
	if utf8.RuneCountInString(text) < 2 {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false
}

func excludedDir(name string, excluded []string) bool {
	for _, e := range excluded {
		if name == e {
			return true
		}
	}
	return false
}

func matchesExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// RenderReport writes one section per file with a line per suspect string.
func RenderReport(files []FileFindings) string {
	var b strings.Builder
	for i, file := range files {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "--- %s ---\n", file.Path)
		for _, f := range file.Findings {
			fmt.Fprintf(&b, "  %s: '%s'\n", f.Kind, f.Text)
		}
	}
	return b.String()
}
