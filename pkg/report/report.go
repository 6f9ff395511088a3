// Package report renders the audit outcome into a single text artifact.
package report

import (
	"fmt"
	"sort"
	"strings"

	"l10nlint/pkg/catalog"
	"l10nlint/pkg/compare"
)

const (
	// PreviewLimit caps how many keys a defect list shows; the count in the
	// heading still reflects the full total.
	PreviewLimit = 20
	// MismatchDetailLimit caps how many interpolation mismatches get a
	// per-key detail line.
	MismatchDetailLimit = 10
)

// Render produces one section per target file, in lexicographic file-name
// order, with load failures interleaved in the same ordering. refName labels
// the untranslated heading so readers know which locale the values match.
func Render(results []compare.Result, failures []catalog.Failure, refName string) string {
	type section struct {
		name string
		body string
	}
	sections := make([]section, 0, len(results)+len(failures))
	for _, res := range results {
		sections = append(sections, section{name: res.File, body: renderResult(res, refName)})
	}
	for _, f := range failures {
		sections = append(sections, section{
			name: f.Name,
			body: fmt.Sprintf("--- %s ---\nfailed to load: %v\n", f.Name, f.Err),
		})
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].name < sections[j].name })

	bodies := make([]string, len(sections))
	for i, s := range sections {
		bodies[i] = s.body
	}
	return strings.Join(bodies, "\n")
}

func renderResult(res compare.Result, refName string) string {
	var b strings.Builder
	if res.DisplayName != "" {
		fmt.Fprintf(&b, "--- %s (%s) ---\n", res.File, res.DisplayName)
	} else {
		fmt.Fprintf(&b, "--- %s ---\n", res.File)
	}

	if len(res.Missing) > 0 {
		fmt.Fprintf(&b, "Missing keys (%d): %s\n", len(res.Missing), preview(res.Missing))
	} else {
		b.WriteString("No missing keys.\n")
	}
	if len(res.Untranslated) > 0 {
		fmt.Fprintf(&b, "Untranslated keys (same as %s, %d): %s\n",
			refName, len(res.Untranslated), preview(res.Untranslated))
	}
	if len(res.Mismatches) > 0 {
		fmt.Fprintf(&b, "Interpolation mismatches (%d):\n", len(res.Mismatches))
		details := res.Mismatches
		if len(details) > MismatchDetailLimit {
			details = details[:MismatchDetailLimit]
		}
		for _, m := range details {
			fmt.Fprintf(&b, "  %s: %s vs %s\n", m.Key, m.Ref, m.Target)
		}
	}
	if len(res.Extra) > 0 {
		fmt.Fprintf(&b, "Extra keys (%d): %s\n", len(res.Extra), preview(res.Extra))
	}
	return b.String()
}

func preview(keys []string) string {
	if len(keys) > PreviewLimit {
		keys = keys[:PreviewLimit]
	}
	return "[" + strings.Join(keys, " ") + "]"
}
