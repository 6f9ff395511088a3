// Package compare diffs one target locale catalog against the reference.
//
// Four defect classes are computed from the flattened key spaces:
// keys missing from the target, keys only the target has, leaf values left
// byte-identical to the reference, and interpolation placeholder sets that
// disagree between the two sides.
package compare

import (
	"fmt"
	"sort"
	"strings"

	"l10nlint/pkg/catalog"
	"l10nlint/pkg/placeholder"
)

// Mismatch is one key whose reference and target placeholder sets differ.
type Mismatch struct {
	Key    string
	Ref    placeholder.Set
	Target placeholder.Set
}

// Result is the outcome of auditing one target catalog. All slices are
// sorted by key so rendering is deterministic.
type Result struct {
	File string
	// DisplayName is the English name of the target language when the file
	// stem is a valid tag; the reporter shows it next to the file name.
	DisplayName  string
	Missing      []string
	Extra        []string
	Untranslated []string
	Mismatches   []Mismatch
}

// HasFindings reports whether any defect class is non-empty.
func (r Result) HasFindings() bool {
	return len(r.Missing) > 0 || len(r.Extra) > 0 ||
		len(r.Untranslated) > 0 || len(r.Mismatches) > 0
}

// Options carries the per-run comparison settings.
type Options struct {
	// ExcludedPrefixes lists key-path prefixes whose leaves are expected to
	// be identical across locales (proper nouns, language names) and are
	// never flagged as untranslated.
	ExcludedPrefixes []string
}

// Diff audits target against ref. Missing and extra membership is pure key
// set algebra; the untranslated and placeholder checks run only on keys both
// sides share.
func Diff(file string, ref, target catalog.Flat, opts Options) Result {
	res := Result{File: file}
	for key := range ref {
		if _, ok := target[key]; !ok {
			res.Missing = append(res.Missing, key)
		}
	}
	for key, targetValue := range target {
		refValue, ok := ref[key]
		if !ok {
			res.Extra = append(res.Extra, key)
			continue
		}
		if untranslated(key, refValue, targetValue, opts.ExcludedPrefixes) {
			res.Untranslated = append(res.Untranslated, key)
		}
		refSet := placeholder.Extract(refValue)
		targetSet := placeholder.Extract(targetValue)
		if !refSet.Equal(targetSet) {
			res.Mismatches = append(res.Mismatches, Mismatch{Key: key, Ref: refSet, Target: targetSet})
		}
	}
	sort.Strings(res.Missing)
	sort.Strings(res.Extra)
	sort.Strings(res.Untranslated)
	sort.Slice(res.Mismatches, func(i, j int) bool { return res.Mismatches[i].Key < res.Mismatches[j].Key })
	return res
}

// untranslated flags a shared key whose target leaf is identical to the
// non-empty reference leaf, unless the key sits under an excluded prefix.
// Equality is exact: no normalization, no trimming. A string never equals a
// non-string; non-string pairs compare by their stringified form.
func untranslated(key string, ref, target any, excluded []string) bool {
	for _, prefix := range excluded {
		if strings.HasPrefix(key, prefix) {
			return false
		}
	}
	refStr, refIsStr := ref.(string)
	targetStr, targetIsStr := target.(string)
	switch {
	case refIsStr && targetIsStr:
		return refStr != "" && refStr == targetStr
	case refIsStr != targetIsStr:
		return false
	default:
		return fmt.Sprintf("%v", ref) == fmt.Sprintf("%v", target)
	}
}
