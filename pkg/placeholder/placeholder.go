package placeholder

import (
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches one interpolation token: a brace-delimited span with
// no nested braces. "{a{b}}" therefore yields only "{b}", and "{}" yields
// nothing. This is a heuristic match, not a template parser.
var tokenPattern = regexp.MustCompile(`\{[^{}]+\}`)

// Set holds the distinct placeholder tokens of one leaf value.
type Set map[string]struct{}

// Extract returns the placeholder set of a leaf value. Non-string leaves
// (numbers, booleans, lists) carry no placeholders and yield the empty set.
func Extract(leaf any) Set {
	s, ok := leaf.(string)
	if !ok {
		return Set{}
	}
	set := Set{}
	for _, token := range tokenPattern.FindAllString(s, -1) {
		set[token] = struct{}{}
	}
	return set
}

// Equal reports whether both sets contain exactly the same tokens.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for token := range s {
		if _, ok := other[token]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the tokens in lexicographic order.
func (s Set) Sorted() []string {
	tokens := make([]string, 0, len(s))
	for token := range s {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// String renders the set as "[{a} {b}]", or "[]" when empty.
func (s Set) String() string {
	return "[" + strings.Join(s.Sorted(), " ") + "]"
}
