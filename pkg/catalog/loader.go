package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"l10nlint/pkg/logging"
	"l10nlint/pkg/util"
)

// ErrReferenceNotFound means the reference catalog is absent from the
// locales directory. The audit cannot proceed without it.
var ErrReferenceNotFound = errors.New("reference catalog not found")

// File is one successfully loaded and flattened locale catalog.
type File struct {
	Name        string // base file name, e.g. "fr.json"
	Locale      string // file stem, e.g. "fr"
	DisplayName string // English language name, "" if the stem is not a tag
	Flat        Flat
}

// Failure records a target catalog that could not be read or parsed.
// Such files are skipped; the rest of the run continues.
type Failure struct {
	Name string
	Err  error
}

// Set is the loaded input of one audit run: the reference catalog plus every
// target, with per-file failures kept aside instead of aborting the batch.
type Set struct {
	Reference *File
	Targets   []*File   // sorted by Name
	Failures  []Failure // sorted by Name
}

// LoadDir reads every catalog file in dir. The file named refName is the
// reference; its absence, or any failure loading it, is fatal. Any other
// file that fails to load is recorded as a Failure and skipped.
func LoadDir(dir, refName string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir %s: %w", dir, err)
	}

	refPath := filepath.Join(dir, refName)
	if !util.FileExists(refPath) {
		return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, refPath)
	}
	ref, err := loadFile(refPath)
	if err != nil {
		return nil, fmt.Errorf("load reference catalog: %w", err)
	}

	set := &Set{Reference: ref}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == refName {
			continue
		}
		if _, ok := FormatForFile(name); !ok {
			continue
		}
		file, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			logging.Warnf("skipping %s: %v", name, err)
			set.Failures = append(set.Failures, Failure{Name: name, Err: err})
			continue
		}
		set.Targets = append(set.Targets, file)
	}
	sort.Slice(set.Targets, func(i, j int) bool { return set.Targets[i].Name < set.Targets[j].Name })
	sort.Slice(set.Failures, func(i, j int) bool { return set.Failures[i].Name < set.Failures[j].Name })
	return set, nil
}

func loadFile(path string) (*File, error) {
	name := filepath.Base(path)
	format, ok := FormatForFile(name)
	if !ok {
		return nil, fmt.Errorf("unsupported catalog file %s", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}
	root, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", name, err)
	}
	file := &File{
		Name:   name,
		Locale: strings.TrimSuffix(name, filepath.Ext(name)),
		Flat:   root.Flatten(),
	}
	if tag, err := language.Parse(file.Locale); err == nil {
		file.DisplayName = display.English.Tags().Name(tag)
	} else {
		logging.Warnf("%s: file stem %q is not a BCP 47 language tag", name, file.Locale)
	}
	return file, nil
}
