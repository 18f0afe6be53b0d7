package types

import (
	"path/filepath"
	"sort"
)

// EntryKind classifies a scanned entry.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
	KindShortcut
)

// String returns the lowercase name of the kind
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindShortcut:
		return "shortcut"
	default:
		return "unknown"
	}
}

// MarshalText lets the kind render as a string in JSON output
func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is a filesystem entry found by the scanner. It is never mutated:
// renaming produces a new path and the entry is discarded.
type Entry struct {
	Path string    `json:"path"`
	Kind EntryKind `json:"kind"`
}

// Name returns the last element of the entry path
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// Dir returns the parent directory of the entry
func (e Entry) Dir() string {
	return filepath.Dir(e.Path)
}

// ScanResult holds the entries found under a root, deepest first.
type ScanResult struct {
	Root      string  `json:"root"`
	Files     []Entry `json:"files"`
	Shortcuts []Entry `json:"shortcuts"`
	// Converted counts names that were skipped because they already carry
	// a YYYY.MM.DD prefix
	Converted int `json:"converted"`
}

// Total returns the number of entries in both lists
func (r *ScanResult) Total() int {
	return len(r.Files) + len(r.Shortcuts)
}

// SortDeepestFirst orders entries by descending path. A parent path is a
// prefix of its children's paths, so children always sort before parents.
func SortDeepestFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Path > entries[j].Path
	})
}
