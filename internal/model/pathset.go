package model

import (
	"encoding/json"
	"path/filepath"
	"sort"
)

// SourcePathSet is the duplicate-free set of paths one module needs on the
// compiler's source path. The descriptor file itself is always a member; it
// anchors dependency tracking even though it is not a directory.
//
// Paths are returned in lexicographic order so build inputs are reproducible.
type SourcePathSet struct {
	anchor string
	paths  map[string]struct{}
}

// NewSourcePathSet creates a set holding only the descriptor path.
func NewSourcePathSet(descriptorPath string) *SourcePathSet {
	anchor := filepath.Clean(descriptorPath)
	return &SourcePathSet{
		anchor: anchor,
		paths:  map[string]struct{}{anchor: {}},
	}
}

// Add inserts a cleaned path and reports whether it was new.
func (s *SourcePathSet) Add(path string) bool {
	path = filepath.Clean(path)
	if _, ok := s.paths[path]; ok {
		return false
	}
	s.paths[path] = struct{}{}
	return true
}

// Anchor returns the descriptor path.
func (s *SourcePathSet) Anchor() string { return s.anchor }

// Contains reports whether path is in the set.
func (s *SourcePathSet) Contains(path string) bool {
	_, ok := s.paths[filepath.Clean(path)]
	return ok
}

// Len returns the number of paths, anchor included.
func (s *SourcePathSet) Len() int { return len(s.paths) }

// Paths returns every path in lexicographic order.
func (s *SourcePathSet) Paths() []string {
	out := make([]string, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Dirs returns the paths without the descriptor anchor.
func (s *SourcePathSet) Dirs() []string {
	out := make([]string, 0, len(s.paths)-1)
	for _, p := range s.Paths() {
		if p != s.anchor {
			out = append(out, p)
		}
	}
	return out
}

func (s *SourcePathSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Paths())
}
