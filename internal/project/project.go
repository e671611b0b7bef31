// Package project models the on-disk layout of a GWT project: its source
// sets, output directories and classpath. A Project is the SourceSets
// collaborator of the resolver and collects the build inputs it registers.
package project

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/StinkyLord/gwt-launcher/internal/config"
	"github.com/StinkyLord/gwt-launcher/internal/resolver"
)

var _ resolver.SourceSets = (*Project)(nil)

// Layout lists the directories of a project. All paths are absolute.
type Layout struct {
	Dir            string
	Sources        []string // main source set
	ExtraSources   []string // extra source dirs of the task at hand
	TestSources    []string
	Outputs        []string // compiled classes and resources of the main source set
	TestOutputs    []string
	ClasspathGlobs []string // additional entries; glob patterns allowed
}

// LayoutFrom builds a Layout from a loaded configuration. extraSources are
// the effective extra_source_dirs of the task being run.
func LayoutFrom(cfg *config.Config, extraSources []string) Layout {
	return Layout{
		Dir:            cfg.Dir,
		Sources:        cfg.SourceDirs,
		ExtraSources:   extraSources,
		TestSources:    cfg.TestSourceDirs,
		Outputs:        cfg.OutputDirs,
		TestOutputs:    cfg.TestOutputDirs,
		ClasspathGlobs: cfg.Classpath,
	}
}

// Project is a Layout plus the build inputs registered against it.
type Project struct {
	Layout

	mu     sync.Mutex
	inputs map[string]struct{}
}

// New creates a Project.
func New(l Layout) *Project {
	return &Project{Layout: l, inputs: map[string]struct{}{}}
}

// SourceDirs returns the main and extra source directories.
func (p *Project) SourceDirs() []string {
	return dedup(p.Sources, p.ExtraSources)
}

// RegisterInput records a path whose changes invalidate the build action.
func (p *Project) RegisterInput(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inputs[filepath.Clean(path)] = struct{}{}
}

// Inputs returns the registered inputs in lexicographic order.
func (p *Project) Inputs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.inputs))
	for in := range p.inputs {
		out = append(out, in)
	}
	sort.Strings(out)
	return out
}

// Classpath returns the launcher classpath: source dirs, output dirs, the
// test source and output dirs when withTests is set, then the configured
// entries with globs expanded. Duplicates are dropped, order is kept.
//
// A glob that matches nothing is an error; a plain entry that does not exist
// is kept as is.
func (p *Project) Classpath(withTests bool) ([]string, error) {
	lists := [][]string{p.SourceDirs(), p.Outputs}
	if withTests {
		lists = append(lists, p.TestSources, p.TestOutputs)
	}

	var extra []string
	for _, pattern := range p.ClasspathGlobs {
		if !hasMeta(pattern) {
			extra = append(extra, pattern)
			continue
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid classpath pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("classpath pattern %q matches no files", pattern)
		}
		sort.Strings(matches)
		extra = append(extra, matches...)
	}
	lists = append(lists, extra)

	return dedup(lists...), nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[`)
}

func dedup(lists ...[]string) []string {
	seen := map[string]bool{}
	var out []string
	for _, list := range lists {
		for _, p := range list {
			p = filepath.Clean(p)
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
