// Package scanner walks configured source roots and discovers GWT module
// descriptors.
package scanner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/StinkyLord/gwt-launcher/internal/model"
)

// Scanner finds *.gwt.xml descriptors under a set of source roots. It only
// reads directory entries; descriptor contents are never opened here.
type Scanner struct {
	Logger *log.Logger
}

// New creates a Scanner. A nil logger discards output.
func New(logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scanner{Logger: logger}
}

// FindAllModules scans roots with a silent Scanner.
func FindAllModules(roots []string) ([]*model.Module, error) {
	return New(nil).FindAllModules(roots)
}

// FindAllModules walks every root recursively and returns one Module per
// descriptor found. Roots that do not exist are skipped.
//
// The same module name found under two different roots yields two records;
// deciding between them is the resolver's job. The result is sorted by name
// and then descriptor path.
func (s *Scanner) FindAllModules(roots []string) ([]*model.Module, error) {
	seen := map[string]bool{}
	var modules []*model.Module

	for _, root := range uniqueRoots(roots) {
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				s.Logger.Debug("source root does not exist, skipping", "root", root)
				continue
			}
			return nil, fmt.Errorf("cannot read source root %q: %w", root, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("source root %q is not a directory", root)
		}

		found, err := s.scanRoot(root)
		if err != nil {
			return nil, err
		}
		for _, m := range found {
			key := m.SourceRoot + "\x00" + m.DescriptorPath
			if seen[key] {
				continue
			}
			seen[key] = true
			modules = append(modules, m)
		}
	}

	sort.Slice(modules, func(i, j int) bool {
		if modules[i].Name() != modules[j].Name() {
			return modules[i].Name() < modules[j].Name()
		}
		return modules[i].DescriptorPath < modules[j].DescriptorPath
	})
	return modules, nil
}

func (s *Scanner) scanRoot(root string) ([]*model.Module, error) {
	// WalkDir does not descend into a symlinked root, so walk its target
	// and report paths under root.
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		walkRoot = root
	}

	var found []*model.Module
	var walkErr error

	_ = filepath.WalkDir(walkRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			s.Logger.Debug("skipping unreadable path", "path", path, "err", err)
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != walkRoot && (strings.HasPrefix(name, ".git") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if !model.IsDescriptor(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			walkErr = err
			return filepath.SkipAll
		}
		path = filepath.Join(root, rel)
		m, err := model.ModuleUnder(root, path)
		if err != nil {
			walkErr = err
			return filepath.SkipAll
		}
		s.Logger.Debug("found module descriptor", "module", m.Name(), "path", path)
		found = append(found, m)
		return nil
	})

	return found, walkErr
}

// uniqueRoots cleans roots, makes them absolute and drops duplicates while
// keeping order.
func uniqueRoots(roots []string) []string {
	out := make([]string, 0, len(roots))
	seen := map[string]bool{}
	for _, r := range roots {
		if r == "" {
			continue
		}
		if abs, err := filepath.Abs(r); err == nil {
			r = abs
		}
		r = filepath.Clean(r)
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

// Index groups modules by dotted name.
func Index(modules []*model.Module) map[string][]*model.Module {
	idx := make(map[string][]*model.Module, len(modules))
	for _, m := range modules {
		idx[m.Name()] = append(idx[m.Name()], m)
	}
	return idx
}
