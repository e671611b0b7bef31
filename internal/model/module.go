// Package model defines the internal data structures used by the module resolver.
package model

import (
	"path/filepath"
	"strings"

	"github.com/StinkyLord/gwt-launcher/internal/issue"
)

// DescriptorSuffix is the file name suffix that marks a GWT module descriptor.
const DescriptorSuffix = ".gwt.xml"

// Module is one discoverable compilation unit.
//
// DescriptorPath always ends with RelativePath, and stripping RelativePath
// from it yields SourceRoot. Scanners derive both from the same tree walk;
// NewModule rejects records that break this.
type Module struct {
	DescriptorPath string // Absolute path of the *.gwt.xml file
	RelativePath   string // Descriptor path relative to SourceRoot
	SourceRoot     string // Configured source root the descriptor was found under
}

// NewModule builds a Module and validates it.
func NewModule(descriptorPath, relativePath, sourceRoot string) (*Module, error) {
	m := &Module{
		DescriptorPath: filepath.Clean(descriptorPath),
		RelativePath:   filepath.Clean(relativePath),
	}
	if sourceRoot != "" {
		m.SourceRoot = filepath.Clean(sourceRoot)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ModuleUnder builds a Module for a descriptor found under sourceRoot,
// deriving the relative path from the two.
func ModuleUnder(sourceRoot, descriptorPath string) (*Module, error) {
	rel, err := filepath.Rel(sourceRoot, descriptorPath)
	if err != nil {
		return nil, issue.New("construct module").
			WithResource(descriptorPath).
			Wrapf("%w: not under source root %s", issue.ErrInconsistentModule, sourceRoot)
	}
	return NewModule(descriptorPath, rel, sourceRoot)
}

// Validate checks the descriptor/relative path invariant.
func (m *Module) Validate() error {
	root, ok := stripSuffix(m.DescriptorPath, m.RelativePath)
	if !ok || m.RelativePath == "." || filepath.IsAbs(m.RelativePath) ||
		strings.HasPrefix(filepath.ToSlash(m.RelativePath), "../") {
		return issue.New("construct module").
			WithResource(m.DescriptorPath).
			Wrapf("%w: %s does not end with %s", issue.ErrInconsistentModule, m.DescriptorPath, m.RelativePath)
	}
	if m.SourceRoot != "" && filepath.Clean(m.SourceRoot) != root {
		return issue.New("construct module").
			WithResource(m.DescriptorPath).
			Wrapf("%w: %s is not %s joined with %s", issue.ErrInconsistentModule,
				m.DescriptorPath, m.SourceRoot, m.RelativePath)
	}
	return nil
}

// stripSuffix removes rel from the end of path on a path-segment boundary
// and returns what is left.
func stripSuffix(path, rel string) (string, bool) {
	path = filepath.Clean(path)
	rel = filepath.Clean(rel)
	if path == rel {
		return ".", true
	}
	sep := string(filepath.Separator)
	if !strings.HasSuffix(path, sep+rel) {
		return "", false
	}
	root := strings.TrimSuffix(path, sep+rel)
	if root == "" {
		root = sep
	}
	return root, true
}

// Root returns the source root recomputed from DescriptorPath and
// RelativePath. It fails with issue.ErrInconsistentModule when the two
// disagree.
func (m *Module) Root() (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	root, _ := stripSuffix(m.DescriptorPath, m.RelativePath)
	return root, nil
}

// Name returns the dotted module name, e.g. "com/example/App.gwt.xml" ->
// "com.example.App".
func (m *Module) Name() string {
	return NameFromPath(m.RelativePath)
}

// Dir returns the directory holding the descriptor.
func (m *Module) Dir() string {
	return filepath.Dir(m.DescriptorPath)
}

func (m *Module) String() string {
	return m.Name() + " (" + m.DescriptorPath + ")"
}

// NameFromPath derives a dotted module name from a descriptor path relative
// to its source root.
func NameFromPath(rel string) string {
	rel = filepath.ToSlash(filepath.Clean(rel))
	rel = strings.TrimSuffix(rel, DescriptorSuffix)
	return strings.ReplaceAll(rel, "/", ".")
}

// IsDescriptor reports whether a file name follows the descriptor naming
// convention.
func IsDescriptor(name string) bool {
	return len(name) > len(DescriptorSuffix) && strings.HasSuffix(name, DescriptorSuffix)
}
