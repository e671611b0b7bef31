// Package resolver runs the module resolution pass: it scans the configured
// source roots, looks up each requested module name, extracts its source
// paths and registers them as build inputs.
//
// Nothing is cached between calls. Every Resolve re-walks the source tree.
package resolver

import (
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/StinkyLord/gwt-launcher/internal/descriptor"
	"github.com/StinkyLord/gwt-launcher/internal/issue"
	"github.com/StinkyLord/gwt-launcher/internal/model"
	"github.com/StinkyLord/gwt-launcher/internal/scanner"
	"github.com/StinkyLord/gwt-launcher/internal/toolchain"
)

// SourceSets is the build-side collaborator the resolver works against.
type SourceSets interface {
	// SourceDirs lists the configured source directories (main source set
	// plus any extra source directories).
	SourceDirs() []string

	// RegisterInput records a path whose contents invalidate the build
	// action when they change.
	RegisterInput(path string)
}

// ResolvedModule is one requested module together with its source paths.
type ResolvedModule struct {
	Module      *model.Module          `json:"-"`
	Name        string                 `json:"name"`
	Descriptor  *descriptor.Descriptor `json:"-"`
	SourcePaths *model.SourcePathSet   `json:"sourcePaths"`
}

// Resolution is the result of one resolution pass.
type Resolution struct {
	Modules []*ResolvedModule `json:"modules"`

	// External lists requested names with no descriptor in any source root.
	// They are expected to come from a jar on the classpath.
	External []string `json:"external,omitempty"`
}

// Paths returns the union of every module's source paths, sorted.
func (r *Resolution) Paths() []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range r.Modules {
		for _, p := range m.SourcePaths.Paths() {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Names returns the resolved module names in resolution order.
func (r *Resolution) Names() []string {
	out := make([]string, 0, len(r.Modules))
	for _, m := range r.Modules {
		out = append(out, m.Name)
	}
	return out
}

// Resolver resolves module names against a SourceSets collaborator.
type Resolver struct {
	Sets   SourceSets
	Logger *log.Logger

	scanner   *scanner.Scanner
	extractor *descriptor.Extractor
}

// New creates a Resolver. A nil logger discards output.
func New(sets SourceSets, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{
		Sets:      sets,
		Logger:    logger,
		scanner:   scanner.New(logger),
		extractor: descriptor.NewExtractor(logger),
	}
}

// Modules scans every configured source directory.
func (r *Resolver) Modules() ([]*model.Module, error) {
	mods, err := r.scanner.FindAllModules(r.Sets.SourceDirs())
	if err != nil {
		return nil, issue.New("scan source roots").Wrap(err)
	}
	return mods, nil
}

// Resolve looks up every requested module name and extracts its source
// paths. Each resulting path is registered as a build input.
//
// It fails with issue.ErrModulesRequired when names is empty and with
// issue.ErrAmbiguousModule when a name matches descriptors under more than
// one source root. Names with no descriptor at all are logged and reported
// in Resolution.External.
func (r *Resolver) Resolve(names []string) (*Resolution, error) {
	names = uniqueNames(names)
	if len(names) == 0 {
		return nil, issue.New("resolve modules").
			WithSuggestion("Set 'modules' in the configuration file or pass module names on the command line").
			Wrap(issue.ErrModulesRequired)
	}

	mods, err := r.Modules()
	if err != nil {
		return nil, err
	}
	idx := scanner.Index(mods)

	res := &Resolution{}
	for _, name := range names {
		m, err := lookup(idx, name)
		if err != nil {
			return nil, err
		}
		if m == nil {
			if toolchain.IsSDKModule(name) {
				r.Logger.Debug("SDK module, expecting it on the classpath", "module", name)
				res.External = append(res.External, name)
				continue
			}
			r.Logger.Warn("module not found in any source root, expecting it on the classpath", "module", name)
			res.External = append(res.External, name)
			continue
		}

		x, err := r.extractor.Extract(m)
		if err != nil {
			return nil, err
		}
		for _, p := range x.SourcePaths.Paths() {
			r.Sets.RegisterInput(p)
		}
		r.Logger.Debug("resolved module", "module", name, "paths", x.SourcePaths.Len())
		res.Modules = append(res.Modules, &ResolvedModule{
			Module:      m,
			Name:        name,
			Descriptor:  x.Descriptor,
			SourcePaths: x.SourcePaths,
		})
	}
	return res, nil
}

// Tree builds the <inherits> tree of the requested modules. Descriptors that
// cannot be read contribute a node without children.
func (r *Resolver) Tree(names []string) (*model.ModuleTree, error) {
	names = uniqueNames(names)
	if len(names) == 0 {
		return nil, issue.New("build module tree").Wrap(issue.ErrModulesRequired)
	}

	mods, err := r.Modules()
	if err != nil {
		return nil, err
	}
	idx := scanner.Index(mods)

	infos := make([]*model.ModuleInfo, 0, len(idx))
	for name, candidates := range idx {
		if len(candidates) != 1 {
			continue
		}
		m := candidates[0]
		info := &model.ModuleInfo{Name: name, DescriptorPath: m.DescriptorPath}
		if d, err := descriptor.Load(m.DescriptorPath); err != nil {
			r.Logger.Error("cannot read module descriptor", "module", name, "path", m.DescriptorPath, "err", err)
		} else {
			info.Inherits = d.InheritedNames()
		}
		infos = append(infos, info)
	}

	tree := model.BuildModuleTree(names, infos)

	// An ambiguous name anywhere in the tree is an error, not an external leaf.
	var walk func(nodes []*model.TreeNode) error
	walk = func(nodes []*model.TreeNode) error {
		for _, n := range nodes {
			if _, err := lookup(idx, n.Name); err != nil {
				return err
			}
			if err := walk(n.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(tree.Roots); err != nil {
		return nil, err
	}
	return tree, nil
}

// lookup returns the single module named name, nil when there is none, or
// an ambiguity error naming every candidate descriptor.
func lookup(idx map[string][]*model.Module, name string) (*model.Module, error) {
	candidates := idx[name]
	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return candidates[0], nil
	}

	paths := make([]string, 0, len(candidates))
	for _, c := range candidates {
		paths = append(paths, c.DescriptorPath)
	}
	sort.Strings(paths)
	return nil, issue.New("resolve module").
		WithResource(name).
		WithSuggestion("Rename or remove all but one of the descriptors").
		WithSuggestion("Or drop the extra source directory that duplicates the module").
		Wrapf("%w: found %d descriptors: %s", issue.ErrAmbiguousModule, len(paths), strings.Join(paths, ", "))
}

// uniqueNames trims names, drops blanks and duplicates, and keeps order.
func uniqueNames(names []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
