package descriptor

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/StinkyLord/gwt-launcher/internal/model"
)

// Extractor resolves the SourcePathSet of a module from its descriptor.
type Extractor struct {
	Logger *log.Logger
}

// NewExtractor creates an Extractor. A nil logger discards output.
func NewExtractor(logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Extractor{Logger: logger}
}

// Extraction is the result of reading one module descriptor.
type Extraction struct {
	Module      *model.Module
	Descriptor  *Descriptor // nil when the descriptor could not be read
	SourcePaths *model.SourcePathSet
	Err         error // local read/parse failure, already logged
}

// ExtractSourcePaths returns the paths module m needs on the source path:
//
//  1. the descriptor file itself;
//  2. the package directory of each <entry-point class>, resolved against
//     the source root (not the descriptor's directory);
//  3. every declared <source path>, or <dir>/client when none is declared
//     and that directory exists;
//  4. every declared <public path>, or <dir>/public likewise.
//
// A malformed or unreadable descriptor is logged and yields just the
// descriptor path. The only error returned is an inconsistent Module.
func (e *Extractor) ExtractSourcePaths(m *model.Module) (*model.SourcePathSet, error) {
	x, err := e.Extract(m)
	if err != nil {
		return nil, err
	}
	return x.SourcePaths, nil
}

// Extract is ExtractSourcePaths that also returns the parsed descriptor.
func (e *Extractor) Extract(m *model.Module) (*Extraction, error) {
	root, err := m.Root()
	if err != nil {
		return nil, err
	}

	set := model.NewSourcePathSet(m.DescriptorPath)
	x := &Extraction{Module: m, SourcePaths: set}

	d, err := Load(m.DescriptorPath)
	if err != nil {
		e.Logger.Error("cannot read module descriptor", "module", m.Name(), "path", m.DescriptorPath, "err", err)
		x.Err = err
		return x, nil
	}
	x.Descriptor = d

	for _, pkg := range d.EntryPointPackages() {
		set.Add(filepath.Join(root, filepath.FromSlash(strings.ReplaceAll(pkg, ".", "/"))))
	}

	dir := m.Dir()
	e.addPaths(set, dir, d.SourcePaths(), DefaultSourcePath, m)
	e.addPaths(set, dir, d.PublicPaths(), DefaultPublicPath, m)

	return x, nil
}

// addPaths adds declared paths relative to dir, or the default child when
// none are declared and it exists on disk.
func (e *Extractor) addPaths(set *model.SourcePathSet, dir string, declared []string, def string, m *model.Module) {
	if declared != nil {
		for _, p := range declared {
			set.Add(filepath.Join(dir, filepath.FromSlash(p)))
		}
		return
	}

	path := filepath.Join(dir, def)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		e.Logger.Debug("default directory not present, omitting", "module", m.Name(), "path", path)
		return
	}
	set.Add(path)
}
