// Package output provides the JSON and text writers behind the module
// inspection commands.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/StinkyLord/gwt-launcher/internal/descriptor"
	"github.com/StinkyLord/gwt-launcher/internal/model"
	"github.com/StinkyLord/gwt-launcher/internal/resolver"
	"github.com/StinkyLord/gwt-launcher/internal/toolchain"
)

// ModuleEntry is one line of a module listing.
type ModuleEntry struct {
	Name       string `json:"name"`
	Descriptor string `json:"descriptor"`
	SourceRoot string `json:"sourceRoot"`
	RenameTo   string `json:"renameTo,omitempty"`
}

// ModuleEntries describes modules sorted by name. Descriptors that cannot be
// read are logged and listed without rename-to.
func ModuleEntries(mods []*model.Module, logger *log.Logger) []ModuleEntry {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out := make([]ModuleEntry, 0, len(mods))
	for _, m := range mods {
		e := ModuleEntry{Name: m.Name(), Descriptor: m.DescriptorPath, SourceRoot: m.SourceRoot}
		if d, err := descriptor.Load(m.DescriptorPath); err != nil {
			logger.Error("cannot read module descriptor", "path", m.DescriptorPath, "err", err)
		} else {
			e.RenameTo = strings.TrimSpace(d.RenameTo)
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Descriptor < out[j].Descriptor
	})
	return out
}

// SourcesReport is the result of a resolution pass as printed by
// `modules sources`.
type SourcesReport struct {
	Modules  []*resolver.ResolvedModule `json:"modules"`
	External []string                   `json:"external"`
	Inputs   []string                   `json:"inputs"`
}

// NewSourcesReport combines a resolution with the inputs it registered.
// Empty lists are kept non-nil so they encode as [].
func NewSourcesReport(res *resolver.Resolution, inputs []string) *SourcesReport {
	r := &SourcesReport{
		Modules:  res.Modules,
		External: res.External,
		Inputs:   inputs,
	}
	if r.Modules == nil {
		r.Modules = []*resolver.ResolvedModule{}
	}
	if r.External == nil {
		r.External = []string{}
	}
	if r.Inputs == nil {
		r.Inputs = []string{}
	}
	return r
}

// WriteModules writes a module listing as JSON to w.
func WriteModules(w io.Writer, entries []ModuleEntry) error {
	if entries == nil {
		entries = []ModuleEntry{}
	}
	return WriteJSON(w, entries)
}

// WriteTree writes the <inherits> tree of the requested modules.
//
// The output is a JSON array with one node per requested module. Each node
// carries its inherited modules inline:
//
//	[
//	  {
//	    "name": "com.example.App",
//	    "origin": "project",
//	    "descriptor": "/p/src/main/java/com/example/App.gwt.xml",
//	    "children": [
//	      {"name": "com.google.gwt.user.User", "origin": "external"}
//	    ]
//	  }
//	]
func WriteTree(w io.Writer, tree *model.ModuleTree) error {
	if tree == nil || len(tree.Roots) == 0 {
		// Emit an empty array rather than null
		return WriteJSON(w, []struct{}{})
	}
	return WriteJSON(w, tree.Roots)
}

// WriteSources writes a SourcesReport as JSON.
func WriteSources(w io.Writer, report *SourcesReport) error {
	return WriteJSON(w, report)
}

// WriteCoordinates writes SDK coordinates as JSON.
func WriteCoordinates(w io.Writer, coords []toolchain.Coordinate) error {
	if coords == nil {
		coords = []toolchain.Coordinate{}
	}
	return WriteJSON(w, coords)
}

// WriteJSON marshals v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
