// Package descriptor parses GWT module descriptors (*.gwt.xml) and derives
// the source paths a module needs.
package descriptor

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// Default child directories used when a descriptor declares no <source> or
// <public> element.
const (
	DefaultSourcePath = "client"
	DefaultPublicPath = "public"
)

// Descriptor is the subset of a module descriptor the launcher cares about.
// The root element (<module>) is not checked.
type Descriptor struct {
	RenameTo    string       `xml:"rename-to,attr"`
	Inherits    []Inherit    `xml:"inherits"`
	EntryPoints []EntryPoint `xml:"entry-point"`
	Sources     []PathEntry  `xml:"source"`
	Publics     []PathEntry  `xml:"public"`
}

// Inherit is an <inherits name="..."/> element.
type Inherit struct {
	Name string `xml:"name,attr"`
}

// EntryPoint is an <entry-point class="..."/> element.
type EntryPoint struct {
	Class string `xml:"class,attr"`
}

// PathEntry is a <source path="..."/> or <public path="..."/> element.
// Paths are slash-separated and relative to the descriptor's directory.
type PathEntry struct {
	Path string `xml:"path,attr"`
}

// Parse decodes a descriptor from r.
func Parse(r io.Reader) (*Descriptor, error) {
	var d Descriptor
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("malformed module descriptor: %w", err)
	}
	return &d, nil
}

// Load opens and parses the descriptor at path.
func Load(path string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// InheritedNames returns the non-empty <inherits> names in document order.
func (d *Descriptor) InheritedNames() []string {
	var out []string
	for _, in := range d.Inherits {
		if name := strings.TrimSpace(in.Name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// EntryPointPackages returns the package of every entry-point class that has
// one, e.g. "com.example.client.App" -> "com.example.client".
func (d *Descriptor) EntryPointPackages() []string {
	var out []string
	for _, ep := range d.EntryPoints {
		class := strings.TrimSpace(ep.Class)
		i := strings.LastIndexByte(class, '.')
		if i <= 0 {
			continue
		}
		out = append(out, class[:i])
	}
	return out
}

// SourcePaths returns the declared <source> paths, or nil if none.
func (d *Descriptor) SourcePaths() []string {
	return paths(d.Sources)
}

// PublicPaths returns the declared <public> paths, or nil if none.
func (d *Descriptor) PublicPaths() []string {
	return paths(d.Publics)
}

func paths(entries []PathEntry) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSpace(e.Path))
	}
	return out
}
