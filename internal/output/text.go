package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/StinkyLord/gwt-launcher/internal/model"
)

// Styler decorates the parts of a text rendering. The zero value leaves
// text unchanged.
type Styler struct {
	Name     func(string) string
	External func(string) string
	Faint    func(string) string
}

func apply(f func(string) string, s string) string {
	if f == nil {
		return s
	}
	return f(s)
}

// RenderTree writes an indented tree, one module per line:
//
//	com.example.App
//	├── com.example.Shared
//	│   └── com.google.gwt.user.User (external)
//	└── com.google.gwt.json.JSON (external)
func RenderTree(w io.Writer, roots []*model.TreeNode, st Styler) error {
	var b strings.Builder
	for _, r := range roots {
		b.WriteString(label(r, st))
		b.WriteByte('\n')
		renderChildren(&b, r.Children, "", st)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderChildren(b *strings.Builder, nodes []*model.TreeNode, prefix string, st Styler) {
	for i, n := range nodes {
		branch, next := "├── ", "│   "
		if i == len(nodes)-1 {
			branch, next = "└── ", "    "
		}
		b.WriteString(apply(st.Faint, prefix+branch))
		b.WriteString(label(n, st))
		b.WriteByte('\n')
		renderChildren(b, n.Children, prefix+next, st)
	}
}

func label(n *model.TreeNode, st Styler) string {
	if n.Origin == model.OriginExternal {
		return apply(st.External, n.Name) + apply(st.Faint, " (external)")
	}
	return apply(st.Name, n.Name)
}

// RenderModules writes a module listing as aligned columns.
func RenderModules(w io.Writer, entries []ModuleEntry, st Styler) error {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Name))
	}
	for _, e := range entries {
		pad := strings.Repeat(" ", width-len(e.Name))
		line := apply(st.Name, e.Name) + pad + "  " + e.Descriptor
		if e.RenameTo != "" {
			line += apply(st.Faint, fmt.Sprintf(" (rename-to %s)", e.RenameTo))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSources writes each module's source paths followed by the
// registered inputs.
func RenderSources(w io.Writer, report *SourcesReport, st Styler) error {
	var b strings.Builder
	for _, m := range report.Modules {
		b.WriteString(apply(st.Name, m.Name))
		b.WriteByte('\n')
		for _, p := range m.SourcePaths.Paths() {
			b.WriteString("  " + p + "\n")
		}
	}
	for _, name := range report.External {
		b.WriteString(apply(st.External, name) + apply(st.Faint, " (external)") + "\n")
	}
	if len(report.Inputs) > 0 {
		b.WriteString(apply(st.Faint, "inputs:") + "\n")
		for _, in := range report.Inputs {
			b.WriteString("  " + in + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
