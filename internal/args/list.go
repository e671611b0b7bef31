// Package args maps effective task settings to GWT command-line arguments
// and JVM options. It only builds string lists; it never touches the
// filesystem or starts processes.
package args

import (
	"path/filepath"
	"strconv"
	"strings"
)

// List accumulates "-name value" style arguments. Unset (nil) values emit
// nothing.
type List struct {
	args []string
}

// Add appends raw tokens.
func (l *List) Add(tokens ...string) {
	l.args = append(l.args, tokens...)
}

// Value emits "-name value".
func (l *List) Value(name string, v *string) {
	if v != nil {
		l.args = append(l.args, "-"+name, *v)
	}
}

// Int emits "-name N".
func (l *List) Int(name string, v *int) {
	if v != nil {
		l.args = append(l.args, "-"+name, strconv.Itoa(*v))
	}
}

// Dir emits "-name /abs/path".
func (l *List) Dir(name string, v *string) {
	if v != nil {
		l.args = append(l.args, "-"+name, absPath(*v))
	}
}

// Bool emits "-name" for true and "-noname" for false. For X-prefixed
// names the negative form keeps the prefix: "-XclassMetadata" becomes
// "-XnoclassMetadata".
func (l *List) Bool(name string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		l.args = append(l.args, "-"+name)
		return
	}
	if rest, ok := strings.CutPrefix(name, "X"); ok {
		l.args = append(l.args, "-Xno"+rest)
		return
	}
	l.args = append(l.args, "-no"+name)
}

// Flag emits "-name" only when v is true.
func (l *List) Flag(name string, v *bool) {
	if v != nil && *v {
		l.args = append(l.args, "-"+name)
	}
}

// Repeat emits "-name value" once per value.
func (l *List) Repeat(name string, values []string) {
	for _, v := range values {
		l.args = append(l.args, "-"+name, v)
	}
}

// Args returns the accumulated tokens.
func (l *List) Args() []string {
	if l.args == nil {
		return []string{}
	}
	return l.args
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
