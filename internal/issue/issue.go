// Package issue provides the configuration error type surfaced to users.
//
// Configuration errors are fatal for the build action that hit them. Each one
// names what was being attempted, the file or module involved, and how to fix
// it:
//
//	err := issue.New("resolve module").
//		WithResource("com.example.App").
//		WithSuggestion("Remove one of the duplicate descriptors").
//		Wrap(issue.ErrAmbiguousModule)
package issue

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrModulesRequired means a task ended up with an empty module list.
	ErrModulesRequired = errors.New("'modules' property is required")

	// ErrInconsistentModule means a module's descriptor path does not end with
	// its recorded relative path.
	ErrInconsistentModule = errors.New("descriptor path is inconsistent with its relative path")

	// ErrAmbiguousModule means one module name matched descriptors in more
	// than one source root.
	ErrAmbiguousModule = errors.New("module name is ambiguous")

	// ErrInvalidConfig means the configuration file failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error is a configuration error with user-facing context.
type Error struct {
	// Operation is a verb phrase such as "load configuration".
	Operation string

	// Resource is the file, directory or module involved (optional).
	Resource string

	// Suggestions are hints on how to fix the problem (optional).
	Suggestions []string

	// Cause is the underlying error.
	Cause error
}

// New starts an Error for the given operation.
func New(operation string) *Error {
	return &Error{Operation: operation}
}

// WithResource sets the resource involved.
func (e *Error) WithResource(res string) *Error {
	e.Resource = res
	return e
}

// WithSuggestion appends a fix-it hint.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestions = append(e.Suggestions, s)
	return e
}

// Wrap sets the cause and returns e.
func (e *Error) Wrap(err error) *Error {
	e.Cause = err
	return e
}

// Wrapf sets the cause to fmt.Errorf(format, args...) and returns e.
func (e *Error) Wrapf(format string, args ...any) *Error {
	e.Cause = fmt.Errorf(format, args...)
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("failed to ")
	b.WriteString(e.Operation)
	if e.Resource != "" {
		b.WriteString(": ")
		b.WriteString(e.Resource)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Format renders the error with its suggestions, one per line.
func (e *Error) Format() string {
	if len(e.Suggestions) == 0 {
		return e.Error()
	}
	var b strings.Builder
	b.WriteString(e.Error())
	b.WriteString("\n")
	for _, s := range e.Suggestions {
		b.WriteString("\n  • ")
		b.WriteString(s)
	}
	return b.String()
}

// Describe formats err with suggestions when it is (or wraps) an *Error.
func Describe(err error) string {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Format()
	}
	return err.Error()
}
