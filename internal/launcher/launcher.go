// Package launcher runs the JVM for a build action.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/shell"
)

// ExitError reports a non-zero exit of the launched process.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Command is one java invocation:
//
//	java [jvm options] -cp <classpath> <main> <args...>
type Command struct {
	Java      string   // java binary, looked up on PATH when not absolute
	JVMArgs   []string // options placed before -cp
	Classpath []string
	MainClass string
	Args      []string

	// MakeDirs are created before the process starts.
	MakeDirs []string

	// Dir is the working directory of the process. Empty means the current one.
	Dir string
}

// Argv returns the full argument vector, program first.
func (c *Command) Argv() []string {
	java := c.Java
	if java == "" {
		java = "java"
	}
	argv := append([]string{java}, c.JVMArgs...)
	if len(c.Classpath) > 0 {
		argv = append(argv, "-cp", strings.Join(c.Classpath, string(os.PathListSeparator)))
	}
	argv = append(argv, c.MainClass)
	return append(argv, c.Args...)
}

// Line renders the command as a single shell-quoted line.
func (c *Command) Line() string {
	argv := c.Argv()
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = quote(a)
	}
	return strings.Join(quoted, " ")
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`!*?[]{}()<>|&;#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// SplitJVMArgs splits a JVM options string the way a POSIX shell would,
// expanding $VAR references from the environment.
func SplitJVMArgs(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields, err := shell.Fields(s, os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("invalid JVM arguments %q: %w", s, err)
	}
	return fields, nil
}

// Launcher starts commands and streams their output.
type Launcher struct {
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Launcher writing child output to the process's stdout and
// stderr.
func New(logger *log.Logger) *Launcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Launcher{Logger: logger, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run starts c and waits for it. A non-zero exit is returned as *ExitError.
// Cancelling ctx kills the process.
func (l *Launcher) Run(ctx context.Context, c *Command) error {
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	argv := c.Argv()
	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("java not found: %w", err)
	}

	for _, dir := range c.MakeDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create %s: %w", dir, err)
		}
	}

	for _, entry := range c.Classpath {
		logger.Debug("classpath entry", "path", entry)
	}
	logger.Info("classpath", "value", strings.Join(c.Classpath, string(os.PathListSeparator)))
	logger.Info("jvm args", "value", strings.Join(c.JVMArgs, " "))
	logger.Info("main", "class", c.MainClass)
	logger.Info("args", "value", strings.Join(c.Args, " "))

	cmd := exec.CommandContext(ctx, bin, argv[1:]...)
	cmd.Dir = c.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = writerOr(l.Stdout, os.Stdout)
	cmd.Stderr = writerOr(l.Stderr, os.Stderr)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("cannot run %s: %w", filepath.Base(bin), err)
	}
	return nil
}

func writerOr(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
