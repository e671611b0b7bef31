package config

import (
	"github.com/StinkyLord/gwt-launcher/internal/issue"
)

// Task names used in errors and logs.
const (
	TaskCompile  = "compile"
	TaskDevMode  = "devmode"
	TaskSuperDev = "superdev"
	TaskTest     = "test"
)

// Compile returns the effective compiler settings: every shared option falls
// back to the top level, heap sizes to 256M/512M.
func (c *Config) Compile() (*CompilerOptions, error) {
	o := c.Compiler
	o.Options = c.Compiler.Options.merge(c.Options)
	o.heap(c.Compiler.Options, c.Options)
	if err := requireModules(TaskCompile, o.Modules); err != nil {
		return nil, err
	}
	return &o, nil
}

// DevMode returns the effective DevMode settings.
func (c *Config) DevMode() (*DevModeOptions, error) {
	o := c.DevMode
	o.Options = c.DevMode.Options.merge(c.Options)
	o.heap(c.DevMode.Options, c.Options)
	if err := requireModules(TaskDevMode, o.Modules); err != nil {
		return nil, err
	}
	return &o, nil
}

// SuperDev returns the effective code server settings.
func (c *Config) SuperDev() (*SuperDevOptions, error) {
	o := c.SuperDev
	o.Options = c.SuperDev.Options.merge(c.Options)
	o.heap(c.SuperDev.Options, c.Options)
	if err := requireModules(TaskSuperDev, o.Modules); err != nil {
		return nil, err
	}
	return &o, nil
}

// Test returns the effective GWT test settings. Only war, deploy, extra,
// cache_dir and extra_source_dirs fall back to the top level; the heap sizes
// come from the dev_mode section. Tests do not need modules.
func (c *Config) Test() *GwtTestOptions {
	o := c.GwtTest
	o.War = Pick(c.GwtTest.War, c.War)
	o.Deploy = Pick(c.GwtTest.Deploy, c.Deploy)
	o.Extra = Pick(c.GwtTest.Extra, c.Extra)
	o.CacheDir = Pick(c.GwtTest.CacheDir, c.CacheDir)
	o.ExtraSourceDirs = PickList(c.GwtTest.ExtraSourceDirs, c.ExtraSourceDirs)
	o.heap(c.DevMode.Options, c.Options)
	if o.Runner == "" {
		o.Runner = DefaultTestRunner
	}
	return &o
}

func requireModules(task string, modules []string) error {
	if len(modules) > 0 {
		return nil
	}
	return issue.New("configure " + task).
		WithSuggestion("Add at least one GWT module to 'modules' in " + CUEFileName + " or " + TOMLFileName).
		WithSuggestion("Or pass module names on the command line").
		Wrap(issue.ErrModulesRequired)
}
