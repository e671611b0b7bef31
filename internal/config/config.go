package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/StinkyLord/gwt-launcher/internal/issue"
)

// Config file names looked up in the project directory, in order.
const (
	CUEFileName  = "gwt.cue"
	TOMLFileName = "gwt.toml"
)

// Hard defaults.
const (
	DefaultGwtVersion  = "2.11.0"
	DefaultJava        = "java"
	DefaultWar         = "build/gwt"
	DefaultMinHeapSize = "256M"
	DefaultMaxHeapSize = "512M"
	DefaultTestRunner  = "org.junit.runner.JUnitCore"
)

// envBindings maps config keys to the environment variables overriding them.
var envBindings = map[string]string{
	"gwt_version": "GWT_VERSION",
	"java":        "GWT_JAVA",
	"jvm_args":    "GWT_JVM_ARGS",
	"log_level":   "GWT_LOG_LEVEL",
	"war":         "GWT_WAR",
}

//go:embed schema.cue
var configSchema string

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("gwt_version", DefaultGwtVersion)
	v.SetDefault("java", DefaultJava)
	v.SetDefault("war", DefaultWar)
	v.SetDefault("jakarta", true)
	v.SetDefault("source_dirs", []string{"src/main/java"})
	v.SetDefault("test_source_dirs", []string{"src/test/java"})
	v.SetDefault("output_dirs", []string{"build/classes/java/main", "build/resources/main"})
	v.SetDefault("test_output_dirs", []string{"build/classes/java/test", "build/resources/test"})
	v.SetDefault("gwt_test.runner", DefaultTestRunner)

	for key, env := range envBindings {
		// BindEnv only fails when called without a key.
		_ = v.BindEnv(key, env)
	}
	return v
}

func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	dir := opts.ProjectDir
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve project directory %q: %w", opts.ProjectDir, err)
	}

	v := newViper()

	path := opts.ConfigFilePath
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if !fileExists(path) {
			return nil, issue.New("load configuration").
				WithResource(path).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Run 'gwt-launcher config show' to see the default configuration").
				Wrapf("config file not found: %s", path)
		}
	} else {
		for _, name := range []string{CUEFileName, TOMLFileName} {
			if p := filepath.Join(dir, name); fileExists(p) {
				path = p
				break
			}
		}
	}

	if path != "" {
		if err := loadFileIntoViper(v, path); err != nil {
			return nil, issue.New("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file is valid " + strings.TrimPrefix(filepath.Ext(path), ".")).
				WithSuggestion("Verify the configuration values match the expected schema").
				Wrap(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Dir = dir
	cfg.Source = path
	cfg.resolvePaths()

	return &cfg, nil
}

// loadFileIntoViper validates a .cue or .toml file against the schema and
// merges it into v.
func loadFileIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cctx := cuecontext.New()
	var userValue cue.Value
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid TOML: %w", err)
		}
		userValue = cctx.Encode(raw)
	case ".cue":
		userValue = cctx.CompileBytes(data, cue.Filename(path))
	default:
		return fmt.Errorf("unsupported config file type %q (want .cue or .toml)", ext)
	}
	if userValue.Err() != nil {
		return formatCUEError(userValue.Err())
	}

	unified, err := validate(cctx, userValue)
	if err != nil {
		return err
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return formatCUEError(err)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// validate unifies a user value with the #Config definition.
func validate(cctx *cue.Context, userValue cue.Value) (cue.Value, error) {
	schemaValue := cctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return cue.Value{}, formatCUEError(err)
	}
	return unified, nil
}

func formatCUEError(err error) error {
	return fmt.Errorf("%w:\n%s", issue.ErrInvalidConfig, strings.TrimSpace(cueerrors.Details(err, nil)))
}

// resolvePaths makes every configured path absolute against c.Dir.
func (c *Config) resolvePaths() {
	for _, list := range []*[]string{&c.SourceDirs, &c.TestSourceDirs, &c.OutputDirs, &c.TestOutputDirs, &c.Classpath} {
		*list = c.absAll(*list)
	}

	c.Options.resolvePaths(c)
	c.Compiler.Options.resolvePaths(c)
	c.Compiler.SaveSourceOutput = c.absPtr(c.Compiler.SaveSourceOutput)
	c.DevMode.Options.resolvePaths(c)
	c.DevMode.Logdir = c.absPtr(c.DevMode.Logdir)
	c.SuperDev.Options.resolvePaths(c)
	c.SuperDev.Src = c.absPtr(c.SuperDev.Src)
	c.SuperDev.LauncherDir = c.absPtr(c.SuperDev.LauncherDir)
	c.GwtTest.Options.resolvePaths(c)
	c.GwtTest.Logdir = c.absPtr(c.GwtTest.Logdir)
}

func (o *Options) resolvePaths(c *Config) {
	for _, p := range []**string{&o.WorkDir, &o.Gen, &o.War, &o.Deploy, &o.Extra, &o.CacheDir} {
		*p = c.absPtr(*p)
	}
	o.ExtraSourceDirs = c.absAll(o.ExtraSourceDirs)
}

// Abs resolves path against the project directory.
func (c *Config) Abs(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}

func (c *Config) absPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := c.Abs(*p)
	return &s
}

func (c *Config) absAll(paths []string) []string {
	if paths == nil {
		return nil
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, c.Abs(p))
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
