package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/StinkyLord/gwt-launcher/internal/config"
	"github.com/StinkyLord/gwt-launcher/internal/issue"
	"github.com/StinkyLord/gwt-launcher/internal/launcher"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// newProject lays out a one-module project and returns its directory.
func newProject(t *testing.T, toml string) string {
	t.Helper()
	for _, env := range []string{"GWT_VERSION", "GWT_JAVA", "GWT_JVM_ARGS", "GWT_LOG_LEVEL", "GWT_WAR"} {
		t.Setenv(env, "")
	}
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "main", "java", "com", "example", "App.gwt.xml"),
		`<module rename-to="app"><inherits name="com.google.gwt.user.User"/><entry-point class="com.example.client.App"/></module>`)
	writeFile(t, filepath.Join(dir, config.TOMLFileName), toml)
	return dir
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		flagProject, flagConfig, flagVerbose = ".", "", false
		flagDryRun, flagWatch, flagDevModeDryRun, flagSuperDevDryRun, flagTestDryRun = false, false, false, false, false
		flagJSON, flagDepsJSON, flagConfigFormat = false, false, "toml"
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCompile_DryRun(t *testing.T) {
	dir := newProject(t, `
modules = ["com.example.App"]

[compiler]
style = "PRETTY"
`)
	out, err := execute(t, "compile", "--dry-run", "-p", dir)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	for _, want := range []string{
		"-Xms256M", "-Xmx512M",
		"com.google.gwt.dev.Compiler",
		"-style PRETTY",
		"-war " + filepath.Join(dir, "build", "gwt"),
		"com.example.App",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "build", "gwt")); err == nil {
		t.Error("dry run created the war directory")
	}
}

func TestCompile_ArgumentsOverrideModules(t *testing.T) {
	dir := newProject(t, `modules = ["com.example.Other"]`)
	out, err := execute(t, "compile", "--dry-run", "-p", dir, "com.example.App")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(out, " com.example.App\n") || strings.Contains(out, "com.example.Other") {
		t.Errorf("unexpected modules in:\n%s", out)
	}
}

func TestCompile_ModulesRequired(t *testing.T) {
	dir := newProject(t, `gwt_version = "2.11.0"`)
	_, err := execute(t, "compile", "--dry-run", "-p", dir)
	if !errors.Is(err, issue.ErrModulesRequired) {
		t.Fatalf("compile error = %v, want ErrModulesRequired", err)
	}
	if !strings.Contains(err.Error(), "• Add at least one GWT module") {
		t.Errorf("error lacks suggestions: %v", err)
	}
}

func TestSuperDev_RequiresCodeServer(t *testing.T) {
	dir := newProject(t, `
gwt_version = "2.4.0"
modules = ["com.example.App"]
`)
	if _, err := execute(t, "superdev", "--dry-run", "-p", dir); err == nil {
		t.Error("superdev succeeded for GWT 2.4.0")
	}
}

func TestSuperDev_DryRun(t *testing.T) {
	dir := newProject(t, `
modules = ["com.example.App"]
cache_dir = "build/cache"
`)
	out, err := execute(t, "superdev", "--dry-run", "-p", dir)
	if err != nil {
		t.Fatalf("superdev: %v", err)
	}
	if !strings.Contains(out, "com.google.gwt.dev.codeserver.CodeServer") {
		t.Errorf("output misses the code server class:\n%s", out)
	}
	for _, unwanted := range []string{"gwt.persistentunitcachedir", "-war"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("output contains %q:\n%s", unwanted, out)
		}
	}
}

func TestTest_DryRun(t *testing.T) {
	dir := newProject(t, `
war = "build/war"

[dev_mode]
max_heap_size = "1G"

[gwt_test]
style = "PRETTY"
classes = ["com.example.AppTest"]
`)
	out, err := execute(t, "test", "--dry-run", "-p", dir)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	for _, want := range []string{"-Xmx1G", "org.junit.runner.JUnitCore com.example.AppTest", "-war " + filepath.Join(dir, "build", "war")} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestModulesList(t *testing.T) {
	dir := newProject(t, `modules = ["com.example.App"]`)
	out, err := execute(t, "modules", "list", "-p", dir)
	if err != nil {
		t.Fatalf("modules list: %v", err)
	}
	if !strings.Contains(out, "com.example.App") || !strings.Contains(out, "rename-to app") {
		t.Errorf("modules list =\n%s", out)
	}
}

func TestModulesTree(t *testing.T) {
	dir := newProject(t, `modules = ["com.example.App"]`)
	out, err := execute(t, "modules", "tree", "-p", dir)
	if err != nil {
		t.Fatalf("modules tree: %v", err)
	}
	if !strings.Contains(out, "└── ") || !strings.Contains(out, "com.google.gwt.user.User") {
		t.Errorf("modules tree =\n%s", out)
	}
}

func TestModulesList_JSON(t *testing.T) {
	dir := newProject(t, `modules = ["com.example.App"]`)
	out, err := execute(t, "modules", "list", "--json", "-p", dir)
	if err != nil {
		t.Fatalf("modules list: %v", err)
	}
	var entries []struct {
		Name     string `json:"name"`
		RenameTo string `json:"renameTo"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(entries) != 1 || entries[0].Name != "com.example.App" || entries[0].RenameTo != "app" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestModulesSources_CompilerExtraSourceDirs(t *testing.T) {
	dir := newProject(t, `
modules = ["com.example.App"]

[compiler]
extra_source_dirs = ["extra"]
`)
	lib := filepath.Join(dir, "extra", "com", "acme", "Lib.gwt.xml")
	writeFile(t, lib, `<module><source path="shared"/></module>`)

	out, err := execute(t, "modules", "sources", "--json", "-p", dir, "com.acme.Lib")
	if err != nil {
		t.Fatalf("modules sources: %v", err)
	}
	var report struct {
		Modules []struct {
			Name        string   `json:"name"`
			SourcePaths []string `json:"sourcePaths"`
		} `json:"modules"`
		External []string `json:"external"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(report.External) != 0 {
		t.Errorf("external = %v, want com.acme.Lib found under the compiler's extra_source_dirs", report.External)
	}
	if len(report.Modules) != 1 || report.Modules[0].Name != "com.acme.Lib" {
		t.Fatalf("modules = %+v", report.Modules)
	}
	want := filepath.Join(dir, "extra", "com", "acme", "shared")
	found := false
	for _, p := range report.Modules[0].SourcePaths {
		found = found || p == want
	}
	if !found {
		t.Errorf("source paths %v miss %s", report.Modules[0].SourcePaths, want)
	}
}

func TestDeps_JSON(t *testing.T) {
	dir := newProject(t, `gwt_version = "2.11.0"`)
	out, err := execute(t, "deps", "--json", "-p", dir)
	if err != nil {
		t.Fatalf("deps: %v", err)
	}
	var coords []struct {
		Artifact string `json:"artifact"`
		Version  string `json:"version"`
	}
	if err := json.Unmarshal([]byte(out), &coords); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(coords) == 0 || coords[0].Artifact != "gwt-user" || coords[0].Version != "2.11.0" {
		t.Errorf("coords = %+v", coords)
	}
}

func TestConfigShow_JSON(t *testing.T) {
	dir := newProject(t, `modules = ["com.example.App"]`)
	out, err := execute(t, "config", "show", "--format", "json", "-p", dir)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, `"gwt_version": "2.11.0"`) {
		t.Errorf("config show =\n%s", out)
	}
}

func TestRunE(t *testing.T) {
	exit := &launcher.ExitError{Code: 3}
	err := runE(func(*cobra.Command, []string) error { return exit })(&cobra.Command{}, nil)
	if err != exit {
		t.Errorf("exit error not passed through: %v", err)
	}

	cause := issue.New("resolve module").WithSuggestion("Fix it").Wrap(issue.ErrAmbiguousModule)
	err = runE(func(*cobra.Command, []string) error { return cause })(&cobra.Command{}, nil)
	if !errors.Is(err, issue.ErrAmbiguousModule) || !strings.Contains(err.Error(), "• Fix it") {
		t.Errorf("runE() = %v", err)
	}
}

func TestRequestedModules(t *testing.T) {
	cfg := &config.Config{}
	cfg.Modules = []string{"a.Top"}
	if got := requestedModules(cfg, nil); len(got) != 1 || got[0] != "a.Top" {
		t.Errorf("requestedModules() = %v", got)
	}
	cfg.Compiler.Modules = []string{"a.Compiler"}
	if got := requestedModules(cfg, nil); got[0] != "a.Compiler" {
		t.Errorf("requestedModules() = %v", got)
	}
	if got := requestedModules(cfg, []string{"a.Arg"}); got[0] != "a.Arg" {
		t.Errorf("requestedModules() = %v", got)
	}
}
