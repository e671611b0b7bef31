package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/StinkyLord/gwt-launcher/internal/model"
	"github.com/StinkyLord/gwt-launcher/internal/resolver"
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

func makeTree() *model.ModuleTree {
	return model.BuildModuleTree([]string{"com.example.App"}, []*model.ModuleInfo{
		{Name: "com.example.App", DescriptorPath: "/p/com/example/App.gwt.xml", Inherits: []string{"com.example.Shared", "com.google.gwt.json.JSON"}},
		{Name: "com.example.Shared", DescriptorPath: "/p/com/example/Shared.gwt.xml", Inherits: []string{"com.google.gwt.user.User"}},
	})
}

func TestModuleEntries(t *testing.T) {
	root := t.TempDir()
	app := filepath.Join(root, "com", "example", "App.gwt.xml")
	lib := filepath.Join(root, "com", "acme", "Lib.gwt.xml")
	writeFile(t, app, `<module rename-to="app"/>`)
	writeFile(t, lib, `<module`)

	var mods []*model.Module
	for _, p := range []string{app, lib} {
		m, err := model.ModuleUnder(root, p)
		if err != nil {
			t.Fatal(err)
		}
		mods = append(mods, m)
	}

	got := ModuleEntries(mods, nil)
	if len(got) != 2 || got[0].Name != "com.acme.Lib" || got[1].Name != "com.example.App" {
		t.Fatalf("ModuleEntries() = %+v", got)
	}
	if got[0].RenameTo != "" || got[1].RenameTo != "app" {
		t.Errorf("rename-to = %q, %q", got[0].RenameTo, got[1].RenameTo)
	}
	if got[1].SourceRoot != root {
		t.Errorf("SourceRoot = %q, want %q", got[1].SourceRoot, root)
	}
}

func TestWriteTree(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTree(&buf, makeTree()); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}

	var roots []struct {
		Name     string `json:"name"`
		Origin   string `json:"origin"`
		Children []struct {
			Name   string `json:"name"`
			Origin string `json:"origin"`
		} `json:"children"`
	}
	if err := json.Unmarshal(buf.Bytes(), &roots); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(roots) != 1 || roots[0].Name != "com.example.App" || len(roots[0].Children) != 2 {
		t.Fatalf("roots = %+v", roots)
	}
	if roots[0].Children[1].Origin != model.OriginExternal {
		t.Errorf("children = %+v", roots[0].Children)
	}
}

func TestWriteTree_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTree(&buf, nil); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("got %q, want []", buf.String())
	}
}

func TestWriteSources(t *testing.T) {
	set := model.NewSourcePathSet("/p/com/example/App.gwt.xml")
	set.Add("/p/com/example/client")
	report := NewSourcesReport(&resolver.Resolution{
		Modules: []*resolver.ResolvedModule{{Name: "com.example.App", SourcePaths: set}},
	}, nil)

	var buf bytes.Buffer
	if err := WriteSources(&buf, report); err != nil {
		t.Fatalf("WriteSources: %v", err)
	}
	var got struct {
		Modules []struct {
			Name        string   `json:"name"`
			SourcePaths []string `json:"sourcePaths"`
		} `json:"modules"`
		External []string `json:"external"`
		Inputs   []string `json:"inputs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got.Modules) != 1 || strings.Join(got.Modules[0].SourcePaths, "|") != "/p/com/example/App.gwt.xml|/p/com/example/client" {
		t.Errorf("modules = %+v", got.Modules)
	}
	if got.External == nil || got.Inputs == nil {
		t.Error("empty lists encoded as null")
	}
}

func TestWriteModules_NilIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteModules(&buf, nil); err != nil {
		t.Fatalf("WriteModules: %v", err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("got %q, want []", buf.String())
	}
}

func TestRenderTree(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTree(&buf, makeTree().Roots, Styler{}); err != nil {
		t.Fatal(err)
	}
	want := "com.example.App\n" +
		"├── com.example.Shared\n" +
		"│   └── com.google.gwt.user.User (external)\n" +
		"└── com.google.gwt.json.JSON (external)\n"
	if buf.String() != want {
		t.Errorf("RenderTree() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestRenderModules(t *testing.T) {
	var buf bytes.Buffer
	entries := []ModuleEntry{
		{Name: "a.B", Descriptor: "/p/a/B.gwt.xml"},
		{Name: "a.LongName", Descriptor: "/p/a/LongName.gwt.xml", RenameTo: "long"},
	}
	if err := RenderModules(&buf, entries, Styler{}); err != nil {
		t.Fatal(err)
	}
	want := "a.B         /p/a/B.gwt.xml\n" +
		"a.LongName  /p/a/LongName.gwt.xml (rename-to long)\n"
	if buf.String() != want {
		t.Errorf("RenderModules() =\n%q\nwant\n%q", buf.String(), want)
	}
}
