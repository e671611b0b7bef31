package model

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/StinkyLord/gwt-launcher/internal/issue"
)

func TestModule_Name(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src", "main", "java")
	desc := filepath.Join(root, "com", "example", "My.gwt.xml")

	m, err := ModuleUnder(root, desc)
	if err != nil {
		t.Fatalf("ModuleUnder: %v", err)
	}
	if m.Name() != "com.example.My" {
		t.Errorf("Name() = %q, want %q", m.Name(), "com.example.My")
	}
	if m.RelativePath != filepath.Join("com", "example", "My.gwt.xml") {
		t.Errorf("RelativePath = %q", m.RelativePath)
	}
	got, err := m.Root()
	if err != nil || got != root {
		t.Errorf("Root() = %q, %v; want %q", got, err, root)
	}
}

func TestModule_TopLevelName(t *testing.T) {
	if got := NameFromPath("App.gwt.xml"); got != "App" {
		t.Errorf("NameFromPath(App.gwt.xml) = %q", got)
	}
	m := &Module{RelativePath: "App.gwt.xml"}
	if m.Name() != "App" {
		t.Errorf("Name() = %q, want %q", m.Name(), "App")
	}
}

func TestNewModule_Inconsistent(t *testing.T) {
	root := t.TempDir()
	desc := filepath.Join(root, "com", "example", "My.gwt.xml")

	cases := []struct {
		name     string
		rel      string
		srcRoot  string
		wantFail bool
	}{
		{"consistent", filepath.Join("com", "example", "My.gwt.xml"), root, false},
		{"consistent without root", filepath.Join("example", "My.gwt.xml"), "", false},
		{"wrong suffix", filepath.Join("org", "example", "My.gwt.xml"), "", true},
		{"partial segment", filepath.Join("ample", "My.gwt.xml"), "", true},
		{"root mismatch", filepath.Join("example", "My.gwt.xml"), root, true},
		{"absolute relative", desc, "", true},
	}
	for _, tc := range cases {
		_, err := NewModule(desc, tc.rel, tc.srcRoot)
		if tc.wantFail {
			if !errors.Is(err, issue.ErrInconsistentModule) {
				t.Errorf("%s: error = %v, want ErrInconsistentModule", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestModule_RootAfterMutation(t *testing.T) {
	root := t.TempDir()
	m, err := ModuleUnder(root, filepath.Join(root, "a", "B.gwt.xml"))
	if err != nil {
		t.Fatalf("ModuleUnder: %v", err)
	}
	m.RelativePath = filepath.Join("x", "B.gwt.xml")
	if _, err := m.Root(); !errors.Is(err, issue.ErrInconsistentModule) {
		t.Errorf("Root() error = %v, want ErrInconsistentModule", err)
	}
}

func TestIsDescriptor(t *testing.T) {
	cases := map[string]bool{
		"App.gwt.xml":    true,
		"a.b.gwt.xml":    true,
		".gwt.xml":       false,
		"App.xml":        false,
		"App.gwt.xml.bk": false,
		"gwt.xml":        false,
	}
	for name, want := range cases {
		if got := IsDescriptor(name); got != want {
			t.Errorf("IsDescriptor(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestSourcePathSet_OrderAndDedup(t *testing.T) {
	dir := filepath.Join(string(filepath.Separator), "r", "com", "example")
	desc := filepath.Join(dir, "App.gwt.xml")
	s := NewSourcePathSet(desc)

	if !s.Add(filepath.Join(dir, "public")) {
		t.Error("first Add(public) returned false")
	}
	s.Add(filepath.Join(dir, "client"))
	if s.Add(filepath.Join(dir, "client", "..", "client")) {
		t.Error("duplicate Add(client) returned true")
	}

	want := []string{desc, filepath.Join(dir, "client"), filepath.Join(dir, "public")}
	got := s.Paths()
	if len(got) != len(want) {
		t.Fatalf("Paths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Paths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if dirs := s.Dirs(); len(dirs) != 2 || s.Contains(dirs[0]) == false {
		t.Errorf("Dirs() = %v", dirs)
	}
	if s.Anchor() != desc {
		t.Errorf("Anchor() = %q", s.Anchor())
	}
}

func TestBuildModuleTree(t *testing.T) {
	modules := []*ModuleInfo{
		{Name: "com.example.App", DescriptorPath: "/r/com/example/App.gwt.xml",
			Inherits: []string{"com.google.gwt.user.User", "com.example.Shared"}},
		{Name: "com.example.Shared", DescriptorPath: "/r/com/example/Shared.gwt.xml",
			Inherits: []string{"com.example.App", "com.google.gwt.user.User"}},
	}
	tree := BuildModuleTree([]string{"com.example.App", "org.Missing"}, modules)

	if len(tree.Roots) != 2 {
		t.Fatalf("Roots = %d, want 2", len(tree.Roots))
	}
	app := tree.Roots[0]
	if app.Name != "com.example.App" || app.Origin != OriginProject {
		t.Fatalf("root[0] = %+v", app)
	}
	missing := tree.Roots[1]
	if missing.Origin != OriginExternal || len(missing.Children) != 0 {
		t.Errorf("root[1] = %+v, want external leaf", missing)
	}

	if len(app.Children) != 2 {
		t.Fatalf("App children = %d, want 2", len(app.Children))
	}
	shared := app.Children[0]
	if shared.Name != "com.example.Shared" || shared.Origin != OriginProject {
		t.Errorf("App child[0] = %+v", shared)
	}
	if app.Children[1].Origin != OriginExternal {
		t.Errorf("App child[1] = %+v, want external", app.Children[1])
	}

	// Shared inherits App again: the cycle is cut with a leaf.
	var cyc *TreeNode
	for _, c := range shared.Children {
		if c.Name == "com.example.App" {
			cyc = c
		}
	}
	if cyc == nil {
		t.Fatal("cycle node missing")
	}
	if len(cyc.Children) != 0 {
		t.Errorf("cycle node expanded: %+v", cyc)
	}
}
