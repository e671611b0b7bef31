// Package toolchain describes the GWT SDK: its main classes, the artifacts
// a project needs for a given GWT version, and how to recognise them on a
// classpath.
package toolchain

import (
	"path/filepath"
	"strings"
)

// Main classes launched by the tasks.
const (
	CompilerClass   = "com.google.gwt.dev.Compiler"
	DevModeClass    = "com.google.gwt.dev.DevMode"
	CodeServerClass = "com.google.gwt.dev.codeserver.CodeServer"
)

// Maven groups. Releases moved to org.gwtproject with 2.10.
const (
	GroupGwtProject = "org.gwtproject"
	GroupLegacy     = "com.google.gwt"
)

// Servlet API flavour an artifact is built against.
const (
	ServletAny     = ""
	ServletJavax   = "javax"
	ServletJakarta = "jakarta"
)

// Artifact describes one GWT SDK jar.
type Artifact struct {
	Name        string // Maven artifact id, also the jar name prefix
	SinceMajor  int    // First GWT version shipping the artifact
	SinceMinor  int
	Servlet     string // ServletAny, ServletJavax or ServletJakarta
	Runtime     bool   // Needed on the launcher classpath, not only for compilation
	Description string
}

// KnownArtifacts is the built-in artifact table. Order is the order
// coordinates are reported in.
var KnownArtifacts = []Artifact{
	{
		Name:        "gwt-user",
		Runtime:     true,
		Description: "GWT user library: widgets, RPC and the JRE emulation",
	},
	{
		Name:        "gwt-dev",
		Runtime:     true,
		Description: "GWT compiler and DevMode",
	},
	{
		Name:        "gwt-servlet",
		Servlet:     ServletJavax,
		Description: "Server-side RPC support (javax.servlet)",
	},
	{
		Name:        "gwt-servlet-jakarta",
		SinceMajor:  2,
		SinceMinor:  10,
		Servlet:     ServletJakarta,
		Description: "Server-side RPC support (jakarta.servlet)",
	},
	{
		Name:        "gwt-codeserver",
		SinceMajor:  2,
		SinceMinor:  5,
		Runtime:     true,
		Description: "Super Dev Mode code server",
	},
	{
		Name:        "gwt-elemental",
		SinceMajor:  2,
		SinceMinor:  5,
		Description: "Elemental DOM bindings",
	},
}

// sdkModulePrefixes are module name prefixes that live in the SDK jars
// rather than in project sources.
var sdkModulePrefixes = []string{
	"com.google.gwt.",
	"org.gwtproject.",
	"elemental.",
	"elemental2.",
	"jsinterop.",
}

// IsSDKModule reports whether a module name belongs to the GWT SDK or one
// of its companion libraries.
func IsSDKModule(name string) bool {
	name = strings.TrimSpace(name)
	for _, p := range sdkModulePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// MatchArtifact returns the artifact a classpath entry is a jar of, e.g.
// ".../gwt-dev-2.11.0.jar" -> gwt-dev. Returns nil if no match is found.
func MatchArtifact(path string) *Artifact {
	base := strings.ToLower(filepath.Base(path))
	if !strings.HasSuffix(base, ".jar") {
		return nil
	}
	base = strings.TrimSuffix(base, ".jar")

	for i := range KnownArtifacts {
		a := &KnownArtifacts[i]
		if base != a.Name && !strings.HasPrefix(base, a.Name+"-") {
			continue
		}
		// "gwt-servlet-jakarta-2.11.0" also starts with "gwt-servlet-".
		rest := strings.TrimPrefix(strings.TrimPrefix(base, a.Name), "-")
		if rest != "" && (rest[0] < '0' || rest[0] > '9') && !strings.HasPrefix(rest, "head") {
			continue
		}
		return a
	}
	return nil
}
