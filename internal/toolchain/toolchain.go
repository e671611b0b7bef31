package toolchain

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/StinkyLord/gwt-launcher/internal/issue"
	"github.com/StinkyLord/gwt-launcher/internal/version"
)

// DefaultVersion is used when no GWT version is configured or the
// configured one cannot be parsed.
const DefaultVersion = "2.11.0"

// Coordinate is a Maven coordinate of one SDK artifact.
type Coordinate struct {
	Group    string `json:"group"`
	Artifact string `json:"artifact"`
	Version  string `json:"version"`
}

func (c Coordinate) String() string {
	return c.Group + ":" + c.Artifact + ":" + c.Version
}

// JarName returns the conventional jar file name, e.g. gwt-dev-2.11.0.jar.
func (c Coordinate) JarName() string {
	return c.Artifact + "-" + c.Version + ".jar"
}

// Toolchain is a GWT SDK of a given version.
type Toolchain struct {
	Version *version.Tag
	Jakarta bool
}

// New parses raw leniently: a blank or unparsable version logs a warning
// (blank only at debug level) and falls back to DefaultVersion.
func New(raw string, jakarta bool, logger *log.Logger) *Toolchain {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tag, err := version.Parse(raw)
	switch {
	case err != nil:
		logger.Warn("cannot parse GWT version, using default", "version", raw, "default", DefaultVersion, "err", err)
		tag = version.MustParse(DefaultVersion)
	case tag == nil:
		logger.Debug("no GWT version configured, using default", "default", DefaultVersion)
		tag = version.MustParse(DefaultVersion)
	}
	return &Toolchain{Version: tag, Jakarta: jakarta}
}

// Group returns the Maven group of this version's artifacts.
func (t *Toolchain) Group() string {
	if t.Version.IsAtLeast(2, 10) {
		return GroupGwtProject
	}
	return GroupLegacy
}

// Artifacts returns the artifacts this version ships, with the servlet jar
// matching the Jakarta setting.
func (t *Toolchain) Artifacts() []Artifact {
	jakarta := t.Jakarta && t.Version.IsAtLeast(2, 10)

	var out []Artifact
	for _, a := range KnownArtifacts {
		if !t.Version.IsAtLeast(a.SinceMajor, a.SinceMinor) {
			continue
		}
		switch a.Servlet {
		case ServletJavax:
			if jakarta {
				continue
			}
		case ServletJakarta:
			if !jakarta {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// Coordinates returns the Maven coordinates of Artifacts.
func (t *Toolchain) Coordinates() []Coordinate {
	arts := t.Artifacts()
	out := make([]Coordinate, 0, len(arts))
	for _, a := range arts {
		out = append(out, Coordinate{Group: t.Group(), Artifact: a.Name, Version: t.Version.String()})
	}
	return out
}

// SupportsSuperDev reports whether the code server is available.
func (t *Toolchain) SupportsSuperDev() bool {
	return t.Version.IsAtLeast(2, 5)
}

// RequireSuperDev fails for versions without a code server.
func (t *Toolchain) RequireSuperDev() error {
	if t.SupportsSuperDev() {
		return nil
	}
	return issue.New("start the code server").
		WithResource("GWT " + t.Version.String()).
		WithSuggestion("Set gwt_version to 2.5.0 or later").
		Wrap(fmt.Errorf("super dev mode requires GWT 2.5 or later"))
}

// MissingRuntime returns the runtime artifacts not found among the classpath
// entries. Entries are matched by jar name; versions are not compared.
func (t *Toolchain) MissingRuntime(classpath []string) []Coordinate {
	present := map[string]bool{}
	for _, entry := range classpath {
		if a := MatchArtifact(entry); a != nil {
			present[a.Name] = true
		}
	}

	var missing []Coordinate
	arts := t.Artifacts()
	for _, c := range t.Coordinates() {
		for _, a := range arts {
			if a.Name == c.Artifact && a.Runtime && !present[a.Name] {
				missing = append(missing, c)
			}
		}
	}
	return missing
}
