package args

import (
	"strconv"
	"strings"

	"github.com/StinkyLord/gwt-launcher/internal/config"
)

// System properties understood by GWT.
const (
	CacheDirProperty = "gwt.persistentunitcachedir"
	TestArgsProperty = "gwt.args"
)

// JVM returns the heap options followed by the persistent unit cache
// property when withCache is set and a cache dir is configured, then extra.
func JVM(o *config.Options, withCache bool, extra ...string) []string {
	var out []string
	if o.MinHeapSize != nil {
		out = append(out, "-Xms"+*o.MinHeapSize)
	}
	if o.MaxHeapSize != nil {
		out = append(out, "-Xmx"+*o.MaxHeapSize)
	}
	if withCache && o.CacheDir != nil {
		out = append(out, SystemProperty(CacheDirProperty, absPath(*o.CacheDir)))
	}
	return append(out, extra...)
}

// TestJVM returns the JVM options of a GWT test run: heap sizes, gwt.args
// carrying TestParameters and the unit cache dir, then extra.
func TestJVM(o *config.GwtTestOptions, extra ...string) []string {
	out := JVM(&o.Options, true)
	if params := TestParameters(o); params != "" {
		out = append(out, SystemProperty(TestArgsProperty, params))
	}
	return append(out, extra...)
}

// SystemProperty formats -Dname=value.
func SystemProperty(name, value string) string {
	return "-D" + name + "=" + value
}

// TestParameters builds the space-separated value of the gwt.args system
// property. Enable-style options are only emitted when true.
func TestParameters(o *config.GwtTestOptions) string {
	var p params
	p.dir("-war", o.War)
	p.dir("-deploy", o.Deploy)
	p.dir("-extra", o.Extra)
	p.dir("-workDir", o.WorkDir)
	p.dir("-gen", o.Gen)
	p.str("-logLevel", o.LogLevel)
	p.str("-sourceLevel", o.SourceLevel)
	p.num("-port", o.Port)
	p.str("-whitelist", o.Whitelist)
	p.str("-blacklist", o.Blacklist)
	p.dir("-logdir", o.Logdir)
	p.num("-codeServerPort", o.CodeServerPort)
	p.str("-style", o.Style)
	p.enabled("-ea", o.Ea)
	p.enabled("-XdisableClassMetadata", o.DisableClassMetadata)
	p.enabled("-XdisableCastChecking", o.DisableCastChecking)
	p.enabled("-draftCompile", o.DraftCompile)
	p.num("-localWorkers", o.LocalWorkers)
	p.enabled("-prod", o.Prod)
	p.num("-testMethodTimeout", o.TestMethodTimeout)
	p.num("-testBeginTimeout", o.TestBeginTimeout)
	p.str("-runStyle", o.RunStyle)
	p.enabled("-notHeadless", o.NotHeadless)
	p.enabled("-standardsMode", o.StandardsMode)
	p.enabled("-quirksMode", o.QuirksMode)
	p.num("-Xtries", o.Tries)
	p.str("-userAgents", o.UserAgents)
	return strings.Join(p, " ")
}

// TestDirs lists the directories a GWT test run writes to. They must exist
// before the test JVM starts.
func TestDirs(o *config.GwtTestOptions) []string {
	var out []string
	for _, d := range []*string{o.War, o.Deploy, o.Extra, o.WorkDir, o.Gen, o.Logdir, o.CacheDir} {
		if d != nil {
			out = append(out, absPath(*d))
		}
	}
	return out
}

type params []string

func (p *params) str(name string, v *string) {
	if v != nil {
		*p = append(*p, name, *v)
	}
}

func (p *params) num(name string, v *int) {
	if v != nil {
		*p = append(*p, name, strconv.Itoa(*v))
	}
}

func (p *params) dir(name string, v *string) {
	if v != nil {
		*p = append(*p, name, absPath(*v))
	}
}

func (p *params) enabled(name string, v *bool) {
	if v != nil && *v {
		*p = append(*p, name)
	}
}
