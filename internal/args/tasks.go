package args

import (
	"github.com/StinkyLord/gwt-launcher/internal/config"
)

// Compile builds the arguments of com.google.gwt.dev.Compiler.
func Compile(o *config.CompilerOptions) []string {
	var l List
	l.Value("logLevel", o.LogLevel)
	l.Dir("workDir", o.WorkDir)
	l.Bool("XclosureFormattedOutput", o.ClosureFormattedOutput)
	l.Bool("compileReport", o.CompileReport)
	l.Flag("strict", o.Strict)
	l.Bool("XclassMetadata", o.ClassMetadata)
	l.Bool("draftCompile", o.DraftCompile)
	l.Bool("checkAssertions", o.CheckAssertions)
	l.Int("XfragmentCount", o.FragmentCount)
	l.Dir("gen", o.Gen)
	l.Bool("generateJsInteropExports", o.GenerateJsInteropExports)
	l.Repeat("includeJsInteropExports", o.IncludeJsInteropExports)
	l.Repeat("excludeJsInteropExports", o.ExcludeJsInteropExports)
	l.Value("XmethodNameDisplayMode", o.MethodNameDisplayMode)
	l.Value("Xnamespace", o.Namespace)
	l.Int("optimize", o.Optimize)
	l.Bool("saveSource", o.SaveSource)
	l.Repeat("setProperty", o.SetProperty)
	l.Value("style", o.Style)
	l.Bool("failOnError", o.FailOnError)
	l.Bool("validateOnly", o.ValidateOnly)
	l.Value("sourceLevel", o.SourceLevel)
	l.Int("localWorkers", o.LocalWorkers)
	l.Bool("incremental", o.Incremental)
	l.Dir("war", o.War)
	l.Dir("deploy", o.Deploy)
	l.Dir("extra", o.Extra)
	l.Dir("saveSourceOutput", o.SaveSourceOutput)
	l.Add(o.Modules...)
	return l.Args()
}

// DevMode builds the arguments of com.google.gwt.dev.DevMode.
func DevMode(o *config.DevModeOptions) []string {
	var l List
	l.Bool("startServer", o.StartServer)
	l.Int("port", o.Port)
	l.Dir("logdir", o.Logdir)
	l.Value("logLevel", o.LogLevel)
	l.Dir("gen", o.Gen)
	l.Value("bindAddress", o.BindAddress)
	l.Int("codeServerPort", o.CodeServerPort)
	l.Bool("superDevMode", o.SuperDevMode)
	l.Value("server", o.Server)
	l.Value("startupUrl", o.StartupURL)
	l.Dir("war", o.War)
	l.Dir("deploy", o.Deploy)
	l.Dir("extra", o.Extra)
	l.Value("modulePathPrefix", o.ModulePathPrefix)
	l.Dir("workDir", o.WorkDir)
	l.Value("XmethodNameDisplayMode", o.MethodNameDisplayMode)
	l.Value("sourceLevel", o.SourceLevel)
	l.Bool("generateJsInteropExports", o.GenerateJsInteropExports)
	l.Repeat("includeJsInteropExports", o.IncludeJsInteropExports)
	l.Repeat("excludeJsInteropExports", o.ExcludeJsInteropExports)
	l.Bool("incremental", o.Incremental)
	l.Value("style", o.Style)
	l.Bool("failOnError", o.FailOnError)
	l.Repeat("setProperty", o.SetProperty)
	l.Add(o.Modules...)
	return l.Args()
}

// SuperDev builds the arguments of the code server. The code server never
// receives -gen, -war, -deploy or -extra.
func SuperDev(o *config.SuperDevOptions) []string {
	var l List
	l.Bool("allowMissingSrc", o.AllowMissingSrc)
	l.Bool("compileTest", o.CompileTest)
	l.Int("compileTestRecompiles", o.CompileTestRecompiles)
	l.Bool("precompile", o.Precompile)
	l.Int("port", o.Port)
	l.Dir("src", o.Src)
	l.Dir("launcherDir", o.LauncherDir)
	l.Value("bindAddress", o.BindAddress)
	l.Bool("XclosureFormattedOutput", o.ClosureFormattedOutput)

	l.Value("logLevel", o.LogLevel)
	l.Dir("workDir", o.WorkDir)
	l.Value("sourceLevel", o.SourceLevel)
	l.Value("XmethodNameDisplayMode", o.MethodNameDisplayMode)
	l.Bool("generateJsInteropExports", o.GenerateJsInteropExports)
	l.Repeat("includeJsInteropExports", o.IncludeJsInteropExports)
	l.Repeat("excludeJsInteropExports", o.ExcludeJsInteropExports)
	l.Value("style", o.Style)
	l.Bool("failOnError", o.FailOnError)
	l.Repeat("setProperty", o.SetProperty)
	l.Bool("incremental", o.Incremental)
	l.Add(o.Modules...)
	return l.Args()
}
