package config

// Options are the settings shared by the top level of the configuration and
// by every task section. A nil pointer or nil slice means "not set"; the task
// then falls back to the top-level value, and finally to a hard default.
type Options struct {
	MinHeapSize *string `mapstructure:"min_heap_size" toml:"min_heap_size,omitempty" json:"min_heap_size,omitempty"`
	MaxHeapSize *string `mapstructure:"max_heap_size" toml:"max_heap_size,omitempty" json:"max_heap_size,omitempty"`
	LogLevel    *string `mapstructure:"log_level" toml:"log_level,omitempty" json:"log_level,omitempty"`

	WorkDir  *string `mapstructure:"work_dir" toml:"work_dir,omitempty" json:"work_dir,omitempty"`
	Gen      *string `mapstructure:"gen" toml:"gen,omitempty" json:"gen,omitempty"`
	War      *string `mapstructure:"war" toml:"war,omitempty" json:"war,omitempty"`
	Deploy   *string `mapstructure:"deploy" toml:"deploy,omitempty" json:"deploy,omitempty"`
	Extra    *string `mapstructure:"extra" toml:"extra,omitempty" json:"extra,omitempty"`
	CacheDir *string `mapstructure:"cache_dir" toml:"cache_dir,omitempty" json:"cache_dir,omitempty"`

	GenerateJsInteropExports *bool    `mapstructure:"generate_js_interop_exports" toml:"generate_js_interop_exports,omitempty" json:"generate_js_interop_exports,omitempty"`
	IncludeJsInteropExports  []string `mapstructure:"include_js_interop_exports" toml:"include_js_interop_exports,omitempty" json:"include_js_interop_exports,omitempty"`
	ExcludeJsInteropExports  []string `mapstructure:"exclude_js_interop_exports" toml:"exclude_js_interop_exports,omitempty" json:"exclude_js_interop_exports,omitempty"`

	MethodNameDisplayMode *string  `mapstructure:"method_name_display_mode" toml:"method_name_display_mode,omitempty" json:"method_name_display_mode,omitempty"`
	SourceLevel           *string  `mapstructure:"source_level" toml:"source_level,omitempty" json:"source_level,omitempty"`
	Incremental           *bool    `mapstructure:"incremental" toml:"incremental,omitempty" json:"incremental,omitempty"`
	Style                 *string  `mapstructure:"style" toml:"style,omitempty" json:"style,omitempty"`
	FailOnError           *bool    `mapstructure:"fail_on_error" toml:"fail_on_error,omitempty" json:"fail_on_error,omitempty"`
	SetProperty           []string `mapstructure:"set_property" toml:"set_property,omitempty" json:"set_property,omitempty"`

	Modules         []string `mapstructure:"modules" toml:"modules,omitempty" json:"modules,omitempty"`
	ExtraSourceDirs []string `mapstructure:"extra_source_dirs" toml:"extra_source_dirs,omitempty" json:"extra_source_dirs,omitempty"`
}

// CompilerOptions configure com.google.gwt.dev.Compiler.
type CompilerOptions struct {
	Options `mapstructure:",squash"`

	ClosureFormattedOutput *bool   `mapstructure:"closure_formatted_output" toml:"closure_formatted_output,omitempty" json:"closure_formatted_output,omitempty"`
	CompileReport          *bool   `mapstructure:"compile_report" toml:"compile_report,omitempty" json:"compile_report,omitempty"`
	Strict                 *bool   `mapstructure:"strict" toml:"strict,omitempty" json:"strict,omitempty"`
	ClassMetadata          *bool   `mapstructure:"class_metadata" toml:"class_metadata,omitempty" json:"class_metadata,omitempty"`
	DraftCompile           *bool   `mapstructure:"draft_compile" toml:"draft_compile,omitempty" json:"draft_compile,omitempty"`
	CheckAssertions        *bool   `mapstructure:"check_assertions" toml:"check_assertions,omitempty" json:"check_assertions,omitempty"`
	FragmentCount          *int    `mapstructure:"fragment_count" toml:"fragment_count,omitempty" json:"fragment_count,omitempty"`
	Namespace              *string `mapstructure:"namespace" toml:"namespace,omitempty" json:"namespace,omitempty"`
	Optimize               *int    `mapstructure:"optimize" toml:"optimize,omitempty" json:"optimize,omitempty"`
	SaveSource             *bool   `mapstructure:"save_source" toml:"save_source,omitempty" json:"save_source,omitempty"`
	ValidateOnly           *bool   `mapstructure:"validate_only" toml:"validate_only,omitempty" json:"validate_only,omitempty"`
	LocalWorkers           *int    `mapstructure:"local_workers" toml:"local_workers,omitempty" json:"local_workers,omitempty"`
	SaveSourceOutput       *string `mapstructure:"save_source_output" toml:"save_source_output,omitempty" json:"save_source_output,omitempty"`
}

// DevModeOptions configure com.google.gwt.dev.DevMode.
type DevModeOptions struct {
	Options `mapstructure:",squash"`

	StartServer      *bool   `mapstructure:"start_server" toml:"start_server,omitempty" json:"start_server,omitempty"`
	Port             *int    `mapstructure:"port" toml:"port,omitempty" json:"port,omitempty"`
	Logdir           *string `mapstructure:"logdir" toml:"logdir,omitempty" json:"logdir,omitempty"`
	BindAddress      *string `mapstructure:"bind_address" toml:"bind_address,omitempty" json:"bind_address,omitempty"`
	CodeServerPort   *int    `mapstructure:"code_server_port" toml:"code_server_port,omitempty" json:"code_server_port,omitempty"`
	SuperDevMode     *bool   `mapstructure:"super_dev_mode" toml:"super_dev_mode,omitempty" json:"super_dev_mode,omitempty"`
	Server           *string `mapstructure:"server" toml:"server,omitempty" json:"server,omitempty"`
	StartupURL       *string `mapstructure:"startup_url" toml:"startup_url,omitempty" json:"startup_url,omitempty"`
	ModulePathPrefix *string `mapstructure:"module_path_prefix" toml:"module_path_prefix,omitempty" json:"module_path_prefix,omitempty"`
}

// SuperDevOptions configure com.google.gwt.dev.codeserver.CodeServer.
type SuperDevOptions struct {
	Options `mapstructure:",squash"`

	AllowMissingSrc        *bool   `mapstructure:"allow_missing_src" toml:"allow_missing_src,omitempty" json:"allow_missing_src,omitempty"`
	CompileTest            *bool   `mapstructure:"compile_test" toml:"compile_test,omitempty" json:"compile_test,omitempty"`
	CompileTestRecompiles  *int    `mapstructure:"compile_test_recompiles" toml:"compile_test_recompiles,omitempty" json:"compile_test_recompiles,omitempty"`
	Precompile             *bool   `mapstructure:"precompile" toml:"precompile,omitempty" json:"precompile,omitempty"`
	Port                   *int    `mapstructure:"port" toml:"port,omitempty" json:"port,omitempty"`
	Src                    *string `mapstructure:"src" toml:"src,omitempty" json:"src,omitempty"`
	LauncherDir            *string `mapstructure:"launcher_dir" toml:"launcher_dir,omitempty" json:"launcher_dir,omitempty"`
	BindAddress            *string `mapstructure:"bind_address" toml:"bind_address,omitempty" json:"bind_address,omitempty"`
	ClosureFormattedOutput *bool   `mapstructure:"closure_formatted_output" toml:"closure_formatted_output,omitempty" json:"closure_formatted_output,omitempty"`
}

// GwtTestOptions configure GWT unit tests. They are passed to the test JVM
// as the gwt.args system property, not as command-line flags.
type GwtTestOptions struct {
	Options `mapstructure:",squash"`

	Port                 *int    `mapstructure:"port" toml:"port,omitempty" json:"port,omitempty"`
	Logdir               *string `mapstructure:"logdir" toml:"logdir,omitempty" json:"logdir,omitempty"`
	Whitelist            *string `mapstructure:"whitelist" toml:"whitelist,omitempty" json:"whitelist,omitempty"`
	Blacklist            *string `mapstructure:"blacklist" toml:"blacklist,omitempty" json:"blacklist,omitempty"`
	CodeServerPort       *int    `mapstructure:"code_server_port" toml:"code_server_port,omitempty" json:"code_server_port,omitempty"`
	Ea                   *bool   `mapstructure:"ea" toml:"ea,omitempty" json:"ea,omitempty"`
	DisableClassMetadata *bool   `mapstructure:"disable_class_metadata" toml:"disable_class_metadata,omitempty" json:"disable_class_metadata,omitempty"`
	DisableCastChecking  *bool   `mapstructure:"disable_cast_checking" toml:"disable_cast_checking,omitempty" json:"disable_cast_checking,omitempty"`
	DraftCompile         *bool   `mapstructure:"draft_compile" toml:"draft_compile,omitempty" json:"draft_compile,omitempty"`
	LocalWorkers         *int    `mapstructure:"local_workers" toml:"local_workers,omitempty" json:"local_workers,omitempty"`
	Prod                 *bool   `mapstructure:"prod" toml:"prod,omitempty" json:"prod,omitempty"`
	TestMethodTimeout    *int    `mapstructure:"test_method_timeout" toml:"test_method_timeout,omitempty" json:"test_method_timeout,omitempty"`
	TestBeginTimeout     *int    `mapstructure:"test_begin_timeout" toml:"test_begin_timeout,omitempty" json:"test_begin_timeout,omitempty"`
	RunStyle             *string `mapstructure:"run_style" toml:"run_style,omitempty" json:"run_style,omitempty"`
	NotHeadless          *bool   `mapstructure:"not_headless" toml:"not_headless,omitempty" json:"not_headless,omitempty"`
	StandardsMode        *bool   `mapstructure:"standards_mode" toml:"standards_mode,omitempty" json:"standards_mode,omitempty"`
	QuirksMode           *bool   `mapstructure:"quirks_mode" toml:"quirks_mode,omitempty" json:"quirks_mode,omitempty"`
	Tries                *int    `mapstructure:"tries" toml:"tries,omitempty" json:"tries,omitempty"`
	UserAgents           *string `mapstructure:"user_agents" toml:"user_agents,omitempty" json:"user_agents,omitempty"`

	// Runner is the main class that runs the tests.
	Runner string `mapstructure:"runner" toml:"runner,omitempty" json:"runner,omitempty"`
	// Classes are the fully qualified test classes handed to Runner.
	Classes []string `mapstructure:"classes" toml:"classes,omitempty" json:"classes,omitempty"`
}

// Config is the whole project configuration (gwt.cue or gwt.toml).
type Config struct {
	Options `mapstructure:",squash"`

	GwtVersion string `mapstructure:"gwt_version" toml:"gwt_version" json:"gwt_version"`
	Jakarta    bool   `mapstructure:"jakarta" toml:"jakarta" json:"jakarta"`
	Java       string `mapstructure:"java" toml:"java" json:"java"`
	JVMArgs    string `mapstructure:"jvm_args" toml:"jvm_args,omitempty" json:"jvm_args,omitempty"`

	SourceDirs     []string `mapstructure:"source_dirs" toml:"source_dirs" json:"source_dirs"`
	TestSourceDirs []string `mapstructure:"test_source_dirs" toml:"test_source_dirs" json:"test_source_dirs"`
	OutputDirs     []string `mapstructure:"output_dirs" toml:"output_dirs" json:"output_dirs"`
	TestOutputDirs []string `mapstructure:"test_output_dirs" toml:"test_output_dirs" json:"test_output_dirs"`
	// Classpath entries are files, directories or glob patterns (the GWT SDK
	// and library jars).
	Classpath []string `mapstructure:"classpath" toml:"classpath,omitempty" json:"classpath,omitempty"`

	Compiler CompilerOptions `mapstructure:"compiler" toml:"compiler" json:"compiler"`
	DevMode  DevModeOptions  `mapstructure:"dev_mode" toml:"dev_mode" json:"dev_mode"`
	SuperDev SuperDevOptions `mapstructure:"super_dev" toml:"super_dev" json:"super_dev"`
	GwtTest  GwtTestOptions  `mapstructure:"gwt_test" toml:"gwt_test" json:"gwt_test"`

	// Dir is the absolute project directory every relative path is resolved
	// against.
	Dir string `mapstructure:"-" toml:"-" json:"-"`
	// Source is the config file that was loaded, empty for defaults only.
	Source string `mapstructure:"-" toml:"-" json:"-"`
}
