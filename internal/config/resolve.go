package config

// Resolve returns the first set value of specific and general, or def.
// It replaces the "task value, else extension value, else default" chains
// every task setting goes through.
func Resolve[T any](specific, general *T, def T) T {
	if p := Pick(specific, general); p != nil {
		return *p
	}
	return def
}

// Pick returns specific when set, else general. The result may be nil.
func Pick[T any](specific, general *T) *T {
	if specific != nil {
		return specific
	}
	return general
}

// PickList returns specific when it has entries, else general. An empty
// list counts as unset.
func PickList(specific, general []string) []string {
	if len(specific) > 0 {
		return specific
	}
	return general
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// merge applies the section -> top level chain to every shared option.
func (o Options) merge(general Options) Options {
	return Options{
		MinHeapSize: Pick(o.MinHeapSize, general.MinHeapSize),
		MaxHeapSize: Pick(o.MaxHeapSize, general.MaxHeapSize),
		LogLevel:    Pick(o.LogLevel, general.LogLevel),

		WorkDir:  Pick(o.WorkDir, general.WorkDir),
		Gen:      Pick(o.Gen, general.Gen),
		War:      Pick(o.War, general.War),
		Deploy:   Pick(o.Deploy, general.Deploy),
		Extra:    Pick(o.Extra, general.Extra),
		CacheDir: Pick(o.CacheDir, general.CacheDir),

		GenerateJsInteropExports: Pick(o.GenerateJsInteropExports, general.GenerateJsInteropExports),
		IncludeJsInteropExports:  PickList(o.IncludeJsInteropExports, general.IncludeJsInteropExports),
		ExcludeJsInteropExports:  PickList(o.ExcludeJsInteropExports, general.ExcludeJsInteropExports),

		MethodNameDisplayMode: Pick(o.MethodNameDisplayMode, general.MethodNameDisplayMode),
		SourceLevel:           Pick(o.SourceLevel, general.SourceLevel),
		Incremental:           Pick(o.Incremental, general.Incremental),
		Style:                 Pick(o.Style, general.Style),
		FailOnError:           Pick(o.FailOnError, general.FailOnError),
		SetProperty:           PickList(o.SetProperty, general.SetProperty),

		Modules:         PickList(o.Modules, general.Modules),
		ExtraSourceDirs: PickList(o.ExtraSourceDirs, general.ExtraSourceDirs),
	}
}

// heap fills in the heap sizes from heapSource, the top level and the hard
// defaults.
func (o *Options) heap(heapSource, general Options) {
	o.MinHeapSize = Ptr(Resolve(heapSource.MinHeapSize, general.MinHeapSize, DefaultMinHeapSize))
	o.MaxHeapSize = Ptr(Resolve(heapSource.MaxHeapSize, general.MaxHeapSize, DefaultMaxHeapSize))
}
