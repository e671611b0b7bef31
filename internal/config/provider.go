package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ProjectDir is the project root. Relative paths in the configuration are
	// resolved against it. Defaults to the working directory.
	ProjectDir string
	// ConfigFilePath forces loading from a specific .cue or .toml file.
	// Otherwise gwt.cue and then gwt.toml are looked up in ProjectDir.
	ConfigFilePath string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	return loadWithOptions(ctx, opts)
}

// Load is a shorthand for NewProvider().Load.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	return NewProvider().Load(ctx, opts)
}
