// Package config loads the project configuration using Viper with CUE or
// TOML as the file format.
//
// The configuration is read from gwt.cue (or gwt.toml) in the project
// directory, validated against the embedded schema.cue and merged over the
// built-in defaults. GWT_* environment variables override file values.
//
// Task settings are layered: a value in a task section (compiler, dev_mode,
// super_dev, gwt_test) wins over the top-level value, which wins over the
// hard default. Resolve, Pick and PickList implement that chain.
package config
