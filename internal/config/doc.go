// Package config defines the format-agnostic sweep model for the
// application, along with the Loader interface implemented by the
// format-specific adapters.
//
// The `config.Model` is the single source of truth for the app's run
// phase. Concrete implementations of the Loader interface, such as for HCL
// and YAML, are provided in separate packages.
package config
