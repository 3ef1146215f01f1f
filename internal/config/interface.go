package config

import "context"

// Loader is the interface for a format-specific sweep file loader.
type Loader interface {
	// Extensions lists the file extensions, with leading dot, that this
	// loader claims.
	Extensions() []string

	// Load parses the given definition files into the format-agnostic
	// model. The caller routes files by extension, so every file carries
	// one of the loader's extensions.
	Load(ctx context.Context, files ...string) (*Model, error)
}
