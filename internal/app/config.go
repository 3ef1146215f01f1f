package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SweepPath string // sweep definition files, a file or a directory searched recursively
	OutputDir string // directory the rendered scripts are written under

	Print        bool  // write rendered scripts to the output writer instead of files
	Explain      bool  // decode one array index per sweep instead of rendering
	ExplainIndex int64 // the array index to decode when Explain is set

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.SweepPath == "" {
		return nil, errors.New("SweepPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.WorkerCount < 0 {
		return nil, errors.New("WorkerCount cannot be negative")
	}
	if cfg.Explain && cfg.ExplainIndex < 0 {
		return nil, errors.New("ExplainIndex cannot be negative")
	}

	return &cfg, nil
}
