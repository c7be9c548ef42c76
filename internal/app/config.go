package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SpecPath   string // callable spec files (hcl/yaml)
	ParamsPath string // shared parameter manifests (hcl/yaml)

	Format         string // "numpy" or "google"
	IgnoreArgs     []string
	IgnoreKeywords []string

	CheckOnly bool   // validate registry/spec parity without rendering
	SelfDoc   bool   // render the tool's own API documentation and exit
	OutPath   string // when set, write one file per callable instead of stdout

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.SpecPath == "" && !cfg.SelfDoc {
		return nil, errors.New("SpecPath is a required configuration field and cannot be empty")
	}
	if cfg.Format == "" {
		cfg.Format = "numpy"
	}

	return &cfg, nil
}
