// Package yaml provides the YAML implementation of the configuration Loader
// interface defined in the `config` package. It accepts the same logical
// structure as the HCL loader, with lists used where HCL uses labeled
// blocks so that declaration order is preserved.
package yaml

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/argdocgo/internal/config"
	"github.com/vk/argdocgo/internal/ctxlog"
	"github.com/vk/argdocgo/internal/fsutil"
)

// Loader implements config.Loader for YAML files.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// yamlFile is the top-level decoding target for one .yaml/.yml file.
type yamlFile struct {
	Arguments []yamlParam    `yaml:"arguments"`
	Keywords  []yamlParam    `yaml:"keywords"`
	Callables []yamlCallable `yaml:"callables"`
}

type yamlParam struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Default     any    `yaml:"default"`
	Force       bool   `yaml:"force"`
}

type yamlCallable struct {
	Name   string         `yaml:"name"`
	Doc    string         `yaml:"doc"`
	Params []yamlParamUse `yaml:"params"`
	Raises []yamlRaise    `yaml:"raises"`
}

type yamlParamUse struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Default any    `yaml:"default"`
}

type yamlRaise struct {
	Name      string `yaml:"name"`
	Condition string `yaml:"condition"`
}

// Load reads every .yaml/.yml file under the given paths and merges the
// results into a single format-agnostic model in file walk order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "paths", paths)

	model := &config.Model{}

	for _, path := range paths {
		filePaths, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml")
		if err != nil {
			logger.Error("Failed to walk configuration path", "path", path, "error", err)
			return nil, err
		}
		if len(filePaths) == 0 {
			logger.Warn("No .yaml files found in path", "path", path)
			continue
		}

		for _, filePath := range filePaths {
			part, err := l.loadFile(filePath)
			if err != nil {
				return nil, err
			}
			model.Merge(part)
			logger.Debug("Successfully loaded definitions from YAML file", "file", filePath)
		}
	}

	logger.Info("YAML loader finished.",
		"arguments", len(model.Arguments),
		"keywords", len(model.Keywords),
		"callables", len(model.Callables))
	return model, nil
}

func (l *Loader) loadFile(filePath string) (*config.Model, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var file yamlFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", filePath, err)
	}

	return translateFile(&file, filePath)
}
