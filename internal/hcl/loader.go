package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/argdocgo/internal/config"
	"github.com/vk/argdocgo/internal/ctxlog"
	"github.com/vk/argdocgo/internal/fsutil"
)

// Loader implements config.Loader for HCL files.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .hcl file under the given paths, decodes it against the
// schema, and merges the results into a single format-agnostic model in
// file walk order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "paths", paths)

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, path := range paths {
		filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			logger.Error("Failed to walk configuration path", "path", path, "error", err)
			return nil, err
		}
		if len(filePaths) == 0 {
			logger.Warn("No .hcl files found in path", "path", path)
			continue
		}

		for _, filePath := range filePaths {
			hclFile, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
			}

			part, err := l.translateFile(ctx, hclFile, filePath)
			if err != nil {
				return nil, fmt.Errorf("failed to process definitions in %s: %w", filePath, err)
			}
			model.Merge(part)
			logger.Debug("Successfully loaded definitions from HCL file", "file", filePath)
		}
	}

	logger.Info("HCL loader finished.",
		"arguments", len(model.Arguments),
		"keywords", len(model.Keywords),
		"callables", len(model.Callables))
	return model, nil
}
