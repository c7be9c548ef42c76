package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/argdocgo/internal/config"
	"github.com/vk/argdocgo/internal/ctxlog"
	"github.com/vk/argdocgo/internal/docstring"
	"github.com/vk/argdocgo/internal/hcl"
	"github.com/vk/argdocgo/internal/registry"
	"github.com/vk/argdocgo/internal/yaml"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	renderer *docstring.Renderer
	config   *Config
	model    *config.Model
}

// defaultLoaders returns the loaders compiled into the binary. Both formats
// are always consulted; a path that contains no files of one format is
// simply skipped by that loader.
func defaultLoaders() []config.Loader {
	return []config.Loader{hcl.NewLoader(), yaml.NewLoader()}
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Rendered output goes to outW; logs go to logW so that the rendered text
// stays machine-consumable. Fatal startup errors panic; the entrypoint
// recovers them into a clean exit message.
func NewApp(outW, logW io.Writer, appConfig *Config, loaders ...config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	style, err := docstring.ParseStyle(appConfig.Format)
	if err != nil {
		// The CLI validates the format flag before we get here, so this is
		// a programmer error.
		panic(err)
	}

	// Merge all configuration paths into a single collection for the loaders.
	var configPaths []string
	if appConfig.ParamsPath != "" {
		configPaths = append(configPaths, appConfig.ParamsPath)
	}
	if appConfig.SpecPath != "" {
		configPaths = append(configPaths, appConfig.SpecPath)
	}

	if len(loaders) == 0 {
		loaders = defaultLoaders()
	}

	// Load everything into the format-agnostic model first.
	cfgModel := &config.Model{}
	if len(configPaths) > 0 {
		for _, loader := range loaders {
			part, err := loader.Load(ctx, configPaths...)
			if err != nil {
				panic(fmt.Errorf("failed to load configuration: %w", err))
			}
			cfgModel.Merge(part)
		}
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	// Create the registry and apply every manifest-declared registration.
	reg := registry.New(registry.Options{
		IgnoreArgs:     appConfig.IgnoreArgs,
		IgnoreKeywords: appConfig.IgnoreKeywords,
	})
	if err := reg.PopulateFromModel(ctx, cfgModel); err != nil {
		panic(err)
	}
	args, kws := reg.Counts()
	logger.Debug("Registry populated.", "arguments", args, "keywords", kws)

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		renderer: docstring.NewRenderer(style, reg),
		config:   appConfig,
		model:    cfgModel,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
