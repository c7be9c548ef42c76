package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/argdocgo/internal/config"
	"github.com/vk/argdocgo/internal/ctxlog"
	"github.com/vk/argdocgo/internal/docstring"
)

// Run executes the main application logic: it renders every callable from
// the loaded model in declaration order and writes the results to the
// configured destination. In check mode it validates every callable against
// the registry instead, reporting all failures at once.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.SelfDoc {
		text, err := SelfDocument(a.renderer.Style())
		if err != nil {
			return err
		}
		fmt.Fprint(a.outW, text)
		return nil
	}

	callables := make([]docstring.Callable, 0, len(a.model.Callables))
	for _, decl := range a.model.Callables {
		c, err := buildCallable(decl)
		if err != nil {
			return err
		}
		callables = append(callables, c)
	}

	if len(callables) == 0 {
		a.logger.Warn("No callables found in spec path, nothing to render.")
		return nil
	}

	if a.config.CheckOnly {
		return a.check(callables)
	}

	for _, c := range callables {
		text, err := a.renderer.Render(c)
		if err != nil {
			return err
		}
		if err := a.emit(c.Name, text); err != nil {
			return err
		}
	}

	a.logger.Info("Rendering finished.", "callables", len(callables), "style", a.renderer.Style().String())
	return nil
}

// check renders every callable and discards the output, accumulating all
// failures so that one run reports every problem.
func (a *App) check(callables []docstring.Callable) error {
	var errs []string
	for _, c := range callables {
		if _, err := a.renderer.Render(c); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("spec validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	a.logger.Info("Spec validation passed.", "callables", len(callables))
	return nil
}

// emit writes one rendered docstring, either as a named block on the output
// writer or as a file under the output directory.
func (a *App) emit(name, text string) error {
	if a.config.OutPath == "" {
		_, err := fmt.Fprintf(a.outW, "# %s\n%s\n", name, text)
		return err
	}

	if err := os.MkdirAll(a.config.OutPath, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filePath := filepath.Join(a.config.OutPath, name+".txt")
	if err := os.WriteFile(filePath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	a.logger.Debug("Wrote rendered docstring.", "file", filePath)
	return nil
}

// buildCallable converts a model declaration into a renderer descriptor,
// resolving kind strings.
func buildCallable(decl *config.CallableDecl) (docstring.Callable, error) {
	c := docstring.Callable{
		Name:   decl.Name,
		Doc:    decl.Doc,
		Params: make([]docstring.Param, 0, len(decl.Params)),
		Raises: make([]docstring.Raise, 0, len(decl.Raises)),
	}

	for _, use := range decl.Params {
		kind, err := docstring.ParseKind(use.Kind)
		if err != nil {
			return docstring.Callable{}, fmt.Errorf("in callable '%s', parameter '%s': %w", decl.Name, use.Name, err)
		}
		p := docstring.Param{
			Name: use.Name,
			Kind: kind,
		}
		if use.Default != nil {
			p.HasDefault = true
			p.Default = *use.Default
		}
		c.Params = append(c.Params, p)
	}

	for _, r := range decl.Raises {
		c.Raises = append(c.Raises, docstring.Raise{Name: r.Name, Condition: r.Condition})
	}

	return c, nil
}
