// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/argdocgo/internal/config"
	"github.com/vk/argdocgo/internal/schema"
)

// translateFile decodes a parsed HCL file and converts every block into its
// model counterpart, preserving declaration order.
func (l *Loader) translateFile(ctx context.Context, hclFile *hcl.File, filePath string) (*config.Model, error) {
	if hclFile == nil {
		return nil, fmt.Errorf("HCL file %s is nil", filePath)
	}

	root := &schema.File{}
	if diags := gohcl.DecodeBody(hclFile.Body, nil, root); diags.HasErrors() {
		return nil, diags
	}

	model := &config.Model{}

	for _, arg := range root.Arguments {
		decl, err := l.translateArgument(ctx, arg)
		if err != nil {
			return nil, err
		}
		model.Arguments = append(model.Arguments, decl)
	}
	for _, kw := range root.Keywords {
		decl, err := l.translateKeyword(ctx, kw)
		if err != nil {
			return nil, err
		}
		model.Keywords = append(model.Keywords, decl)
	}
	for _, c := range root.Callables {
		decl, err := l.translateCallable(ctx, c)
		if err != nil {
			return nil, err
		}
		model.Callables = append(model.Callables, decl)
	}

	return model, nil
}

// translateArgument converts an `argument` block into a model declaration.
func (l *Loader) translateArgument(ctx context.Context, a *schema.ArgumentDef) (*config.ParamDecl, error) {
	display, err := typeExprToDisplay(ctx, a.Type)
	if err != nil {
		return nil, fmt.Errorf("in argument '%s': %w", a.Name, err)
	}
	return &config.ParamDecl{
		Name:        a.Name,
		Type:        display,
		Description: a.Description,
		Force:       a.Force,
	}, nil
}

// translateKeyword converts a `keyword` block into a model declaration,
// evaluating its literal default if present.
func (l *Loader) translateKeyword(ctx context.Context, k *schema.KeywordDef) (*config.ParamDecl, error) {
	display, err := typeExprToDisplay(ctx, k.Type)
	if err != nil {
		return nil, fmt.Errorf("in keyword '%s': %w", k.Name, err)
	}

	defaultVal, err := evalLiteralDefault(k.Default)
	if err != nil {
		return nil, fmt.Errorf("invalid default value for keyword '%s': %w", k.Name, err)
	}

	return &config.ParamDecl{
		Name:        k.Name,
		Type:        display,
		Description: k.Description,
		Default:     defaultVal,
		Force:       k.Force,
	}, nil
}

// translateCallable converts a `callable` block, rejecting duplicate param
// declarations within a single callable.
func (l *Loader) translateCallable(ctx context.Context, c *schema.CallableDef) (*config.CallableDecl, error) {
	decl := &config.CallableDecl{
		Name: c.Name,
		Doc:  c.Doc,
	}

	seen := make(map[string]struct{}, len(c.Params))
	for _, p := range c.Params {
		if _, exists := seen[p.Name]; exists {
			return nil, fmt.Errorf("callable '%s' declares parameter '%s' more than once", c.Name, p.Name)
		}
		seen[p.Name] = struct{}{}

		defaultVal, err := evalLiteralDefault(p.Default)
		if err != nil {
			return nil, fmt.Errorf("invalid default value for parameter '%s' of callable '%s': %w", p.Name, c.Name, err)
		}

		decl.Params = append(decl.Params, &config.ParamUse{
			Name:    p.Name,
			Kind:    p.Kind,
			Default: defaultVal,
		})
	}

	for _, r := range c.Raises {
		decl.Raises = append(decl.Raises, &config.RaiseDecl{
			Name:      r.Name,
			Condition: r.Condition,
		})
	}

	return decl, nil
}

// evalLiteralDefault evaluates a default expression with a nil EvalContext,
// so only literal values are accepted. A null result is treated as absent.
func evalLiteralDefault(expr hcl.Expression) (*cty.Value, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	return &val, nil
}
