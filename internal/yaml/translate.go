// This file contains the logic for translating decoded YAML structures into
// the format-agnostic configuration model, including the conversion of
// native Go default values into cty values.

package yaml

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/argdocgo/internal/config"
)

func translateFile(file *yamlFile, filePath string) (*config.Model, error) {
	model := &config.Model{}

	for _, p := range file.Arguments {
		decl, err := translateParam(p, "argument", filePath)
		if err != nil {
			return nil, err
		}
		model.Arguments = append(model.Arguments, decl)
	}
	for _, p := range file.Keywords {
		decl, err := translateParam(p, "keyword", filePath)
		if err != nil {
			return nil, err
		}
		model.Keywords = append(model.Keywords, decl)
	}
	for _, c := range file.Callables {
		decl, err := translateCallable(c, filePath)
		if err != nil {
			return nil, err
		}
		model.Callables = append(model.Callables, decl)
	}

	return model, nil
}

func translateParam(p yamlParam, namespace, filePath string) (*config.ParamDecl, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("%s in %s is missing a name", namespace, filePath)
	}

	defaultVal, err := toCtyValue(p.Default)
	if err != nil {
		return nil, fmt.Errorf("invalid default value for %s '%s' in %s: %w", namespace, p.Name, filePath, err)
	}

	return &config.ParamDecl{
		Name:        p.Name,
		Type:        p.Type,
		Description: p.Description,
		Default:     defaultVal,
		Force:       p.Force,
	}, nil
}

func translateCallable(c yamlCallable, filePath string) (*config.CallableDecl, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("callable in %s is missing a name", filePath)
	}

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

		defaultVal, err := toCtyValue(p.Default)
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

// toCtyValue converts a native Go value produced by the YAML decoder into
// its cty equivalent. A nil input means no default was declared.
func toCtyValue(v any) (*cty.Value, error) {
	if v == nil {
		return nil, nil
	}
	val, err := convertValue(v)
	if err != nil {
		return nil, err
	}
	return &val, nil
}

func convertValue(v any) (cty.Value, error) {
	switch t := v.(type) {
	case string:
		return cty.StringVal(t), nil
	case bool:
		return cty.BoolVal(t), nil
	case int:
		return cty.NumberIntVal(int64(t)), nil
	case int64:
		return cty.NumberIntVal(t), nil
	case float64:
		return cty.NumberFloatVal(t), nil
	case []any:
		elems := make([]cty.Value, 0, len(t))
		for _, item := range t {
			ev, err := convertValue(item)
			if err != nil {
				return cty.NilVal, err
			}
			elems = append(elems, ev)
		}
		if len(elems) == 0 {
			return cty.EmptyTupleVal, nil
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		attrs := make(map[string]cty.Value, len(t))
		for key, item := range t {
			ev, err := convertValue(item)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[key] = ev
		}
		if len(attrs) == 0 {
			return cty.EmptyObjectVal, nil
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
	}
}
