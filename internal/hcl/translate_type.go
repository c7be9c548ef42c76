// This file contains the logic for parsing HCL type expressions (e.g.,
// `string`, `list(number)`, or a quoted freeform name) into the display
// strings used in rendered documentation.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/argdocgo/internal/ctxlog"
)

// typeExprToDisplay resolves a `type` attribute into its documentation
// display string. Bare keywords and type constructors go through cty and
// use its friendly names; a quoted string is taken verbatim, which allows
// freeform type text such as "list of str" or "callable".
func typeExprToDisplay(ctx context.Context, expr hcl.Expression) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return "", fmt.Errorf("missing type expression")
	}

	// A quoted literal bypasses the type system entirely.
	if tmpl, ok := expr.(*hclsyntax.TemplateExpr); ok && tmpl.IsStringLiteral() {
		val, diags := tmpl.Value(nil)
		if diags.HasErrors() {
			return "", diags
		}
		logger.Debug("Type expression is a freeform string literal.", "text", val.AsString())
		return val.AsString(), nil
	}

	if isAnyKeyword(expr) {
		return "any", nil
	}

	ctyType, err := typeExprToCtyType(ctx, expr)
	if err != nil {
		return "", err
	}
	return ctyType.FriendlyName(), nil
}

// isAnyKeyword reports whether expr is the bare `any` keyword, which is
// displayed as "any" rather than cty's "dynamic".
func isAnyKeyword(expr hcl.Expression) bool {
	trav, ok := expr.(*hclsyntax.ScopeTraversalExpr)
	return ok && len(trav.Traversal) == 1 && trav.Traversal.RootName() == "any"
}

// typeExprToCtyType converts an HCL type expression into its cty.Type equivalent.
func typeExprToCtyType(ctx context.Context, expr hcl.Expression) (cty.Type, error) {
	logger := ctxlog.FromContext(ctx)

	// Using a type switch is the correct way to handle the various concrete
	// expression types that implement the hcl.Expression interface.
	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		logger.Debug("Parsing type expression as a function call.", "call", v.Name)
		if len(v.Args) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("type constructors (list, map, set) require exactly one argument, got %d", len(v.Args))
		}

		// Recursively parse the inner type.
		elementType, err := typeExprToCtyType(ctx, v.Args[0])
		if err != nil {
			return cty.DynamicPseudoType, err
		}
		if elementType == cty.DynamicPseudoType {
			return cty.DynamicPseudoType, fmt.Errorf("collection types cannot contain type 'any'")
		}
		logger.Debug("Parsed collection element type.", "type", elementType.FriendlyName())

		switch v.Name {
		case "list":
			return cty.List(elementType), nil
		case "map":
			return cty.Map(elementType), nil
		case "set":
			return cty.Set(elementType), nil
		default:
			return cty.DynamicPseudoType, fmt.Errorf("unknown type constructor function %q", v.Name)
		}

	case *hclsyntax.ScopeTraversalExpr:
		// This handles primitive type identifiers like `string` or `number`.
		if len(v.Traversal) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		rootName := v.Traversal.RootName()
		logger.Debug("Parsing type expression as a primitive.", "keyword", rootName)
		switch rootName {
		case "string":
			return cty.String, nil
		case "number":
			return cty.Number, nil
		case "bool":
			return cty.Bool, nil
		case "any":
			return cty.DynamicPseudoType, nil
		default:
			return cty.DynamicPseudoType, fmt.Errorf("unknown primitive type %q", rootName)
		}

	default:
		// Fallback for any other kind of expression.
		return cty.DynamicPseudoType, fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}
