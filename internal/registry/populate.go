package registry

import (
	"context"
	"fmt"

	"github.com/vk/argdocgo/internal/config"
	"github.com/vk/argdocgo/internal/ctxlog"
)

// PopulateFromModel applies every manifest-declared registration from the
// loaded config model, in declaration order. A duplicate name without
// `force = true` surfaces as an ErrDuplicateRegistration from the
// underlying register call.
func (r *Registry) PopulateFromModel(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	for _, decl := range model.Arguments {
		if err := r.RegisterArgument(decl.Name, decl.Type, decl.Description, decl.Force); err != nil {
			return fmt.Errorf("failed to apply manifest registration: %w", err)
		}
	}
	for _, decl := range model.Keywords {
		if err := r.RegisterKeyword(decl.Name, decl.Type, decl.Description, decl.Default, decl.Force); err != nil {
			return fmt.Errorf("failed to apply manifest registration: %w", err)
		}
	}

	args, kws := r.Counts()
	logger.Debug("Registry populated from config model.", "arguments", args, "keywords", kws)
	return nil
}
