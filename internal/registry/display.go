package registry

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// DisplayName resolves a type reference into the display string used in
// rendered documentation. Type references use their canonical short name;
// anything else falls back to its string representation.
func DisplayName(typ any) string {
	switch t := typ.(type) {
	case nil:
		return ""
	case string:
		return t
	case cty.Type:
		return t.FriendlyName()
	case reflect.Type:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", typ)
	}
}
