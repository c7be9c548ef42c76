// This file holds the section-header and entry-line templates for the two
// supported docstring styles.

package docstring

import (
	"fmt"
)

// Style selects the docstring layout to produce.
type Style int

const (
	// StyleNumpy produces numpydoc sections with underlined headers.
	StyleNumpy Style = iota
	// StyleGoogle produces Google-style sections with indented entries.
	StyleGoogle
)

// ParseStyle converts a style name ("numpy" or "google") into a Style.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "numpy":
		return StyleNumpy, nil
	case "google":
		return StyleGoogle, nil
	default:
		return StyleNumpy, fmt.Errorf("unknown docstring style %q: must be 'numpy' or 'google'", s)
	}
}

// String returns the configuration spelling of the style.
func (s Style) String() string {
	if s == StyleGoogle {
		return "google"
	}
	return "numpy"
}

func (s Style) argumentHeader() string {
	if s == StyleGoogle {
		return "\n\nArgs:\n"
	}
	return "\n\nArguments\n----------\n"
}

func (s Style) keywordHeader() string {
	if s == StyleGoogle {
		return "\n\nKeywords:\n"
	}
	return "\n\nKeyword Arguments\n-----------------\n"
}

func (s Style) raisesHeader() string {
	if s == StyleGoogle {
		return "\n\nRaises:\n"
	}
	return "\n\nRaises\n------\n"
}

func (s Style) argumentEntry(name, typ, desc string) string {
	if s == StyleGoogle {
		return fmt.Sprintf("    %s (%s): %s\n", name, typ, desc)
	}
	return fmt.Sprintf("%s : %s\n    %s\n", name, typ, desc)
}

// keywordEntry renders a defaulted parameter. When no effective default
// exists (keyword-only parameter with neither a registry-declared nor a
// signature-declared default) the Default suffix is omitted.
func (s Style) keywordEntry(name, typ, desc, def string, hasDefault bool) string {
	suffix := ""
	if hasDefault {
		suffix = fmt.Sprintf(" Default: %s", def)
	}
	if s == StyleGoogle {
		return fmt.Sprintf("    %s (%s, optional): %s%s\n", name, typ, desc, suffix)
	}
	return fmt.Sprintf("%s : %s, optional\n    %s%s\n", name, typ, desc, suffix)
}

func (s Style) variadicArgsEntry(name string) string {
	if s == StyleGoogle {
		return fmt.Sprintf("    *%s: Variable length argument list.\n", name)
	}
	return fmt.Sprintf("*%s\n    Variable length argument list.\n", name)
}

func (s Style) variadicKeywordsEntry(name string) string {
	if s == StyleGoogle {
		return fmt.Sprintf("    **%s: Arbitrary keyword arguments.\n", name)
	}
	return fmt.Sprintf("**%s\n    Arbitrary keyword arguments.\n", name)
}

func (s Style) raiseEntry(name, condition string) string {
	if s == StyleGoogle {
		return fmt.Sprintf("    %s: %s\n", name, condition)
	}
	return fmt.Sprintf("%s\n    %s\n", name, condition)
}
