package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/argdocgo/internal/app"
	"github.com/vk/argdocgo/internal/docstring"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("argdocgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
argdocgo - Renders shared-parameter documentation blocks for callables.

Usage:
  argdocgo [options] [SPEC_PATH]

Arguments:
  SPEC_PATH
    Path to a single spec file or a directory containing .hcl/.yaml spec files.

Options:
`)
		flagSet.PrintDefaults()
	}

	paramsFlag := flagSet.String("params", "", "Path to the shared parameter manifest file or directory.")
	pFlag := flagSet.String("p", "", "Path to the shared parameter manifest file or directory (shorthand).")
	formatFlag := flagSet.String("format", "numpy", "Docstring style to produce. Options: 'numpy' or 'google'.")
	checkFlag := flagSet.Bool("check", false, "Validate that every callable renders cleanly, without emitting output.")
	selfDocFlag := flagSet.Bool("self-doc", false, "Render the documentation of argdocgo's own API and exit.")
	outFlag := flagSet.String("out", "", "Directory to write one rendered file per callable. Default is stdout.")
	ignoreArgsFlag := flagSet.String("ignore-args", "self,cls", "Comma-separated positional parameter names to exclude from documentation.")
	ignoreKeywordsFlag := flagSet.String("ignore-keywords", "", "Comma-separated keyword parameter names to exclude from documentation.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	specPath := ""
	if flagSet.NArg() > 0 {
		specPath = flagSet.Arg(0)
	}
	slog.Debug("Spec path determined.", "path", specPath)

	if specPath == "" && !*selfDocFlag {
		slog.Debug("No spec path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if _, err := docstring.ParseStyle(*formatFlag); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	paramsPath := *paramsFlag
	if paramsPath == "" {
		paramsPath = *pFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SpecPath:       specPath,
		ParamsPath:     paramsPath,
		Format:         *formatFlag,
		IgnoreArgs:     splitNames(*ignoreArgsFlag),
		IgnoreKeywords: splitNames(*ignoreKeywordsFlag),
		CheckOnly:      *checkFlag,
		SelfDoc:        *selfDocFlag,
		OutPath:        *outFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitNames turns a comma-separated flag value into a clean name list.
func splitNames(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
