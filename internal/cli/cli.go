package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/vmmake/internal/app"
)

// UsageHint is printed when the argument count is wrong.
const UsageHint = "Usage: vmmake build | run"

// Environment variables read by Parse.
const (
	EnvConfig    = "VMMAKE_CONFIG"
	EnvDir       = "VMMAKE_DIR"
	EnvLogFormat = "VMMAKE_LOG_FORMAT"
	EnvLogLevel  = "VMMAKE_LOG_LEVEL"
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

// Invocation is a checked command line.
type Invocation struct {
	Subcommand string
	// Help is set when Subcommand is not dispatched. Config is nil then.
	Help   bool
	Config *app.Config
}

// Parse requires exactly one argument. On any other count it prints
// UsageHint to output and returns an ExitError with code 1, before looking
// at anything else. An unrecognised subcommand yields a Help invocation
// without reading settings. Otherwise settings come from getenv and invalid
// values yield an ExitError with code 2.
func Parse(args []string, getenv func(string) string, output io.Writer) (*Invocation, error) {
	slog.Debug("CLI parser started.", "arg_count", len(args))

	if len(args) != 1 {
		fmt.Fprintln(output, UsageHint)
		return nil, &ExitError{Code: 1, Message: fmt.Sprintf("expected exactly one subcommand, got %d arguments", len(args))}
	}

	if !app.IsSubcommand(args[0]) {
		slog.Debug("Unrecognised subcommand, settings not read.", "subcommand", args[0])
		return &Invocation{Subcommand: args[0], Help: true}, nil
	}

	cfg, err := app.NewConfig(app.Config{
		ProjectDir: getenv(EnvDir),
		ConfigPath: getenv(EnvConfig),
		LogFormat:  strings.ToLower(strings.TrimSpace(getenv(EnvLogFormat))),
		LogLevel:   strings.ToLower(strings.TrimSpace(getenv(EnvLogLevel))),
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "subcommand", args[0], "config", cfg)
	return &Invocation{Subcommand: args[0], Config: cfg}, nil
}
