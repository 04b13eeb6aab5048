package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/vmmake/internal/ctxlog"
)

// Subcommands accepted by Run.
const (
	CmdBuild = "build"
	CmdRun   = "run"
)

// IsSubcommand reports whether s is dispatched by exact match.
func IsSubcommand(s string) bool {
	return s == CmdBuild || s == CmdRun
}

// Run dispatches subcommand by exact match. Anything unrecognised prints the
// help text and returns nil without starting a process.
func (a *App) Run(ctx context.Context, subcommand string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Dispatching subcommand.", "subcommand", subcommand)

	switch subcommand {
	case CmdBuild:
		return a.Build(ctx)
	case CmdRun:
		return a.BuildAndRun(ctx)
	default:
		a.logger.Debug("Unrecognised subcommand, printing help.", "subcommand", subcommand)
		PrintHelp(a.outW, subcommand)
		return nil
	}
}

// BuildAndRun builds the VM, executes the artifact and then removes it,
// whatever the VM's exit status.
func (a *App) BuildAndRun(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	if err := a.Build(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.outW, "Running VM...")
	artifact := a.artifactPath()
	res := a.runner.Run(ctx, a.artifactCommand(artifact))
	rmErr := a.removeArtifact(ctx, artifact)

	if !res.OK() {
		logger.Warn("VM did not exit cleanly.", "artifact", artifact, "code", res.Code, "error", res.Err)
		if a.toolchain.Strict {
			return &StepError{Step: CmdRun, Code: res.Code, Err: res.Err}
		}
	}
	if rmErr != nil && a.toolchain.Strict {
		return fmt.Errorf("removing artifact: %w", rmErr)
	}
	return nil
}
