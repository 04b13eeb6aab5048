package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gookit/color"
	"github.com/specialistvlad/vmmake/internal/ctxlog"
	"github.com/specialistvlad/vmmake/internal/fsutil"
	"github.com/specialistvlad/vmmake/internal/procexec"
)

// BuiltNotice is printed once the compiler returns.
const BuiltNotice = "VM built successfully"

// Build invokes the compiler once. Outside strict mode the notice is printed
// whatever the compiler's exit status; the status is only logged.
func (a *App) Build(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	sources, matched, err := fsutil.ExpandGlob(a.dir, a.toolchain.Sources)
	if err != nil {
		return err
	}
	if !matched {
		logger.Warn("No source files matched, passing the pattern to the compiler.", "pattern", a.toolchain.Sources, "dir", a.dir)
	}

	outDir := filepath.Dir(a.artifactPath())
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		if a.toolchain.Strict {
			return fmt.Errorf("creating output directory: %w", err)
		}
		logger.Warn("Could not create output directory.", "dir", outDir, "error", err)
	}

	cmd := procexec.Command{
		Name: a.toolchain.Compiler,
		Args: a.toolchain.CompileArgs(sources),
		Dir:  a.dir,
	}
	logger.Info("Compiling VM.", "command", cmd.String())
	res := a.runner.Run(ctx, cmd)
	if !res.OK() {
		logger.Warn("Compiler did not succeed.", "compiler", cmd.Name, "code", res.Code, "error", res.Err)
		if a.toolchain.Strict {
			return &StepError{Step: CmdBuild, Code: res.Code, Err: res.Err}
		}
	}

	fmt.Fprintln(a.outW, color.Green.Sprint(BuiltNotice))
	return nil
}

func (a *App) artifactCommand(artifact string) procexec.Command {
	return procexec.Command{Name: artifact, Dir: a.dir}
}

// removeArtifact deletes the build output. A failure is logged and returned.
func (a *App) removeArtifact(ctx context.Context, artifact string) error {
	logger := ctxlog.FromContext(ctx)
	err := os.Remove(artifact)
	switch {
	case err == nil:
		logger.Debug("Artifact removed.", "artifact", artifact)
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("Could not remove artifact, it does not exist.", "artifact", artifact)
	default:
		logger.Warn("Could not remove artifact.", "artifact", artifact, "error", err)
	}
	return err
}
