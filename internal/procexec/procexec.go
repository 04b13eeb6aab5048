package procexec

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/specialistvlad/vmmake/internal/ctxlog"
)

// Command is one child process to start.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the caller's.
	Dir string
}

// String renders the command the way it would be typed, for logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Result is the outcome of a finished child.
type Result struct {
	// Code is the exit status. It is 0 on success, the child's status when it
	// exited non-zero, and -1 when the child could not be started or waited on.
	Code int
	Err  error
}

// OK reports whether the child ran and exited zero.
func (r Result) OK() bool {
	return r.Code == 0 && r.Err == nil
}

// Runner starts a command and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, cmd Command) Result
}

// Host runs commands on the local machine with the given stdio.
type Host struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewHost returns a Host wired to the given streams.
func NewHost(stdin io.Reader, stdout, stderr io.Writer) *Host {
	return &Host{Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Run implements Runner.
func (h *Host) Run(ctx context.Context, c Command) Result {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting child process.", "command", c.String(), "dir", c.Dir)

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = h.Stdin
	cmd.Stdout = h.Stdout
	cmd.Stderr = h.Stderr

	res := resultOf(cmd.Run())
	logger.Debug("Child process finished.", "command", c.Name, "code", res.Code, "error", res.Err)
	return res
}

func resultOf(err error) Result {
	if err == nil {
		return Result{}
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return Result{Code: ee.ExitCode(), Err: err}
	}
	return Result{Code: -1, Err: err}
}
