package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/vmmake/internal/app"
	"github.com/specialistvlad/vmmake/internal/cli"
	"github.com/specialistvlad/vmmake/internal/hcl"
	"github.com/specialistvlad/vmmake/internal/procexec"
)

// main is the entrypoint for the vmmake orchestrator.
func main() {
	// Use a minimal logger until the App builds its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:], os.Environ()); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. environ is the KEY=value list both the settings and the
// toolchain file's `env` object are read from.
func run(outW, errW io.Writer, args []string, environ []string) error {
	inv, err := cli.Parse(args, lookupEnv(environ), outW)
	if err != nil {
		return err
	}
	if inv.Help {
		app.PrintHelp(outW, inv.Subcommand)
		return nil
	}

	loader := hcl.NewLoader(environ)
	host := procexec.NewHost(os.Stdin, outW, errW)
	vmmake, err := app.NewApp(outW, errW, inv.Config, loader, host)
	if err != nil {
		return err
	}

	return vmmake.Run(context.Background(), inv.Subcommand)
}

// lookupEnv returns a getenv over environ. Later entries win, as with
// os.Getenv on a duplicated key.
func lookupEnv(environ []string) func(string) string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return func(k string) string { return vars[k] }
}
