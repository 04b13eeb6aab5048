package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/vmmake/internal/cli"
	"github.com/stretchr/testify/require"
)

func writeToolchainFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vmmake.hcl"), []byte(content), 0o600), "failed to set up test file")
}

func TestRun_WrongArgumentCount(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{}, {"build", "run"}} {
		// --- Arrange ---
		out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

		// --- Act ---
		err := run(out, errOut, args, nil)

		// --- Assert ---
		require.Error(t, err)
		exitErr, ok := err.(*cli.ExitError)
		require.True(t, ok, "expected ExitError, got %T", err)
		require.NotZero(t, exitErr.Code)
		require.Contains(t, out.String(), "Usage:")
	}
}

func TestRun_HelpPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		arg        string
		toolchain  string
		extraEnv   []string
		expectHint string
	}{
		{name: "Empty project", arg: "clean"},
		{name: "Malformed toolchain file is not read", arg: "clean", toolchain: "compiler = {"},
		{name: "Invalid log settings are not read", arg: "clean", extraEnv: []string{cli.EnvLogLevel + "=loud", cli.EnvLogFormat + "=yaml"}},
		{name: "Missing explicit toolchain file is not read", arg: "clean", extraEnv: []string{cli.EnvConfig + "=/nonexistent/vmmake.hcl"}},
		{name: "Suggestion still printed", arg: "BUILD", toolchain: "compiler = {", expectHint: `Did you mean "build"?`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			dir := t.TempDir()
			if tc.toolchain != "" {
				writeToolchainFile(t, dir, tc.toolchain)
			}
			environ := append([]string{cli.EnvDir + "=" + dir}, tc.extraEnv...)
			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

			// --- Act ---
			err := run(out, errOut, []string{tc.arg}, environ)

			// --- Assert ---
			require.NoError(t, err)
			require.Contains(t, out.String(), `Use "run" or "build"`)
			require.NotContains(t, out.String(), "VM built successfully")
			require.NoDirExists(t, filepath.Join(dir, "bin"), "the build step must not have started")
			if tc.expectHint != "" {
				require.Contains(t, out.String(), tc.expectHint)
			}
		})
	}
}

func TestRun_InvalidSettings(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{"build"}, []string{cli.EnvLogFormat + "=yaml"})

	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok, "expected ExitError, got %T", err)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_MalformedToolchainFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeToolchainFile(t, dir, "compiler = {")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"build"}, []string{cli.EnvDir + "=" + dir})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse HCL file")
	require.Empty(t, out.String())
}

func TestRun_ToolchainEnvComesFromEnviron(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// CC names a compiler that does not exist, so the build attempt fails to
	// start; in parity mode that is only logged, with the compiler's name.
	dir := t.TempDir()
	writeToolchainFile(t, dir, "compiler = env.CC\n")
	compiler := filepath.Join(dir, "no-such-cc")
	environ := []string{cli.EnvDir + "=" + dir, "CC=" + compiler}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"build"}, environ)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "VM built successfully")
	require.Contains(t, errOut.String(), "Compiler did not succeed")
	require.Contains(t, errOut.String(), compiler)
}

func TestLookupEnv(t *testing.T) {
	t.Parallel()

	getenv := lookupEnv([]string{"CC=gcc", "CC=clang", "NOEQUALS", "EMPTY="})

	require.Equal(t, "clang", getenv("CC"))
	require.Equal(t, "", getenv("EMPTY"))
	require.Equal(t, "", getenv("NOEQUALS"))
	require.Equal(t, "", getenv("MISSING"))
}
