package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/vmmake/internal/config"
	"github.com/specialistvlad/vmmake/internal/hcl"
	"github.com/specialistvlad/vmmake/internal/procexec"
	"github.com/stretchr/testify/require"
)

// fakeRunner records every command instead of starting it. Exit codes are
// looked up by command name; a hook can touch the file system to stand in
// for what the real child would do.
type fakeRunner struct {
	calls []procexec.Command
	codes map[string]int
	hook  func(cmd procexec.Command)
}

func (f *fakeRunner) Run(_ context.Context, cmd procexec.Command) procexec.Result {
	f.calls = append(f.calls, cmd)
	if f.hook != nil {
		f.hook(cmd)
	}
	code := f.codes[cmd.Name]
	if code != 0 {
		return procexec.Result{Code: code, Err: &os.SyscallError{Syscall: "wait", Err: os.ErrProcessDone}}
	}
	return procexec.Result{}
}

// compilerWritesArtifact makes the fake compiler create the -o target.
func compilerWritesArtifact(t *testing.T, dir string) func(procexec.Command) {
	t.Helper()
	return func(cmd procexec.Command) {
		if cmd.Name != config.DefaultCompiler {
			return
		}
		for i, arg := range cmd.Args {
			if arg == "-o" && i+1 < len(cmd.Args) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, cmd.Args[i+1]), []byte("\x7fELF"), 0o755))
			}
		}
	}
}

// writeProject lays out files under a fresh project directory.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

// vmSources mirrors the layout of the VM repository.
var vmSources = map[string]string{
	"src/main.c":       "int main(void) { return 0; }\n",
	"src/vm.c":         "#include \"../include/vm.h\"\n",
	"src/errors.c":     "#include \"../include/errors.h\"\n",
	"include/vm.h":     "",
	"include/errors.h": "",
}

// setupAppTest creates an App over dir driven by runner.
func setupAppTest(t *testing.T, dir string, runner procexec.Runner) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cfg, err := NewConfig(Config{ProjectDir: dir, LogLevel: "debug"})
	require.NoError(t, err)

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	testApp, err := NewApp(out, logs, cfg, hcl.NewLoader(nil), runner)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("VMMAKE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return testApp, out, logs
}
