package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Defaults for the toolchain model.
const (
	DefaultCompiler = "gcc"
	DefaultSources  = "src/*.c"
	DefaultStd      = "c11"
	DefaultOutput   = "bin/vm"
	DefaultFile     = "vmmake.hcl"
)

// DefaultFlags returns the strictness flags passed on every compile.
func DefaultFlags() []string {
	return []string{"-Wall", "-Werror", "-pedantic"}
}

// Model is the toolchain configuration shared by the build and run steps.
type Model struct {
	Compiler string
	Sources  string
	Flags    []string
	Std      string
	// Output is the artifact path, relative to the project directory unless
	// absolute. Build writes it, run executes and removes it.
	Output string
	// Strict gates the success notice and the run step on a zero compiler
	// exit, and reports a failing program as an error.
	Strict bool
}

// Default returns the model matching the historical fixed command line.
func Default() *Model {
	return &Model{
		Compiler: DefaultCompiler,
		Sources:  DefaultSources,
		Flags:    DefaultFlags(),
		Std:      DefaultStd,
		Output:   DefaultOutput,
	}
}

// Validate rejects models no compile could be built from.
func (m *Model) Validate() error {
	var errs []error
	if strings.TrimSpace(m.Compiler) == "" {
		errs = append(errs, errors.New("compiler must not be empty"))
	}
	if strings.TrimSpace(m.Sources) == "" {
		errs = append(errs, errors.New("sources must not be empty"))
	}
	if strings.TrimSpace(m.Output) == "" {
		errs = append(errs, errors.New("output must not be empty"))
	} else if filepath.Clean(m.Output) == "." {
		errs = append(errs, fmt.Errorf("output %q does not name a file", m.Output))
	}
	for _, f := range m.Flags {
		if strings.TrimSpace(f) == "" {
			errs = append(errs, errors.New("flags must not contain empty entries"))
			break
		}
	}
	if _, err := filepath.Match(m.Sources, ""); err != nil {
		errs = append(errs, fmt.Errorf("sources %q: %w", m.Sources, err))
	}
	return errors.Join(errs...)
}

// CompileArgs returns the compiler's argument vector for the given source
// list: -o <output> <sources...> <flags...> -std=<std>.
func (m *Model) CompileArgs(sources []string) []string {
	args := make([]string, 0, 3+len(sources)+len(m.Flags))
	args = append(args, "-o", m.Output)
	args = append(args, sources...)
	args = append(args, m.Flags...)
	if m.Std != "" {
		args = append(args, "-std="+m.Std)
	}
	return args
}
