package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/vmmake/internal/config"
	"github.com/specialistvlad/vmmake/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ []string
}

// NewLoader creates a loader whose `env` object is built from environ, a
// list of KEY=value pairs as returned by os.Environ.
func NewLoader(environ []string) *Loader {
	return &Loader{environ: environ}
}

// fileRoot lists every attribute a toolchain file may set. Anything else is
// rejected by the decoder.
type fileRoot struct {
	Compiler hcl.Expression `hcl:"compiler,optional"`
	Sources  hcl.Expression `hcl:"sources,optional"`
	Flags    hcl.Expression `hcl:"flags,optional"`
	Std      hcl.Expression `hcl:"std,optional"`
	Output   hcl.Expression `hcl:"output,optional"`
	Strict   hcl.Expression `hcl:"strict,optional"`
}

// Load parses the file at path and returns the resulting toolchain model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("toolchain file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := config.Default()
	if err := l.translate(ctx, &root, model); err != nil {
		return nil, fmt.Errorf("invalid toolchain file %s: %w", path, err)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid toolchain file %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.", "compiler", model.Compiler, "sources", model.Sources, "output", model.Output, "strict", model.Strict)
	return model, nil
}
