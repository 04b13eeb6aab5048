package hcl

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/vmmake/internal/config"
	"github.com/specialistvlad/vmmake/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translate evaluates every attribute present in root and overwrites the
// matching field of model. Omitted attributes keep their defaults.
func (l *Loader) translate(ctx context.Context, root *fileRoot, model *config.Model) error {
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envObject(l.environ)},
	}

	strs := []struct {
		name   string
		expr   hcl.Expression
		target *string
	}{
		{"compiler", root.Compiler, &model.Compiler},
		{"sources", root.Sources, &model.Sources},
		{"std", root.Std, &model.Std},
		{"output", root.Output, &model.Output},
	}
	for _, s := range strs {
		if !isExprDefined(ctx, s.expr, s.name) {
			continue
		}
		v, err := decode[string](s.expr, evalCtx, s.name, cty.String)
		if err != nil {
			return err
		}
		*s.target = v
	}

	if isExprDefined(ctx, root.Flags, "flags") {
		v, err := decode[[]string](root.Flags, evalCtx, "flags", cty.List(cty.String))
		if err != nil {
			return err
		}
		if v == nil {
			v = []string{}
		}
		model.Flags = v
	}

	if isExprDefined(ctx, root.Strict, "strict") {
		v, err := decode[bool](root.Strict, evalCtx, "strict", cty.Bool)
		if err != nil {
			return err
		}
		model.Strict = v
	}
	return nil
}

// isExprDefined reports whether an attribute was written in the file. The
// decoder fills omitted optional expressions with a placeholder whose source
// range is zero-width, so a nil check alone is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checked toolchain attribute.", "attribute", attrName, "hcl_range", r.String(), "is_defined", defined)
	return defined
}

// decode evaluates expr, converts the value to ty and binds it to a T.
func decode[T any](expr hcl.Expression, evalCtx *hcl.EvalContext, name string, ty cty.Type) (T, error) {
	var out T
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return out, fmt.Errorf("evaluating %s: %w", name, diags)
	}
	if val.IsNull() {
		return out, fmt.Errorf("%s must not be null", name)
	}
	val, err := convert.Convert(val, ty)
	if err != nil {
		return out, fmt.Errorf("%s must be %s: %w", name, ty.FriendlyName(), err)
	}
	if !val.IsWhollyKnown() {
		return out, fmt.Errorf("%s has an unknown value", name)
	}
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return out, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// envObject turns KEY=value pairs into the object exposed as `env`.
func envObject(environ []string) cty.Value {
	vals := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" || !utf8.ValidString(k) || !utf8.ValidString(v) {
			continue
		}
		vals[k] = cty.StringVal(v)
	}
	return cty.ObjectVal(vals)
}
