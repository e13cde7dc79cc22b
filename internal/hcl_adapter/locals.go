package hcl_adapter

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/edgecpwg/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// functions are the numeric helpers available in every expression.
var functions = map[string]function.Function{
	"abs":   stdlib.AbsoluteFunc,
	"ceil":  stdlib.CeilFunc,
	"floor": stdlib.FloorFunc,
	"log":   stdlib.LogFunc,
	"max":   stdlib.MaxFunc,
	"min":   stdlib.MinFunc,
	"pow":   stdlib.PowFunc,
}

// evalContext evaluates all locals blocks of one file and returns the context
// line blocks are decoded with. Locals may refer to each other in any order;
// a cycle or a reference to an undefined local is reported as an error.
func (l *Loader) evalContext(ctx context.Context, blocks []*localsBlock) (*hcl.EvalContext, error) {
	logger := ctxlog.FromContext(ctx)

	pending := make(map[string]*hcl.Attribute)
	for _, b := range blocks {
		attrs, diags := b.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}
		for name, attr := range attrs {
			if prev, dup := pending[name]; dup {
				return nil, fmt.Errorf("duplicate local %q: defined at %s and %s", name, prev.NameRange, attr.NameRange)
			}
			pending[name] = attr
		}
	}

	values := make(map[string]cty.Value, len(pending))
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": cty.EmptyObjectVal},
		Functions: functions,
	}

	for len(pending) > 0 {
		progressed := false
		for _, name := range sortedNames(pending) {
			attr := pending[name]
			if refersToPending(attr.Expr, pending) {
				continue
			}

			val, diags := attr.Expr.Value(evalCtx)
			if diags.HasErrors() {
				return nil, diags
			}
			values[name] = val
			evalCtx.Variables["local"] = cty.ObjectVal(values)
			delete(pending, name)
			progressed = true
			logger.Debug("Local evaluated.", "name", name, "type", val.Type().FriendlyName())
		}
		if !progressed {
			return nil, fmt.Errorf("locals cannot be resolved (cycle or undefined reference): %s", strings.Join(sortedNames(pending), ", "))
		}
	}

	return evalCtx, nil
}

// refersToPending reports whether expr references a local not yet evaluated.
func refersToPending(expr hcl.Expression, pending map[string]*hcl.Attribute) bool {
	for _, tr := range expr.Variables() {
		if tr.RootName() != "local" || len(tr) < 2 {
			continue
		}
		if step, ok := tr[1].(hcl.TraverseAttr); ok {
			if _, isPending := pending[step.Name]; isPending {
				return true
			}
		}
	}
	return false
}

func sortedNames(m map[string]*hcl.Attribute) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
