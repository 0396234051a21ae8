package synth

import (
	"fmt"
	"strings"

	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/model"
	"github.com/gir-project/girgen/internal/nametransform"
	"github.com/gir-project/girgen/internal/typeexpr"
)

// returnExpr computes the printed return type for sig, applying the
// out-parameter packing rule: a lone out parameter on a
// void-returning signature becomes the return; otherwise every visible
// out parameter is packed with a non-void return into a positional
// tuple, return first.
func (s *Synthesizer) returnExpr(sink *diag.Sink, mod *model.Module, sig model.CallableSignature) typeexpr.Expr {
	hidden := hiddenParamIndices(sig)

	var outs []typeexpr.Expr
	for i, p := range sig.Parameters {
		if p.Direction != model.DirectionOut || hidden[i] {
			continue
		}
		outs = append(outs, s.resolver.Resolve(sink, mod, p.Type, true))
	}

	if len(outs) == 0 {
		return s.resolver.Resolve(sink, mod, sig.Return, true)
	}
	if sig.IsVoid() && len(outs) == 1 {
		return outs[0]
	}

	elements := outs
	if !sig.IsVoid() {
		elements = append([]typeexpr.Expr{s.resolver.Resolve(sink, mod, sig.Return, true)}, outs...)
	}
	return typeexpr.Tuple{Elements: elements}
}

// paramList renders the printed, parenthesis-free parameter list: every
// visible in/inout parameter, skipping anything hiddenParamIndices
// marks and every out parameter (out parameters feed returnExpr
// instead).
func (s *Synthesizer) paramList(sink *diag.Sink, mod *model.Module, sig model.CallableSignature) string {
	hidden := hiddenParamIndices(sig)
	var parts []string
	for i, p := range sig.Parameters {
		if hidden[i] || p.Direction == model.DirectionOut {
			continue
		}
		name := nametransform.ParameterName(p.Name)
		mark := ""
		if p.Optional {
			mark = "?"
		}
		t := s.resolver.Resolve(sink, mod, p.Type, false)
		parts = append(parts, fmt.Sprintf("%s%s: %s", name, mark, t.String()))
	}
	return strings.Join(parts, ", ")
}

// renderSignature prints "name(params): return" for one method/function/
// constructor/virtual-method/callback-bearing declaration.
func (s *Synthesizer) renderSignature(sink *diag.Sink, mod *model.Module, name string, sig model.CallableSignature) string {
	params := s.paramList(sink, mod, sig)
	ret := s.returnExpr(sink, mod, sig)
	return fmt.Sprintf("%s(%s): %s", name, params, ret.String())
}
