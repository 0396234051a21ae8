package synth

import (
	"github.com/gir-project/girgen/internal/gir"
	"github.com/gir-project/girgen/internal/model"
	"github.com/moznion/go-optional"
)

// buildSignature converts a raw GIR parameter list and return value into
// the core's interpreted CallableSignature, filling in the
// closure/destroy/length indices and the nullable/direction flags that
// TypeResolver and the optional-parameter computation below both need.
// The instance-parameter, if present, is never included: every caller
// here is already synthesizing members of a known receiver type.
func buildSignature(params gir.Parameters, ret gir.ReturnValue) model.CallableSignature {
	var out model.CallableSignature
	for i := range params.Parameter {
		p := &params.Parameter[i]
		nullable := p.Nullable == "1" || p.AllowNone == "1" || p.Optional == "1"
		out.Parameters = append(out.Parameters, model.Parameter{
			Name:         p.Name,
			Direction:    model.DirectionFromGIR(p.Direction),
			Nullable:     nullable,
			ClosureIndex: parseParamIndex(p.Closure),
			DestroyIndex: parseParamIndex(p.Destroy),
			LengthIndex:  parseParamIndex(lengthAttrOf(p)),
			Type:         model.FromGIRType(p.Type, p.Array, nullable),
		})
	}

	retNullable := ret.Nullable == "1"
	out.Return = model.FromGIRType(ret.Type, ret.Array, retNullable)
	if ret.Array != nil && ret.Array.Length != "" {
		if idx, ok := parseIndex(ret.Array.Length); ok {
			out.OutArrayLengthIndex = optional.Some(idx)
		}
	}

	computeOptionalFlags(&out)
	return out
}

// lengthAttrOf returns a parameter's own <array length="N"> attribute,
// when the parameter's type is itself an array.
func lengthAttrOf(p *gir.Parameter) string {
	if p.Array != nil {
		return p.Array.Length
	}
	return ""
}

func parseParamIndex(raw string) optional.Option[int] {
	if idx, ok := parseIndex(raw); ok {
		return optional.Some(idx)
	}
	return optional.None[int]()
}

func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// computeOptionalFlags applies the optional-parameter rule: a parameter is
// optional iff it is nullable and no later non-nullable, non-out
// parameter follows it in the signature (an optional parameter can
// never precede a required one in a positional call).
func computeOptionalFlags(sig *model.CallableSignature) {
	for i := range sig.Parameters {
		p := &sig.Parameters[i]
		if p.Direction == model.DirectionOut {
			continue
		}
		blocked := false
		for j := i + 1; j < len(sig.Parameters); j++ {
			q := sig.Parameters[j]
			if q.Direction == model.DirectionOut {
				continue
			}
			if !q.Nullable {
				blocked = true
				break
			}
		}
		p.Optional = p.Nullable && !blocked
	}
}

// hiddenParamIndices collects every parameter index that participates in
// another parameter's closure/destroy/length bookkeeping (or the
// signature's out-array length), since those indices are inferred by
// the runtime rather than passed explicitly and so never appear in the
// printed parameter list.
func hiddenParamIndices(sig model.CallableSignature) map[int]bool {
	hidden := make(map[int]bool)
	mark := func(idx optional.Option[int]) {
		idx.IfSome(func(i int) { hidden[i] = true })
	}
	for _, p := range sig.Parameters {
		mark(p.ClosureIndex)
		mark(p.DestroyIndex)
		mark(p.LengthIndex)
		mark(p.Type.LengthParamIndex)
	}
	mark(sig.OutArrayLengthIndex)
	return hidden
}
