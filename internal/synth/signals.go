package synth

import (
	"fmt"

	"github.com/gir-project/girgen/internal/gir"
	"github.com/gir-project/girgen/internal/member"
	"github.com/gir-project/girgen/internal/model"
	"github.com/gir-project/girgen/internal/nametransform"
)

// signalHelpers renders the notify::<prop> overloads plus the general
// connect/connect_after/emit/disconnect surface every class descending
// from the root object class receives.
func (s *Synthesizer) signalHelpers(cls *model.ClassDecl) []member.Fragment {
	var notifyNames []string
	for _, p := range cls.GIR.Properties {
		if !gir.Introspectable(p.Introspectable) {
			continue
		}
		notifyNames = append(notifyNames, "notify::"+p.Name)
	}
	for _, sig := range cls.GIR.Signals {
		if !gir.Introspectable(sig.Introspectable) {
			continue
		}
		notifyNames = append(notifyNames, nametransform.SignalName(sig.Name))
	}

	var out []member.Fragment
	for _, name := range notifyNames {
		out = append(out, member.Fragment{
			Name: "connect",
			Text: fmt.Sprintf("connect(signal: %q, callback: (...args: any[]) => any): number", name),
		})
	}

	out = append(out,
		member.Fragment{Name: "connect", Text: "connect(signal: string, callback: (...args: any[]) => any): number"},
		member.Fragment{Name: "connect_after", Text: "connect_after(signal: string, callback: (...args: any[]) => any): number"},
		member.Fragment{Name: "emit", Text: "emit(signal: string, ...args: any[]): void"},
		member.Fragment{Name: "disconnect", Text: "disconnect(id: number): void"},
	)
	return out
}
