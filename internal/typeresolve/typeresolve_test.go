package typeresolve

import (
	"testing"

	"github.com/gir-project/girgen/internal/config"
	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/gir"
	"github.com/gir-project/girgen/internal/model"
	"github.com/gir-project/girgen/internal/symboltable"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T, env config.Environment) (*Resolver, *model.Module, *diag.Sink) {
	t.Helper()
	repo := &gir.Repository{
		Namespace: gir.Namespace{
			Name: "Gtk",
			Classes: []gir.Class{
				{Name: "Widget"},
			},
		},
	}
	mod := model.NewModule(repo)
	sink := diag.NewSink(nil)
	table := symboltable.New()
	symboltable.Populate(sink, table, mod)
	return New(table, env), mod, sink
}

func TestResolvePlainType(t *testing.T) {
	r, mod, sink := newResolver(t, config.EnvironmentGJS)
	ref := model.TypeRef{Shape: model.ShapeNamed, Named: "gboolean"}
	got := r.Resolve(sink, mod, ref, false).String()
	require.Equal(t, "boolean", got)
}

func TestResolveInt64DiffersByEnvironment(t *testing.T) {
	ref := model.TypeRef{Shape: model.ShapeNamed, Named: "gint64"}

	rGjs, modGjs, sinkGjs := newResolver(t, config.EnvironmentGJS)
	require.Equal(t, "number", rGjs.Resolve(sinkGjs, modGjs, ref, false).String())

	rNode, modNode, sinkNode := newResolver(t, config.EnvironmentNode)
	require.Equal(t, "bigint", rNode.Resolve(sinkNode, modNode, ref, false).String())
}

func TestResolveSameModuleReferenceStripsPrefix(t *testing.T) {
	r, mod, sink := newResolver(t, config.EnvironmentGJS)
	ref := model.TypeRef{Shape: model.ShapeNamed, Named: "Widget"}
	got := r.Resolve(sink, mod, ref, false).String()
	require.Equal(t, "Widget", got, "local-module prefix should be stripped")
}

func TestResolveUnresolvedFallsBackToAny(t *testing.T) {
	r, mod, sink := newResolver(t, config.EnvironmentGJS)
	ref := model.TypeRef{Shape: model.ShapeNamed, Named: "Gtk.Nonexistent"}
	got := r.Resolve(sink, mod, ref, false).String()
	require.Equal(t, "any", got)
	require.Equal(t, 1, sink.CountByKind(diag.UnresolvedType))
}

func TestResolveArrayOfNamedType(t *testing.T) {
	r, mod, sink := newResolver(t, config.EnvironmentGJS)
	elem := model.TypeRef{Shape: model.ShapeNamed, Named: "Widget"}
	ref := model.TypeRef{Shape: model.ShapeArray, Element: &elem}
	got := r.Resolve(sink, mod, ref, false).String()
	require.Equal(t, "Widget[]", got)
}

func TestResolveByteArrayCollapsesToBufferUnderNode(t *testing.T) {
	r, mod, sink := newResolver(t, config.EnvironmentNode)
	elem := model.TypeRef{Shape: model.ShapeNamed, Named: "guint8"}
	ref := model.TypeRef{Shape: model.ShapeArray, Element: &elem}
	got := r.Resolve(sink, mod, ref, false).String()
	require.Equal(t, "Buffer", got)
}

func TestResolveNullableWrapsLast(t *testing.T) {
	r, mod, sink := newResolver(t, config.EnvironmentGJS)
	ref := model.TypeRef{Shape: model.ShapeNamed, Named: "utf8", Nullable: true}
	got := r.Resolve(sink, mod, ref, false).String()
	require.Equal(t, "string | null", got)
}
