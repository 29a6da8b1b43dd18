package depgraph

import (
	"reflect"
	"testing"

	"github.com/matzehuels/pipremove/pkg/pip"
)

func TestBuild_ResolvesInstalledDeps(t *testing.T) {
	res, err := Build([]pip.Distribution{
		{Name: "A", Version: "1.0", Requires: []string{"B", "ghost"}},
		{Name: "b", Version: "2.0", Requires: nil},
	}, BuildOptions{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	g := res.Graph

	if g.PackageCount() != 2 {
		t.Fatalf("PackageCount() = %d, want 2", g.PackageCount())
	}
	if got := g.Requires("a"); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Requires(a) = %v, want [b]", got)
	}
	if got := g.RequiredBy("b"); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("RequiredBy(b) = %v, want [a]", got)
	}

	want := []MissingDep{{Package: "a", Dependency: "ghost"}}
	if !reflect.DeepEqual(res.NeverInstalled, want) {
		t.Errorf("NeverInstalled = %v, want %v", res.NeverInstalled, want)
	}
}

func TestBuild_NormalizesDeclaredNames(t *testing.T) {
	res, err := Build([]pip.Distribution{
		{Name: "my-app", Requires: []string{"Typing_Extensions"}},
		{Name: "typing.extensions"},
	}, BuildOptions{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := res.Graph.Requires("my-app"); !reflect.DeepEqual(got, []string{"typing-extensions"}) {
		t.Errorf("Requires(my-app) = %v, want [typing-extensions]", got)
	}
	if len(res.NeverInstalled) != 0 {
		t.Errorf("NeverInstalled = %v, want empty", res.NeverInstalled)
	}
}

func TestBuild_SelfDependencyDropped(t *testing.T) {
	res, err := Build([]pip.Distribution{
		{Name: "weird", Requires: []string{"weird"}},
	}, BuildOptions{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if res.Graph.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0 (no self-edges)", res.Graph.EdgeCount())
	}
}

func TestBuild_DuplicateRecordLastWins(t *testing.T) {
	var warned bool
	res, err := Build([]pip.Distribution{
		{Name: "pkg", Version: "1.0"},
		{Name: "Pkg", Version: "2.0"},
	}, BuildOptions{Logf: func(string, ...any) { warned = true }})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	p, ok := res.Graph.Package("pkg")
	if !ok {
		t.Fatal("Package(pkg) not found")
	}
	if p.Version != "2.0" {
		t.Errorf("Version = %q, want 2.0", p.Version)
	}
	if !warned {
		t.Error("expected a duplicate-record warning")
	}
}

func TestBuild_EmptyNameSkipped(t *testing.T) {
	res, err := Build([]pip.Distribution{
		{Name: "   ", Version: "1.0"},
		{Name: "ok"},
	}, BuildOptions{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if res.Graph.PackageCount() != 1 {
		t.Errorf("PackageCount() = %d, want 1", res.Graph.PackageCount())
	}
}
