package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/pipremove/pkg/depgraph"
	"github.com/matzehuels/pipremove/pkg/removal"
)

func testAnalysis(t *testing.T) (*depgraph.Graph, *removal.Analysis) {
	t.Helper()
	g := depgraph.New()
	for _, name := range []string{"app", "lib", "shared", "other"} {
		if err := g.AddPackage(depgraph.Package{Name: name, Version: "1.0"}); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range [][2]string{{"app", "lib"}, {"app", "shared"}, {"other", "shared"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	a, err := removal.Analyze(g, removal.Request{Targets: []string{"app"}})
	if err != nil {
		t.Fatal(err)
	}
	return g, a
}

func TestToDOT_Basic(t *testing.T) {
	g, a := testAnalysis(t)

	dot := ToDOT(g, a, Options{})

	if !strings.Contains(dot, "digraph removal") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `"app" -> "lib"`) {
		t.Error("ToDOT() output missing edge app -> lib")
	}
	// Members of the removal set are red, retained ones amber.
	if !strings.Contains(dot, `"app" [label="app", fillcolor="lightcoral"]`) {
		t.Errorf("app node not marked removable:\n%s", dot)
	}
	if !strings.Contains(dot, `"shared" [label="shared", fillcolor="khaki"]`) {
		t.Errorf("shared node not marked retained:\n%s", dot)
	}
}

func TestToDOT_IncludesExternalBlockers(t *testing.T) {
	g, a := testAnalysis(t)

	dot := ToDOT(g, a, Options{})

	// "other" is outside the closure but explains why shared survives.
	if !strings.Contains(dot, `"other"`) {
		t.Error("external blocker missing from output")
	}
	if !strings.Contains(dot, `"other" -> "shared"`) {
		t.Error("blocker edge missing from output")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	g, a := testAnalysis(t)

	dot := ToDOT(g, a, Options{Detailed: true})

	if !strings.Contains(dot, `label="app\n1.0"`) {
		t.Errorf("detailed label missing version:\n%s", dot)
	}
}
