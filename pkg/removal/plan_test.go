package removal

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/pipremove/pkg/errors"
)

func analyzeAndPlan(t *testing.T, edges map[string][]string, targets ...string) (*Analysis, *Plan) {
	t.Helper()
	g := buildGraph(t, edges)
	a, err := Analyze(g, Request{Targets: targets})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	p, err := BuildPlan(g, a)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}
	return a, p
}

func TestBuildPlan_ChainOrder(t *testing.T) {
	_, p := analyzeAndPlan(t, map[string][]string{"a": {"b"}, "b": {"c"}}, "a")

	if !reflect.DeepEqual(p.Steps, []string{"a", "b", "c"}) {
		t.Errorf("Steps = %v, want [a b c]", p.Steps)
	}
	if p.ID == "" {
		t.Error("plan ID is empty")
	}
}

func TestBuildPlan_TopologicalProperty(t *testing.T) {
	edges := map[string][]string{
		"a": {"b", "c"},
		"b": {"d"},
		"c": {"d", "e"},
	}
	g := buildGraph(t, edges)
	a, err := Analyze(g, Request{Targets: []string{"a"}})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	p, err := BuildPlan(g, a)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	pos := make(map[string]int, len(p.Steps))
	for i, name := range p.Steps {
		pos[name] = i
	}
	if len(pos) != len(a.Remove) {
		t.Fatalf("plan has %d unique steps, removal set has %d", len(pos), len(a.Remove))
	}

	// Every package must appear after all in-set packages that require it.
	for _, name := range p.Steps {
		for _, dependent := range g.RequiredBy(name) {
			if !a.Remove[dependent] {
				continue
			}
			if pos[dependent] > pos[name] {
				t.Errorf("%s is deleted before its dependent %s", name, dependent)
			}
		}
	}
}

func TestBuildPlan_LexicographicTieBreak(t *testing.T) {
	// Independent targets have no ordering constraints between them.
	_, p := analyzeAndPlan(t, map[string][]string{"m": nil, "a": nil, "x": nil}, "x", "m", "a")

	if !reflect.DeepEqual(p.Steps, []string{"a", "m", "x"}) {
		t.Errorf("Steps = %v, want [a m x]", p.Steps)
	}
}

func TestBuildPlan_CycleReported(t *testing.T) {
	g := buildGraph(t, map[string][]string{"a": {"b"}, "b": {"a"}})
	a, err := Analyze(g, Request{Targets: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	_, err = BuildPlan(g, a)
	if !errors.Is(err, errors.ErrCodeCyclicDependency) {
		t.Fatalf("error = %v, want CYCLIC_DEPENDENCY", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "a") || !strings.Contains(msg, "b") {
		t.Errorf("cycle members missing from message: %s", msg)
	}
}

func TestBuildPlan_Idempotent(t *testing.T) {
	edges := map[string][]string{"a": {"b", "c"}, "b": {"d"}, "c": {"d"}}
	_, first := analyzeAndPlan(t, edges, "a")
	_, second := analyzeAndPlan(t, edges, "a")

	if !reflect.DeepEqual(first.Steps, second.Steps) {
		t.Errorf("plans differ: %v vs %v", first.Steps, second.Steps)
	}
	if first.ID == second.ID {
		t.Error("plan IDs should be unique per computation")
	}
}
