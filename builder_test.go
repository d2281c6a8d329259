package gogp

import (
	"math/rand"
	"testing"
)

func testFunctions() FunctionSet {
	return FunctionSet{{ID: "+", Arity: 2}, {ID: "NOT", Arity: 1}}
}

func testTerminals() TerminalSet {
	return TerminalSet{Variables: []string{"x"}, Numbers: []float64{1, 2}}
}

func TestBuildRespectsDepthBoundAndArity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fs := testFunctions()
	terms := testTerminals()

	for trial := 0; trial < 200; trial++ {
		for _, mode := range []BuildMode{Grow, Fill} {
			tree := Build(rng, 4, 4, terms, fs, mode)
			if h := Height(tree); h > 4 {
				t.Fatalf("Height(Build(..., 4, 4, ..., %v)) = %d, want <= 4", mode, h)
			}
			if err := checkArity(tree, fs); err != nil {
				t.Fatalf("Build produced an arity-inconsistent tree: %v", err)
			}
		}
	}
}

func TestBuildDepthZeroIsAlwaysTerminal(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	tree := Build(rng, 0, 0, testTerminals(), testFunctions(), Grow)
	if !tree.IsLeaf() {
		t.Error("Build(depthMax=0, ...) returned a non-terminal tree")
	}
}

func TestFillAlwaysReachesMaxDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	fs := testFunctions()
	terms := testTerminals()

	for trial := 0; trial < 50; trial++ {
		tree := Build(rng, 3, 3, terms, fs, Fill)
		if h := Height(tree); h != 3 {
			t.Errorf("Fill mode produced height %d, want exactly 3", h)
		}
	}
}

func TestRandomTerminalFallsBackToVariablesWhenNumbersEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	terms := TerminalSet{Variables: []string{"x", "y"}}

	for trial := 0; trial < 50; trial++ {
		leaf := RandomTerminal(rng, terms)
		if leaf.Term.Kind != TerminalVar {
			t.Fatalf("RandomTerminal with empty Numbers returned a number leaf")
		}
	}
}

func TestCreateModuleTreeIdentityWhenNoBranches(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m := CreateModuleTree(rng, 3, testTerminals(), testFunctions(), 0, 1, 0, 25)
	if len(m.Branches) != 0 {
		t.Errorf("adf_count=0, adl_count=0 produced %d branches, want 0", len(m.Branches))
	}
}

func TestCreateModuleTreeADFBranchShape(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	m := CreateModuleTree(rng, 3, testTerminals(), testFunctions(), 2, 1, 0, 25)

	if len(m.Branches) != 2 {
		t.Fatalf("adf_count=2 produced %d branches, want 2", len(m.Branches))
	}
	for i, br := range m.Branches {
		if br.Kind != BranchADF {
			t.Errorf("branch %d: Kind = %v, want BranchADF", i, br.Kind)
		}
		wantName := OperatorID("adf" + itoa(i))
		if br.Name != wantName {
			t.Errorf("branch %d: Name = %q, want %q", i, br.Name, wantName)
		}
		if len(br.Params) != 1 {
			t.Errorf("branch %d: len(Params) = %d, want 1 (adf_arity=1)", i, len(br.Params))
		}
	}
}

func TestCreateModuleTreeADLBranchShape(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := CreateModuleTree(rng, 3, testTerminals(), testFunctions(), 0, 1, 1, 10)

	if len(m.Branches) != 1 {
		t.Fatalf("adl_count=1 produced %d branches, want 1", len(m.Branches))
	}
	br := m.Branches[0]
	if br.Kind != BranchADL {
		t.Fatalf("Kind = %v, want BranchADL", br.Kind)
	}
	if br.Limit != 10 {
		t.Errorf("Limit = %d, want 10", br.Limit)
	}
	for i, body := range br.Bodies {
		if body.Kind != KindTerminal && body.Kind != KindApply {
			t.Errorf("body %d is not a valid tree: %+v", i, body)
		}
	}
}

func TestNewPopulationSize(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	pop := NewPopulation(rng, 17, 4, testTerminals(), testFunctions(), 0, 1, 0, 25)
	if len(pop) != 17 {
		t.Errorf("len(NewPopulation(..., 17, ...)) = %d, want 17", len(pop))
	}
}
