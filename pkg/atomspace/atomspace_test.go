package atomspace

import (
	"testing"

	"github.com/ngeiswei/atomspace/internal/pkg/atype"
)

// TestEndToEndReduceAndUnify exercises the facade the way an embedding
// application would: build PLUS(X, TIMES(X,3)), reduce it, then unify
// the result against a fresh copy of itself.
func TestEndToEndReduceAndUnify(t *testing.T) {
	as := NewInMemory()

	numberT, _ := as.Lookup(atype.NumberNodeName)
	varT, _ := as.Lookup(atype.VariableNodeName)
	plusT, _ := as.Lookup(atype.PlusLinkName)
	timesT, _ := as.Lookup(atype.TimesLinkName)

	x := as.MakeNode(varT, "X")
	three := as.MakeNode(numberT, "3")

	inner, err := as.NewArithmeticLink(timesT, []Handle{x, three})
	if err != nil {
		t.Fatalf("NewArithmeticLink: %v", err)
	}
	term, err := as.NewArithmeticLink(plusT, []Handle{x, inner})
	if err != nil {
		t.Fatalf("NewArithmeticLink: %v", err)
	}

	reduced, err := as.Reduce(term)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}

	four := as.MakeNode(numberT, "4")
	want := as.MakeLink(timesT, []Handle{x, four})
	if reduced != want {
		t.Fatalf("Reduce(PLUS(X,TIMES(X,3))) = handle %d, want TIMES(X,4) handle %d", reduced, want)
	}

	decl, err := as.VarlistOf(reduced, Undefined)
	if err != nil {
		t.Fatalf("VarlistOf: %v", err)
	}
	sol := as.Unify(reduced, reduced, decl, decl)
	if !sol.Satisfiable() {
		t.Error("a reduced term must unify with itself")
	}
}

func TestNewInMemoryRegistersBuiltins(t *testing.T) {
	as := NewInMemory()
	if _, ok := as.Lookup(atype.PlusLinkName); !ok {
		t.Error("PlusLink should be registered by default")
	}
}
