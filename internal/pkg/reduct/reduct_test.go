package reduct

import (
	"testing"

	"github.com/ngeiswei/atomspace/internal/pkg/atom"
	"github.com/ngeiswei/atomspace/internal/pkg/atype"
)

type fixture struct {
	s                        *atom.MemStore
	r                        *atype.Registry
	rd                       *Reducer
	numberT, varT, plusT, timesT atype.Tag
}

func newFixture() *fixture {
	s := atom.NewMemStore()
	r := atype.NewRegistry()
	rd := NewReducer(s, r)
	numberT, _ := r.Lookup(atype.NumberNodeName)
	varT, _ := r.Lookup(atype.VariableNodeName)
	plusT, _ := r.Lookup(atype.PlusLinkName)
	timesT, _ := r.Lookup(atype.TimesLinkName)
	return &fixture{s: s, r: r, rd: rd, numberT: numberT, varT: varT, plusT: plusT, timesT: timesT}
}

func (f *fixture) num(v string) atom.Handle  { return f.s.MakeNode(f.numberT, v) }
func (f *fixture) v(name string) atom.Handle { return f.s.MakeNode(f.varT, name) }
func (f *fixture) plus(cs ...atom.Handle) atom.Handle {
	h, err := f.rd.NewArithmeticLink(f.plusT, cs)
	if err != nil {
		panic(err)
	}
	return h
}
func (f *fixture) times(cs ...atom.Handle) atom.Handle {
	h, err := f.rd.NewArithmeticLink(f.timesT, cs)
	if err != nil {
		panic(err)
	}
	return h
}

func (f *fixture) reduce(t *testing.T, h atom.Handle) atom.Handle {
	t.Helper()
	out, err := f.rd.Reduce(h)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	return out
}

// TestReduceNumberFolding covers spec §8's literal scenario 1:
// reduce(PLUS(2,3)) -> NUMBER(5).
func TestReduceNumberFolding(t *testing.T) {
	f := newFixture()
	got := f.reduce(t, f.plus(f.num("2"), f.num("3")))
	want := f.num("5")
	if got != want {
		t.Errorf("PLUS(2,3) reduced to handle %d, want NUMBER(5) handle %d (name %q)", got, want, f.s.Name(got))
	}
}

// TestReduceIdentityCollapse covers spec §8's literal scenario 2:
// reduce(PLUS(X,X)) -> TIMES(X,2).
func TestReduceIdentityCollapse(t *testing.T) {
	f := newFixture()
	x := f.v("X")
	got := f.reduce(t, f.plus(x, x))
	want := f.times(x, f.num("2"))
	if !f.s.IsLink(got) || f.s.TypeOf(got) != f.timesT {
		t.Fatalf("PLUS(X,X) should reduce to a TIMES_LINK, got type %d", f.s.TypeOf(got))
	}
	if got != want {
		t.Errorf("PLUS(X,X) reduced handle %d != expected TIMES(X,2) handle %d", got, want)
	}
}

// TestReduceLikeTermCollection covers spec §8's literal scenario 3:
// reduce(PLUS(X, TIMES(X,3))) -> TIMES(X,4).
func TestReduceLikeTermCollection(t *testing.T) {
	f := newFixture()
	x := f.v("X")
	got := f.reduce(t, f.plus(x, f.times(x, f.num("3"))))
	want := f.times(x, f.num("4"))
	if got != want {
		t.Errorf("PLUS(X,TIMES(X,3)) reduced handle %d, want TIMES(X,4) handle %d", got, want)
	}
}

// TestReduceLikeTermCollectionBothSides covers spec §8's literal scenario 4:
// reduce(PLUS(TIMES(X,2), TIMES(X,5), 1)) -> PLUS(TIMES(X,7), NUMBER(1)).
func TestReduceLikeTermCollectionBothSides(t *testing.T) {
	f := newFixture()
	x := f.v("X")
	in := f.plus(f.times(x, f.num("2")), f.times(x, f.num("5")), f.num("1"))
	got := f.reduce(t, in)

	want := f.plus(f.times(x, f.num("7")), f.num("1"))
	if got != want {
		t.Errorf("got handle %d, want handle %d", got, want)
	}
	if !f.s.IsLink(got) || f.s.TypeOf(got) != f.plusT {
		t.Fatalf("result should be a PLUS_LINK, got type %d", f.s.TypeOf(got))
	}
}

// TestReduceIsIdempotent covers spec §8's idempotence property: reducing
// an already-reduced term returns the same handle.
func TestReduceIsIdempotent(t *testing.T) {
	f := newFixture()
	x := f.v("X")
	in := f.plus(f.times(x, f.num("2")), f.times(x, f.num("5")), f.num("1"))
	once := f.reduce(t, in)
	twice := f.reduce(t, once)
	if once != twice {
		t.Errorf("Reduce is not idempotent: Reduce(t) = %d, Reduce(Reduce(t)) = %d", once, twice)
	}
}

func TestReduceDropsIdentityElement(t *testing.T) {
	f := newFixture()
	x := f.v("X")
	got := f.reduce(t, f.plus(x, f.num("0")))
	if got != x {
		t.Errorf("PLUS(X,0) should reduce to X (handle %d), got handle %d", x, got)
	}

	gotT := f.reduce(t, f.times(x, f.num("1")))
	if gotT != x {
		t.Errorf("TIMES(X,1) should reduce to X (handle %d), got handle %d", x, gotT)
	}
}

func TestReduceNestedSubterms(t *testing.T) {
	f := newFixture()
	inner := f.plus(f.num("2"), f.num("3"))
	got := f.reduce(t, f.plus(inner, f.num("10")))
	want := f.num("15")
	if got != want {
		t.Errorf("nested PLUS did not fully reduce: got handle %d, want NUMBER(15) handle %d", got, want)
	}
}

func TestNewArithmeticLinkRejectsUnregisteredType(t *testing.T) {
	f := newFixture()
	atomT, _ := f.r.Lookup(atype.AtomName)
	if _, err := f.rd.NewArithmeticLink(atomT, nil); err == nil {
		t.Error("expected an error constructing an arithmetic link of a non-arithmetic type")
	}
}

func TestReduceUndefinedIsAnError(t *testing.T) {
	f := newFixture()
	if _, err := f.rd.Reduce(atom.Undefined); err == nil {
		t.Error("expected an error reducing the undefined handle")
	}
}
