package atom

import (
	"testing"

	"github.com/ngeiswei/atomspace/internal/pkg/atype"
)

func testRegistry() (*atype.Registry, atype.Tag, atype.Tag, atype.Tag) {
	r := atype.NewRegistry()
	numberT, _ := r.Lookup(atype.NumberNodeName)
	varT, _ := r.Lookup(atype.VariableNodeName)
	plusT, _ := r.Lookup(atype.PlusLinkName)
	return r, numberT, varT, plusT
}

func TestMakeNodeIsIdempotent(t *testing.T) {
	s := NewMemStore()
	_, numberT, _, _ := testRegistry()

	a := s.MakeNode(numberT, "2")
	b := s.MakeNode(numberT, "2")
	if a != b {
		t.Fatalf("MakeNode(2) should intern to the same handle, got %d and %d", a, b)
	}
	if s.Name(a) != "2" {
		t.Errorf("Name = %q, want %q", s.Name(a), "2")
	}
	if !s.IsNode(a) || s.IsLink(a) {
		t.Error("a NUMBER_NODE should report IsNode=true, IsLink=false")
	}
}

func TestMakeLinkIsIdempotent(t *testing.T) {
	s := NewMemStore()
	_, numberT, _, plusT := testRegistry()

	two := s.MakeNode(numberT, "2")
	three := s.MakeNode(numberT, "3")

	a := s.MakeLink(plusT, []Handle{two, three})
	b := s.MakeLink(plusT, []Handle{two, three})
	if a != b {
		t.Fatalf("MakeLink should intern to the same handle, got %d and %d", a, b)
	}
	if s.Arity(a) != 2 {
		t.Errorf("Arity = %d, want 2", s.Arity(a))
	}
	if s.Child(a, 0) != two || s.Child(a, 1) != three {
		t.Error("children should preserve order")
	}
}

func TestDifferentOrderIsDifferentAtom(t *testing.T) {
	s := NewMemStore()
	_, numberT, _, plusT := testRegistry()

	two := s.MakeNode(numberT, "2")
	three := s.MakeNode(numberT, "3")

	a := s.MakeLink(plusT, []Handle{two, three})
	b := s.MakeLink(plusT, []Handle{three, two})
	if a == b {
		t.Error("PLUS_LINK(2,3) and PLUS_LINK(3,2) are structurally different and must not share a handle")
	}
}

func TestHandlesAreMonotonic(t *testing.T) {
	s := NewMemStore()
	_, numberT, _, _ := testRegistry()

	a := s.MakeNode(numberT, "1")
	b := s.MakeNode(numberT, "2")
	if b <= a {
		t.Error("later interning should yield a strictly larger handle")
	}
}

func TestParseFormatNumberRoundtrip(t *testing.T) {
	v, ok := ParseNumber(FormatNumber(3.5))
	if !ok || v != 3.5 {
		t.Errorf("round trip of 3.5 gave (%v, %v)", v, ok)
	}
}
