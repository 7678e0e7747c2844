package atype

import "testing"

func TestBuiltinHierarchy(t *testing.T) {
	r := NewRegistry()

	atomT, _ := r.Lookup(AtomName)
	nodeT, _ := r.Lookup(NodeName)
	numberT, _ := r.Lookup(NumberNodeName)
	plusT, _ := r.Lookup(PlusLinkName)

	if !r.IsA(numberT, atomT) {
		t.Error("NumberNode should be a subtype of Atom")
	}
	if !r.IsA(numberT, nodeT) {
		t.Error("NumberNode should be a subtype of Node")
	}
	if r.IsA(numberT, plusT) {
		t.Error("NumberNode should not be a subtype of PlusLink")
	}
	if !r.IsA(numberT, numberT) {
		t.Error("is_a should be reflexive")
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	r := NewRegistry()
	atomT, _ := r.Lookup(AtomName)

	a := r.Register("Widget", atomT)
	b := r.Register("Widget", atomT)
	if a != b {
		t.Errorf("re-registering the same name should return the same tag, got %d and %d", a, b)
	}
}

func TestTypeIntersection(t *testing.T) {
	r := NewRegistry()
	atomT, _ := r.Lookup(AtomName)
	nodeT, _ := r.Lookup(NodeName)
	numberT, _ := r.Lookup(NumberNodeName)
	varT, _ := r.Lookup(VariableNodeName)

	if got := r.TypeIntersection(numberT, nodeT); got != numberT {
		t.Errorf("NumberNode ⊓ Node = %d, want %d", got, numberT)
	}
	if got := r.TypeIntersection(nodeT, atomT); got != nodeT {
		t.Errorf("Node ⊓ Atom = %d, want %d", got, nodeT)
	}
	if got := r.TypeIntersection(numberT, varT); got != Bottom {
		t.Errorf("NumberNode ⊓ VariableNode = %d, want Bottom", got)
	}
}

func TestIsAUnregisteredDoesNotPanic(t *testing.T) {
	// §4.B: behavior on unregistered tags is unspecified, but it must not
	// crash the caller.
	r := NewRegistry()
	_ = r.IsA(Tag(9999), Tag(1))
}
