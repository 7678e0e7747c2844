// Package vardecl implements the typed variable declarations of spec §4.C:
// free-variable extraction, normalization of an optional declaration into
// a uniform VarList, and the type-membership test a declaration licenses.
package vardecl

import (
	"github.com/ngeiswei/atomspace/internal/pkg/atom"
	"github.com/ngeiswei/atomspace/internal/pkg/atype"
	"github.com/ngeiswei/atomspace/internal/pkg/common"
)

// VarList is the normalized variable-list structure §4.C's varlist_of
// produces: every free variable of a term, each with a non-empty type
// union. Absence of an explicit declaration means "any atom" (§3), so a
// variable with no recorded union defaults to {ATOM} at lookup time
// rather than being stored that way, keeping the zero VarList usable.
type VarList struct {
	order []atom.Handle
	union map[atom.Handle][]atype.Tag
}

// NewVarList returns an empty VarList; every variable looked up in it is
// implicitly {ATOM}.
func NewVarList() *VarList {
	return &VarList{union: map[atom.Handle][]atype.Tag{}}
}

// Declare records v's type union, overwriting any prior declaration.
// Declaring an empty union is rejected: spec §3 requires a non-empty
// type union for every declared variable.
func (vl *VarList) Declare(v atom.Handle, union []atype.Tag) {
	if len(union) == 0 {
		return
	}
	if _, seen := vl.union[v]; !seen {
		vl.order = append(vl.order, v)
	}
	vl.union[v] = append([]atype.Tag(nil), union...)
}

// Variables returns the declared variables in declaration order.
func (vl *VarList) Variables() []atom.Handle {
	return append([]atom.Handle(nil), vl.order...)
}

// FreeVariables returns the VARIABLE_NODE descendants of term, in a
// stable first-occurrence traversal order (§4.C), with duplicates
// removed.
func FreeVariables(s atom.Substrate, r *atype.Registry, term atom.Handle) []atom.Handle {
	variableT, _ := r.Lookup(atype.VariableNodeName)
	seen := map[atom.Handle]bool{}
	var order []atom.Handle

	var walk func(h atom.Handle)
	walk = func(h atom.Handle) {
		if h == atom.Undefined {
			return
		}
		if s.IsNode(h) {
			if s.TypeOf(h) == variableT && !seen[h] {
				seen[h] = true
				order = append(order, h)
			}
			return
		}
		for _, c := range s.Children(h) {
			walk(c)
		}
	}
	walk(term)
	return order
}

// UnionType returns the declared union for v under decl, or {ATOM} if v
// is undeclared or decl is nil (§4.C).
func UnionType(r *atype.Registry, decl *VarList, v atom.Handle) []atype.Tag {
	if decl != nil {
		if u, ok := decl.union[v]; ok {
			return append([]atype.Tag(nil), u...)
		}
	}
	atomT, _ := r.Lookup(atype.AtomName)
	return []atype.Tag{atomT}
}

// VarlistOf normalizes an optional declaration atom into a VarList
// (§4.C). decl may be atom.Undefined, a single TYPED_VARIABLE_LINK, or a
// VARIABLE_LIST of TYPED_VARIABLE_LINKs. If decl is atom.Undefined, the
// result is synthesized from term's free variables, each typed {ATOM}.
//
// A TYPED_VARIABLE_LINK is encoded here as a link whose first child is
// the declared VARIABLE_NODE and whose remaining children are one or
// more TypeNode leaves naming the permitted types — an ordered sequence
// of children rather than an opaque side-channel, matching how every
// other link in this substrate carries its payload (§3's "never both
// meaningful" invariant extends naturally to "never an untyped blob").
func VarlistOf(s atom.Substrate, r *atype.Registry, term atom.Handle, decl atom.Handle) (*VarList, error) {
	vl := NewVarList()

	typedVarT, _ := r.Lookup(atype.TypedVariableLinkName)
	varListT, _ := r.Lookup(atype.VariableListName)

	addEntry := func(h atom.Handle) error {
		if s.TypeOf(h) != typedVarT {
			return common.InvalidParameterError{
				Where:   "vardecl.VarlistOf",
				Message: "VARIABLE_LIST entries must be TYPED_VARIABLE_LINK",
			}
		}
		if s.Arity(h) < 2 {
			return common.InvalidParameterError{
				Where:   "vardecl.VarlistOf",
				Message: "TYPED_VARIABLE_LINK needs a variable and at least one type",
			}
		}
		v := s.Child(h, 0)
		union := make([]atype.Tag, 0, s.Arity(h)-1)
		for i := 1; i < s.Arity(h); i++ {
			typeNode := s.Child(h, i)
			t, ok := r.Lookup(s.Name(typeNode))
			if !ok {
				return common.InvalidParameterError{
					Where:   "vardecl.VarlistOf",
					Message: "TYPED_VARIABLE_LINK names an unregistered type: " + s.Name(typeNode),
				}
			}
			union = append(union, t)
		}
		vl.Declare(v, union)
		return nil
	}

	switch decl {
	case atom.Undefined:
		atomT, _ := r.Lookup(atype.AtomName)
		for _, v := range FreeVariables(s, r, term) {
			vl.Declare(v, []atype.Tag{atomT})
		}
		return vl, nil
	default:
		switch s.TypeOf(decl) {
		case varListT:
			for _, entry := range s.Children(decl) {
				if err := addEntry(entry); err != nil {
					return nil, err
				}
			}
		case typedVarT:
			if err := addEntry(decl); err != nil {
				return nil, err
			}
		default:
			return nil, common.InvalidParameterError{
				Where:   "vardecl.VarlistOf",
				Message: "declaration must be a TYPED_VARIABLE_LINK or VARIABLE_LIST",
			}
		}
		return vl, nil
	}
}

// IsType reports whether candidate is a permitted substitution for term
// under varlist (§4.C): if term is a declared variable, candidate must
// satisfy its union; otherwise term has no variable constraint and any
// candidate is permitted.
func IsType(s atom.Substrate, r *atype.Registry, varlist *VarList, term, candidate atom.Handle) bool {
	variableT, _ := r.Lookup(atype.VariableNodeName)
	if !s.IsNode(term) || s.TypeOf(term) != variableT {
		return true
	}
	union := UnionType(r, varlist, term)
	ct := s.TypeOf(candidate)
	return common.Any(func(t atype.Tag) bool { return r.IsA(ct, t) }, union)
}
