// Package atomspace is the public facade over the internal atom
// substrate, type registry, variable declarations, reducer, and unifier
// (§6's "external interfaces"): everything a caller needs to build atoms,
// reduce arithmetic links, and unify terms, without reaching into
// internal/pkg directly.
package atomspace

import (
	"github.com/ngeiswei/atomspace/internal/pkg/atom"
	"github.com/ngeiswei/atomspace/internal/pkg/atype"
	"github.com/ngeiswei/atomspace/internal/pkg/config"
	"github.com/ngeiswei/atomspace/internal/pkg/reduct"
	"github.com/ngeiswei/atomspace/internal/pkg/unify"
	"github.com/ngeiswei/atomspace/internal/pkg/vardecl"
)

// Handle is a shared, immutable reference to an atom (§3).
type Handle = atom.Handle

// Undefined is the handle that never denotes a real atom.
const Undefined = atom.Undefined

// Tag identifies a registered type (§4.B).
type Tag = atype.Tag

// VarList is a normalized variable declaration (§4.C).
type VarList = vardecl.VarList

// SolutionSet is the result of Unify (§4.E).
type SolutionSet = unify.SolutionSet

// UnifyOption adjusts Unify's behavior beyond the default semantics.
type UnifyOption = unify.Option

// WithOccursCheck rejects a variable solution where the variable occurs
// strictly inside the other side's term (§9).
func WithOccursCheck() UnifyOption { return unify.WithOccursCheck() }

// AtomSpace bundles a substrate, its type registry, and the reducer
// operating over them — the minimum an embedding application needs to
// intern atoms and call Reduce or Unify (§6).
type AtomSpace struct {
	Substrate atom.Substrate
	Registry  *atype.Registry
	reducer   *reduct.Reducer
	unifyOpts []UnifyOption
}

// New builds an AtomSpace from a bootstrap Config (ambient stack): the
// type registry (builtins plus any Config.Types), the selected substrate
// backend, and the unifier tuning (occurs check, partition budget) every
// subsequent Unify call on this AtomSpace applies by default.
func New(c *config.Config) (*AtomSpace, error) {
	r, s, err := config.Bootstrap(c)
	if err != nil {
		return nil, err
	}
	var opts []UnifyOption
	if c.Unify.OccursCheck {
		opts = append(opts, unify.WithOccursCheck())
	}
	if c.Unify.MaxPartitions > 0 {
		opts = append(opts, unify.WithMaxPartitions(c.Unify.MaxPartitions))
	}
	return &AtomSpace{Substrate: s, Registry: r, reducer: reduct.NewReducer(s, r), unifyOpts: opts}, nil
}

// NewInMemory builds an AtomSpace over atom.MemStore with the builtin
// type hierarchy only — the common case for library embedding and tests.
func NewInMemory() *AtomSpace {
	r := atype.NewRegistry()
	s := atom.NewMemStore()
	return &AtomSpace{Substrate: s, Registry: r, reducer: reduct.NewReducer(s, r)}
}

// MakeNode interns a leaf atom (§4.A).
func (as *AtomSpace) MakeNode(t Tag, name string) Handle {
	return as.Substrate.MakeNode(t, name)
}

// MakeLink interns an inner atom (§4.A).
func (as *AtomSpace) MakeLink(t Tag, children []Handle) Handle {
	return as.Substrate.MakeLink(t, children)
}

// NewArithmeticLink constructs an unreduced arithmetic link (§4.D).
func (as *AtomSpace) NewArithmeticLink(t Tag, children []Handle) (Handle, error) {
	return as.reducer.NewArithmeticLink(t, children)
}

// Reduce recursively simplifies an arithmetic term (§4.D).
func (as *AtomSpace) Reduce(term Handle) (Handle, error) {
	return as.reducer.Reduce(term)
}

// FreeVariables returns term's VARIABLE_NODE descendants in stable
// first-occurrence order (§4.C).
func (as *AtomSpace) FreeVariables(term Handle) []Handle {
	return vardecl.FreeVariables(as.Substrate, as.Registry, term)
}

// VarlistOf normalizes an optional declaration atom into a VarList
// (§4.C).
func (as *AtomSpace) VarlistOf(term, decl Handle) (*VarList, error) {
	return vardecl.VarlistOf(as.Substrate, as.Registry, term, decl)
}

// Unify decides whether lhs and rhs have a common substitution instance
// (§4.E). Options passed here are applied after this AtomSpace's own
// config-declared defaults.
func (as *AtomSpace) Unify(lhs, rhs Handle, lhsDecl, rhsDecl *VarList, opts ...UnifyOption) SolutionSet {
	all := append(append([]UnifyOption(nil), as.unifyOpts...), opts...)
	return unify.Unify(as.Substrate, as.Registry, lhs, rhs, lhsDecl, rhsDecl, all...)
}

// Lookup returns the tag registered under name, if any (§4.B).
func (as *AtomSpace) Lookup(name string) (Tag, bool) {
	return as.Registry.Lookup(name)
}
