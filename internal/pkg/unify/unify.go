// Package unify implements the typed unifier of spec §4.E: structural
// recursion over two terms producing a solution set of typed equivalence
// classes, with a three-level merge algebra (block, partition, solution
// set) and an optional, off-by-default occurs check.
package unify

import (
	"github.com/ngeiswei/atomspace/internal/pkg/atom"
	"github.com/ngeiswei/atomspace/internal/pkg/atype"
	"github.com/ngeiswei/atomspace/internal/pkg/vardecl"
)

// options configures a single Unify call. The zero value matches the
// source's own behavior: no occurs check (§9's "No occurs check" design
// note — preserved as the default, opt-in only).
type options struct {
	occursCheck   bool
	maxPartitions int
}

// Option adjusts Unify's behavior beyond spec.md's default semantics.
type Option func(*options)

// WithOccursCheck rejects a variable solution where the variable occurs
// strictly inside the other side's term, instead of solving it. This is
// never applied unless requested (§9).
func WithOccursCheck() Option {
	return func(o *options) { o.occursCheck = true }
}

// WithMaxPartitions bounds the number of partitions the running
// accumulator may carry mid-recursion; once exceeded, Unify reports
// unsatisfiable rather than continuing to grow the solution set (§9's
// "guard against unbounded blowup on pathological inputs with an
// optional depth/size budget"). n <= 0 means no bound (the default).
func WithMaxPartitions(n int) Option {
	return func(o *options) { o.maxPartitions = n }
}

// Unify decides whether lhs and rhs have a common substitution instance
// (§4.E). lhsDecl and rhsDecl may be nil, meaning "no declared variables"
// — every variable defaults to the {Atom} union (§4.C).
func Unify(s atom.Substrate, r *atype.Registry, lhs, rhs atom.Handle, lhsDecl, rhsDecl *vardecl.VarList, opts ...Option) SolutionSet {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return unify(s, r, lhs, rhs, lhsDecl, rhsDecl, o)
}

func unify(s atom.Substrate, r *atype.Registry, lhs, rhs atom.Handle, lhsDecl, rhsDecl *vardecl.VarList, o options) SolutionSet {
	if lhs == atom.Undefined || rhs == atom.Undefined {
		return Unsatisfiable()
	}

	lhsIsLeaf := s.IsNode(lhs)
	rhsIsLeaf := s.IsNode(rhs)

	if lhsIsLeaf || rhsIsLeaf {
		variableT, _ := r.Lookup(atype.VariableNodeName)
		lhsIsVar := lhsIsLeaf && s.TypeOf(lhs) == variableT
		rhsIsVar := rhsIsLeaf && s.TypeOf(rhs) == variableT

		if lhsIsVar || rhsIsVar {
			blocks, ok := mkvarsol(s, r, lhsDecl, rhsDecl, lhs, rhs, o)
			if !ok {
				return Unsatisfiable()
			}
			return satisfiableWithBlocks(blocks)
		}

		if lhs == rhs {
			return trivialSatisfiable()
		}
		return Unsatisfiable()
	}

	if s.TypeOf(lhs) != s.TypeOf(rhs) || s.Arity(lhs) != s.Arity(rhs) {
		return Unsatisfiable()
	}

	acc := trivialSatisfiable()
	for i := 0; i < s.Arity(lhs); i++ {
		child := unify(s, r, s.Child(lhs, i), s.Child(rhs, i), lhsDecl, rhsDecl, o)
		acc = Merge(r, acc, child)
		if !acc.satisfiable {
			return acc
		}
		if o.maxPartitions > 0 && len(acc.partitions) > o.maxPartitions {
			return Unsatisfiable()
		}
	}
	return acc
}

// mkvarsol computes the variable solution for a leaf pair where at least
// one side is a VARIABLE_NODE (§4.E). It returns one candidate Block per
// distinct way the pair can be typed: when both sides are declared
// variables and their unions intersect into more than one disjoint tag,
// each survivor is a mutually exclusive typed equivalence class, not a
// single collapsed meet, so the caller turns each into its own partition.
func mkvarsol(s atom.Substrate, r *atype.Registry, lhsDecl, rhsDecl *vardecl.VarList, lhs, rhs atom.Handle, o options) ([]Block, bool) {
	variableT, _ := r.Lookup(atype.VariableNodeName)
	lhsIsVar := s.IsNode(lhs) && s.TypeOf(lhs) == variableT
	rhsIsVar := s.IsNode(rhs) && s.TypeOf(rhs) == variableT

	if lhsIsVar && rhsIsVar {
		lu := vardecl.UnionType(r, lhsDecl, lhs)
		ru := vardecl.UnionType(r, rhsDecl, rhs)
		candidates, ok := unionCandidates(r, lu, ru)
		if !ok {
			return nil, false
		}
		blocks := make([]Block, len(candidates))
		for i, typ := range candidates {
			blocks[i] = newBlock(typ, lhs, rhs)
		}
		return blocks, true
	}

	// Exactly one side is a variable. v is that variable, other is the
	// opposing term; vDecl is the declaration v was typed under. other is
	// a concrete atom with exactly one type, so there is only ever one
	// candidate here.
	v, other, vDecl := lhs, rhs, lhsDecl
	if rhsIsVar {
		v, other, vDecl = rhs, lhs, rhsDecl
	}

	if o.occursCheck && other != v && occursIn(s, v, other) {
		return nil, false
	}

	if !vardecl.IsType(s, r, vDecl, v, other) {
		return nil, false
	}
	return []Block{newBlock(s.TypeOf(other), lhs, rhs)}, true
}

// occursIn reports whether v is a strict subterm of term (§9's opt-in
// occurs check).
func occursIn(s atom.Substrate, v, term atom.Handle) bool {
	if s.IsNode(term) {
		return false
	}
	for _, c := range s.Children(term) {
		if c == v || occursIn(s, v, c) {
			return true
		}
	}
	return false
}

// unionCandidates intersects two type unions element-wise (§4.E's "type
// intersection helpers", distributed over unions) and returns every
// distinct, non-Bottom survivor — each one a tag a variable-variable
// binding could validly carry. For the single-element unions most
// declarations carry, this is the more specific of the two elements when
// one is a subtype of the other.
func unionCandidates(r *atype.Registry, lu, ru []atype.Tag) ([]atype.Tag, bool) {
	seen := map[atype.Tag]bool{}
	var survivors []atype.Tag
	for _, a := range lu {
		for _, b := range ru {
			t := r.TypeIntersection(a, b)
			if t != atype.Bottom && !seen[t] {
				seen[t] = true
				survivors = append(survivors, t)
			}
		}
	}
	if len(survivors) == 0 {
		return nil, false
	}
	return survivors, true
}
