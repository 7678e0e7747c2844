// Package reduct is the arithmetic reducer (§4.D): fold-link reduction of
// a term rooted at an arithmetic link, with number folding, like-term
// collection, and a canonical reorder.
package reduct

import (
	"slices"

	"github.com/ngeiswei/atomspace/internal/pkg/atom"
	"github.com/ngeiswei/atomspace/internal/pkg/atype"
	"github.com/ngeiswei/atomspace/internal/pkg/common"
)

// FoldTriple parameterizes the reducer for one link type (§4.D): a
// neutral element, a numeric binary op, and a symbolic combiner.
type FoldTriple struct {
	Knil float64
	Knum func(x, y float64) float64
	// Ksym combines two children that are not both numeric. It reports
	// simplified=false when no rule applies — spec's "Fallback: return
	// PLUS_LINK(x, y) unchanged" is realized here by telling the caller
	// to keep x and y as separate flat siblings rather than by
	// constructing and then re-flattening a trivial 2-ary link.
	Ksym func(x, y atom.Handle) (result atom.Handle, simplified bool, err error)
}

// Reducer holds the fold triples registered for each arithmetic link
// type, plus the substrate and type registry they operate over.
type Reducer struct {
	s       atom.Substrate
	r       *atype.Registry
	triples map[atype.Tag]FoldTriple

	plusT, timesT, numberT, variableT atype.Tag
}

// NewReducer returns a Reducer pre-configured with PLUS_LINK's full
// algebraic fold triple (§4.D) and TIMES_LINK's minimal one (§ SPEC_FULL
// supplemented features: number folding and identity-element dropping
// only, since that is all PLUS_LINK's own ksym needs from TIMES_LINK).
func NewReducer(s atom.Substrate, r *atype.Registry) *Reducer {
	plusT, _ := r.Lookup(atype.PlusLinkName)
	timesT, _ := r.Lookup(atype.TimesLinkName)
	numberT, _ := r.Lookup(atype.NumberNodeName)
	variableT, _ := r.Lookup(atype.VariableNodeName)

	rd := &Reducer{
		s: s, r: r,
		triples:   map[atype.Tag]FoldTriple{},
		plusT:     plusT,
		timesT:    timesT,
		numberT:   numberT,
		variableT: variableT,
	}
	rd.triples[plusT] = FoldTriple{Knil: 0, Knum: func(x, y float64) float64 { return x + y }, Ksym: rd.plusKsym}
	rd.triples[timesT] = FoldTriple{Knil: 1, Knum: func(x, y float64) float64 { return x * y }, Ksym: rd.timesKsym}
	return rd
}

// Reduce recursively simplifies term (§4.D). Non-arithmetic links (no
// registered fold triple) are reduced child-by-child but never folded;
// reduction is idempotent (§8) and opportunistic — it never errors just
// because nothing could be simplified.
func (rd *Reducer) Reduce(term atom.Handle) (atom.Handle, error) {
	if term == atom.Undefined {
		return atom.Undefined, common.InvalidParameterError{
			Where: "reduct.Reduce", Message: "term is undefined",
		}
	}
	if rd.s.IsNode(term) {
		return term, nil
	}

	t := rd.s.TypeOf(term)
	children := rd.s.Children(term)
	reducedChildren := make([]atom.Handle, len(children))
	for i, c := range children {
		rc, err := rd.Reduce(c)
		if err != nil {
			return atom.Undefined, err
		}
		reducedChildren[i] = rc
	}

	triple, ok := rd.triples[t]
	if !ok {
		return rd.s.MakeLink(t, reducedChildren), nil
	}
	return rd.fold(t, triple, reducedChildren)
}

// NewArithmeticLink constructs an unreduced arithmetic link, validating
// that t is registered as the fold triple's own link type (§4.D's
// "Expecting a PLUS_LINK but receiving another type" failure mode).
func (rd *Reducer) NewArithmeticLink(t atype.Tag, children []atom.Handle) (atom.Handle, error) {
	if _, ok := rd.triples[t]; !ok {
		return atom.Undefined, common.InvalidParameterError{
			Where:   "reduct.NewArithmeticLink",
			Message: "type is not a registered arithmetic link",
		}
	}
	return rd.s.MakeLink(t, children), nil
}

func (rd *Reducer) isNumber(h atom.Handle) (float64, bool) {
	if !rd.s.IsNode(h) || rd.s.TypeOf(h) != rd.numberT {
		return 0, false
	}
	return atom.ParseNumber(rd.s.Name(h))
}

// fold implements the outer loop described in §4.D: drop neutral
// elements, fold adjacent numeric children via Knum, fold adjacent
// non-numeric pairs via Ksym, collapse to a single surviving child when
// possible, and reorder PLUS_LINK's result into canonical form.
func (rd *Reducer) fold(t atype.Tag, triple FoldTriple, children []atom.Handle) (atom.Handle, error) {
	filtered := make([]atom.Handle, 0, len(children))
	for _, c := range children {
		if v, ok := rd.isNumber(c); ok && v == triple.Knil {
			continue
		}
		filtered = append(filtered, c)
	}
	if len(filtered) == 0 {
		return rd.s.MakeNode(rd.numberT, atom.FormatNumber(triple.Knil)), nil
	}

	// PLUS_LINK children enter the fold in reorder's canonical order.
	if t == rd.plusT {
		bucket := func(h atom.Handle) int {
			switch {
			case rd.s.IsNode(h) && rd.s.TypeOf(h) == rd.variableT:
				return 0
			case rd.s.IsNode(h) && rd.s.TypeOf(h) == rd.numberT:
				return 2
			}
			return 1
		}
		slices.Sort(filtered)
		slices.SortStableFunc(filtered, func(a, b atom.Handle) int { return bucket(a) - bucket(b) })
	}

	out := []atom.Handle{filtered[0]}
	for _, next := range filtered[1:] {
		last := out[len(out)-1]

		if lv, lok := rd.isNumber(last); lok {
			if nv, nok := rd.isNumber(next); nok {
				out[len(out)-1] = rd.s.MakeNode(rd.numberT, atom.FormatNumber(triple.Knum(lv, nv)))
				continue
			}
		}

		merged, simplified, err := triple.Ksym(last, next)
		if err != nil {
			return atom.Undefined, err
		}
		if simplified {
			out[len(out)-1] = merged
			continue
		}
		out = append(out, next)
	}

	if len(out) == 1 {
		return out[0], nil
	}

	result := rd.s.MakeLink(t, out)
	if t == rd.plusT {
		return rd.reorder(result)
	}
	return result, nil
}

// reorder partitions a reduced PLUS_LINK's children into variables,
// compounds, and numbers, and concatenates them in that order (§4.D).
// Within-bucket order is handle identity (§9's open question), which for
// every Substrate this module ships is the same as numeric Handle order.
func (rd *Reducer) reorder(link atom.Handle) (atom.Handle, error) {
	children := rd.s.Children(link)
	var vars, exprs, numbers []atom.Handle
	for _, c := range children {
		switch {
		case rd.s.IsNode(c) && rd.s.TypeOf(c) == rd.variableT:
			vars = append(vars, c)
		case rd.s.IsNode(c) && rd.s.TypeOf(c) == rd.numberT:
			numbers = append(numbers, c)
		default:
			exprs = append(exprs, c)
		}
	}
	if len(numbers) > 1 {
		return atom.Undefined, common.InvariantViolationError{
			Where:   "reduct.reorder",
			Message: "more than one NUMBER_NODE survived reduction",
		}
	}

	slices.Sort(vars)
	slices.Sort(exprs)

	result := make([]atom.Handle, 0, len(children))
	result = append(result, vars...)
	result = append(result, exprs...)
	result = append(result, numbers...)
	return rd.s.MakeLink(rd.plusT, result), nil
}
